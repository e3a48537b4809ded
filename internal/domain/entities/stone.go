package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// StoneType classifies a catalog stone
type StoneType string

const (
	StoneTypeIgneous     StoneType = "igneous"
	StoneTypeSedimentary StoneType = "sedimentary"
	StoneTypeMetamorphic StoneType = "metamorphic"
)

// Valid reports whether the stone type is one of the known kinds
func (s StoneType) Valid() bool {
	switch s {
	case StoneTypeIgneous, StoneTypeSedimentary, StoneTypeMetamorphic:
		return true
	}
	return false
}

// Stone is an informational catalog entry. It owns its comments and FAQs.
type Stone struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	StoneType   StoneType   `json:"stone_type"`
	Description string      `json:"description"`
	MainColor   string      `json:"main_color"`
	Image       null.String `json:"image,omitempty"`

	Comments []*StoneComment `json:"comments"`
	FAQs     []*StoneFAQ     `json:"faqs"`
}

// StoneComment is a public, append-only comment under a single stone
type StoneComment struct {
	ID         uint      `json:"id"`
	StoneID    uint      `json:"stone_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// StoneFAQ is a question under a single stone; the answer is filled in
// later by a staff user. An empty answer means unanswered.
type StoneFAQ struct {
	ID       uint   `json:"id"`
	StoneID  uint   `json:"stone_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CreateStoneInput represents input for creating a catalog stone
type CreateStoneInput struct {
	Name        string `json:"name" binding:"required"`
	StoneType   string `json:"stone_type" binding:"required"`
	Description string `json:"description"`
	MainColor   string `json:"main_color"`
	Image       string `json:"image"`
}

// CreateCommentInput represents input for commenting on a stone
type CreateCommentInput struct {
	AuthorName string `json:"author_name" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// CreateFAQInput represents input for asking a question about a stone
type CreateFAQInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
}

// AnswerFAQInput represents input for answering a FAQ
type AnswerFAQInput struct {
	Answer string `json:"answer"`
}
