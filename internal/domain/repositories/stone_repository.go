package repositories

import (
	"context"

	"stone-shop.backend/internal/domain/entities"
)

// StoneRepository defines catalog stone data operations, including the
// comments and FAQs owned by each stone.
type StoneRepository interface {
	Create(ctx context.Context, stone *entities.Stone) error
	GetByID(ctx context.Context, id uint) (*entities.Stone, error)
	// ListWithRelations returns every stone with comments and FAQs nested
	ListWithRelations(ctx context.Context) ([]*entities.Stone, error)

	CreateComment(ctx context.Context, comment *entities.StoneComment) error
	ListComments(ctx context.Context, stoneID uint) ([]*entities.StoneComment, error)

	CreateFAQ(ctx context.Context, faq *entities.StoneFAQ) error
	ListFAQs(ctx context.Context, stoneID uint) ([]*entities.StoneFAQ, error)
	GetFAQByID(ctx context.Context, id uint) (*entities.StoneFAQ, error)
	UpdateFAQAnswer(ctx context.Context, id uint, answer string) error
}
