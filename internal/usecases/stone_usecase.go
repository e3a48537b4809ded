package usecases

import (
	"context"
	"strings"

	"github.com/volatiletech/null/v8"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/domain/repositories"
)

// StoneUsecase handles catalog business logic
type StoneUsecase struct {
	stoneRepo repositories.StoneRepository
}

// NewStoneUsecase creates a new stone usecase
func NewStoneUsecase(stoneRepo repositories.StoneRepository) *StoneUsecase {
	return &StoneUsecase{stoneRepo: stoneRepo}
}

// ListStones returns every stone with its comments and FAQs nested
func (u *StoneUsecase) ListStones(ctx context.Context) ([]*entities.Stone, error) {
	return u.stoneRepo.ListWithRelations(ctx)
}

// CreateStone creates a catalog stone after validating its type
func (u *StoneUsecase) CreateStone(ctx context.Context, input *entities.CreateStoneInput) (*entities.Stone, error) {
	stoneType := entities.StoneType(input.StoneType)
	if !stoneType.Valid() {
		return nil, domainerrors.Validation("Invalid input.", map[string]string{
			"stone_type": "Must be one of: igneous, sedimentary, metamorphic.",
		})
	}

	stone := &entities.Stone{
		Name:        input.Name,
		StoneType:   stoneType,
		Description: input.Description,
		MainColor:   input.MainColor,
		Comments:    []*entities.StoneComment{},
		FAQs:        []*entities.StoneFAQ{},
	}
	if input.Image != "" {
		stone.Image = null.StringFrom(input.Image)
	}

	if err := u.stoneRepo.Create(ctx, stone); err != nil {
		return nil, err
	}
	return stone, nil
}

// ListComments returns the comments of one stone
func (u *StoneUsecase) ListComments(ctx context.Context, stoneID uint) ([]*entities.StoneComment, error) {
	if _, err := u.stoneRepo.GetByID(ctx, stoneID); err != nil {
		return nil, err
	}
	return u.stoneRepo.ListComments(ctx, stoneID)
}

// CreateComment appends a public comment under a stone
func (u *StoneUsecase) CreateComment(ctx context.Context, stoneID uint, input *entities.CreateCommentInput) (*entities.StoneComment, error) {
	if _, err := u.stoneRepo.GetByID(ctx, stoneID); err != nil {
		return nil, err
	}

	comment := &entities.StoneComment{
		StoneID:    stoneID,
		AuthorName: input.AuthorName,
		Text:       input.Text,
	}
	if err := u.stoneRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListFAQs returns the FAQs of one stone
func (u *StoneUsecase) ListFAQs(ctx context.Context, stoneID uint) ([]*entities.StoneFAQ, error) {
	if _, err := u.stoneRepo.GetByID(ctx, stoneID); err != nil {
		return nil, err
	}
	return u.stoneRepo.ListFAQs(ctx, stoneID)
}

// CreateFAQ appends a question under a stone. The answer may be supplied
// up front or filled in later by staff.
func (u *StoneUsecase) CreateFAQ(ctx context.Context, stoneID uint, input *entities.CreateFAQInput) (*entities.StoneFAQ, error) {
	if _, err := u.stoneRepo.GetByID(ctx, stoneID); err != nil {
		return nil, err
	}

	faq := &entities.StoneFAQ{
		StoneID:  stoneID,
		Question: input.Question,
		Answer:   input.Answer,
	}
	if err := u.stoneRepo.CreateFAQ(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// AnswerFAQ overwrites the answer of a FAQ and returns the updated row.
// Re-answering is permitted; the staff check is at the route.
func (u *StoneUsecase) AnswerFAQ(ctx context.Context, faqID uint, input *entities.AnswerFAQInput) (*entities.StoneFAQ, error) {
	if strings.TrimSpace(input.Answer) == "" {
		return nil, domainerrors.Validation("Invalid input.", map[string]string{
			"answer": "This field may not be blank.",
		})
	}

	faq, err := u.stoneRepo.GetFAQByID(ctx, faqID)
	if err != nil {
		return nil, err
	}

	if err := u.stoneRepo.UpdateFAQAnswer(ctx, faqID, input.Answer); err != nil {
		return nil, err
	}
	faq.Answer = input.Answer
	return faq, nil
}
