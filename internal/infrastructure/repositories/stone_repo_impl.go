package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/infrastructure/models"
)

// StoneRepository implements catalog stone data operations
type StoneRepository struct {
	db *gorm.DB
}

// NewStoneRepository creates a new stone repository
func NewStoneRepository(db *gorm.DB) *StoneRepository {
	return &StoneRepository{db: db}
}

// Create creates a new stone
func (r *StoneRepository) Create(ctx context.Context, stone *entities.Stone) error {
	m := &models.Stone{
		Name:        stone.Name,
		StoneType:   string(stone.StoneType),
		Description: stone.Description,
		MainColor:   stone.MainColor,
		Image:       stone.Image.Ptr(),
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	stone.ID = m.ID
	return nil
}

// GetByID gets a stone by ID
func (r *StoneRepository) GetByID(ctx context.Context, id uint) (*entities.Stone, error) {
	var m models.Stone
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return stoneToEntity(&m), nil
}

// ListWithRelations returns every stone with its comments and FAQs nested
func (r *StoneRepository) ListWithRelations(ctx context.Context) ([]*entities.Stone, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var stoneModels []models.Stone
	if err := db.Order("id ASC").Find(&stoneModels).Error; err != nil {
		return nil, err
	}

	var commentModels []models.StoneComment
	if err := db.Order("id ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	var faqModels []models.StoneFAQ
	if err := db.Order("id ASC").Find(&faqModels).Error; err != nil {
		return nil, err
	}

	commentsByStone := make(map[uint][]*entities.StoneComment)
	for i := range commentModels {
		c := commentToEntity(&commentModels[i])
		commentsByStone[c.StoneID] = append(commentsByStone[c.StoneID], c)
	}
	faqsByStone := make(map[uint][]*entities.StoneFAQ)
	for i := range faqModels {
		f := faqToEntity(&faqModels[i])
		faqsByStone[f.StoneID] = append(faqsByStone[f.StoneID], f)
	}

	stones := make([]*entities.Stone, 0, len(stoneModels))
	for i := range stoneModels {
		s := stoneToEntity(&stoneModels[i])
		s.Comments = commentsByStone[s.ID]
		if s.Comments == nil {
			s.Comments = []*entities.StoneComment{}
		}
		s.FAQs = faqsByStone[s.ID]
		if s.FAQs == nil {
			s.FAQs = []*entities.StoneFAQ{}
		}
		stones = append(stones, s)
	}
	return stones, nil
}

// CreateComment appends a comment under its stone
func (r *StoneRepository) CreateComment(ctx context.Context, comment *entities.StoneComment) error {
	m := &models.StoneComment{
		StoneID:    comment.StoneID,
		AuthorName: comment.AuthorName,
		Text:       comment.Text,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	return nil
}

// ListComments returns the comments scoped to one stone
func (r *StoneRepository) ListComments(ctx context.Context, stoneID uint) ([]*entities.StoneComment, error) {
	var commentModels []models.StoneComment
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("stone_id = ?", stoneID).
		Order("id ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entities.StoneComment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, commentToEntity(&commentModels[i]))
	}
	return comments, nil
}

// CreateFAQ appends a question under its stone
func (r *StoneRepository) CreateFAQ(ctx context.Context, faq *entities.StoneFAQ) error {
	m := &models.StoneFAQ{
		StoneID:  faq.StoneID,
		Question: faq.Question,
		Answer:   faq.Answer,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	faq.ID = m.ID
	return nil
}

// ListFAQs returns the FAQs scoped to one stone
func (r *StoneRepository) ListFAQs(ctx context.Context, stoneID uint) ([]*entities.StoneFAQ, error) {
	var faqModels []models.StoneFAQ
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("stone_id = ?", stoneID).
		Order("id ASC").
		Find(&faqModels).Error
	if err != nil {
		return nil, err
	}

	faqs := make([]*entities.StoneFAQ, 0, len(faqModels))
	for i := range faqModels {
		faqs = append(faqs, faqToEntity(&faqModels[i]))
	}
	return faqs, nil
}

// GetFAQByID gets a FAQ by ID
func (r *StoneRepository) GetFAQByID(ctx context.Context, id uint) (*entities.StoneFAQ, error) {
	var m models.StoneFAQ
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return faqToEntity(&m), nil
}

// UpdateFAQAnswer overwrites the answer of a FAQ
func (r *StoneRepository) UpdateFAQAnswer(ctx context.Context, id uint, answer string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.StoneFAQ{}).
		Where("id = ?", id).
		Update("answer", answer)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func stoneToEntity(m *models.Stone) *entities.Stone {
	return &entities.Stone{
		ID:          m.ID,
		Name:        m.Name,
		StoneType:   entities.StoneType(m.StoneType),
		Description: m.Description,
		MainColor:   m.MainColor,
		Image:       null.StringFromPtr(m.Image),
	}
}

func commentToEntity(m *models.StoneComment) *entities.StoneComment {
	return &entities.StoneComment{
		ID:         m.ID,
		StoneID:    m.StoneID,
		AuthorName: m.AuthorName,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
	}
}

func faqToEntity(m *models.StoneFAQ) *entities.StoneFAQ {
	return &entities.StoneFAQ{
		ID:       m.ID,
		StoneID:  m.StoneID,
		Question: m.Question,
		Answer:   m.Answer,
	}
}
