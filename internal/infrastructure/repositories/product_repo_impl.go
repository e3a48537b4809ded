package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/infrastructure/models"
	"stone-shop.backend/pkg/utils"
)

// ProductRepository implements sellable product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.ProductStone) error {
	m := &models.ProductStone{
		Name:              product.Name,
		ScientificName:    product.ScientificName,
		StoneType:         string(product.StoneType),
		Colors:            product.Colors,
		Hardness:          product.Hardness,
		Density:           product.Density,
		Description:       product.Description,
		Applications:      product.Applications,
		ExtractionSites:   product.ExtractionSites,
		Image:             product.Image.Ptr(),
		PricePerKg:        product.PricePerKg,
		AvailableQuantity: product.AvailableQuantity,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*entities.ProductStone, error) {
	var m models.ProductStone
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m), nil
}

// List returns a page of products with the total count
func (r *ProductRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.ProductStone, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.ProductStone{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("id ASC")
	if pagination.Limit > 0 {
		query = query.Offset(pagination.CalculateOffset()).Limit(pagination.Limit)
	}

	var productModels []models.ProductStone
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entities.ProductStone, 0, len(productModels))
	for i := range productModels {
		products = append(products, productToEntity(&productModels[i]))
	}
	return products, total, nil
}

// AdjustStock applies delta to available_quantity with a conditional update
// so the quantity can never go below zero, even under concurrent orders.
func (r *ProductRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.ProductStone{}).
		Where("id = ? AND available_quantity + ? >= 0", id, delta).
		Update("available_quantity", gorm.Expr("available_quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.ProductStone{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInsufficientStock
	}
	return nil
}

func productToEntity(m *models.ProductStone) *entities.ProductStone {
	return &entities.ProductStone{
		ID:                m.ID,
		Name:              m.Name,
		ScientificName:    m.ScientificName,
		StoneType:         entities.StoneType(m.StoneType),
		Colors:            m.Colors,
		Hardness:          m.Hardness,
		Density:           m.Density,
		Description:       m.Description,
		Applications:      m.Applications,
		ExtractionSites:   m.ExtractionSites,
		Image:             null.StringFromPtr(m.Image),
		PricePerKg:        m.PricePerKg,
		AvailableQuantity: m.AvailableQuantity,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
