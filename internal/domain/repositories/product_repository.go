package repositories

import (
	"context"

	"stone-shop.backend/internal/domain/entities"
	"stone-shop.backend/pkg/utils"
)

// ProductRepository defines sellable product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.ProductStone) error
	GetByID(ctx context.Context, id uint) (*entities.ProductStone, error)
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.ProductStone, int64, error)
	// AdjustStock applies delta to available_quantity and fails when the
	// result would go negative
	AdjustStock(ctx context.Context, id uint, delta int) error
}
