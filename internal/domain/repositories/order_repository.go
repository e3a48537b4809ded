package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"stone-shop.backend/internal/domain/entities"
	"stone-shop.backend/pkg/utils"
)

// OrderRepository defines order and line item data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	// GetByID returns the order with its items in insertion order
	GetByID(ctx context.Context, id uint) (*entities.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Order, int64, error)
	Update(ctx context.Context, order *entities.Order) error
	UpdateTotal(ctx context.Context, id uint, total decimal.Decimal) error

	CreateItem(ctx context.Context, item *entities.OrderItem) error
	GetItemByID(ctx context.Context, id uint) (*entities.OrderItem, error)
	UpdateItemQuantity(ctx context.Context, id uint, quantity int) error
}
