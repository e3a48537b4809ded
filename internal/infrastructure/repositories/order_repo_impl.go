package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/infrastructure/models"
	"stone-shop.backend/pkg/utils"
)

// OrderRepository implements order and line item data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	m := &models.Order{
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalPrice:  order.TotalPrice,
		PaymentDate: order.PaymentDate.Ptr(),
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.ID = m.ID
	order.CreatedAt = m.CreatedAt
	order.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID returns the order with its items in insertion order
func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*entities.Order, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.Order
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	order := orderToEntity(&m)
	items, err := r.listItems(db, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// ListByUser returns a page of the user's orders, newest first, items nested
func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if pagination.Limit > 0 {
		query = query.Offset(pagination.CalculateOffset()).Limit(pagination.Limit)
	}

	var orderModels []models.Order
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.Order, 0, len(orderModels))
	for i := range orderModels {
		order := orderToEntity(&orderModels[i])
		items, err := r.listItems(db, order.ID)
		if err != nil {
			return nil, 0, err
		}
		order.Items = items
		orders = append(orders, order)
	}
	return orders, total, nil
}

// Update persists the status, total and payment date of an order
func (r *OrderRepository) Update(ctx context.Context, order *entities.Order) error {
	updates := map[string]interface{}{
		"status":      string(order.Status),
		"total_price": order.TotalPrice,
		"updated_at":  time.Now(),
	}
	if order.PaymentDate.Valid {
		updates["payment_date"] = order.PaymentDate.Time
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateTotal overwrites the derived order total
func (r *OrderRepository) UpdateTotal(ctx context.Context, id uint, total decimal.Decimal) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_price": total,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CreateItem appends a line item under its order
func (r *OrderRepository) CreateItem(ctx context.Context, item *entities.OrderItem) error {
	m := &models.OrderItem{
		OrderID:      item.OrderID,
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		PricePerUnit: item.PricePerUnit,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	return nil
}

// GetItemByID gets a line item by ID
func (r *OrderRepository) GetItemByID(ctx context.Context, id uint) (*entities.OrderItem, error) {
	var m models.OrderItem
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return orderItemToEntity(&m), nil
}

// UpdateItemQuantity overwrites a line item's quantity. The stored
// price_per_unit snapshot is never touched.
func (r *OrderRepository) UpdateItemQuantity(ctx context.Context, id uint, quantity int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.OrderItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) listItems(db *gorm.DB, orderID uint) ([]*entities.OrderItem, error) {
	var itemModels []models.OrderItem
	err := db.Where("order_id = ?", orderID).Order("id ASC").Find(&itemModels).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.OrderItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, orderItemToEntity(&itemModels[i]))
	}
	return items, nil
}

func orderToEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:          m.ID,
		UserID:      m.UserID,
		Status:      entities.OrderStatus(m.Status),
		TotalPrice:  m.TotalPrice,
		PaymentDate: null.TimeFromPtr(m.PaymentDate),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func orderItemToEntity(m *models.OrderItem) *entities.OrderItem {
	return &entities.OrderItem{
		ID:           m.ID,
		OrderID:      m.OrderID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		PricePerUnit: m.PricePerUnit,
	}
}
