package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// OrderStatus is the order payment lifecycle state
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// Terminal reports whether no further status transition is allowed
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusFailed
}

// Order is a user's purchase composed of line items.
// total_price is derived from the items, never authoritative on its own.
type Order struct {
	ID          uint            `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Status      OrderStatus     `json:"status"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	PaymentDate null.Time       `json:"payment_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Items []*OrderItem `json:"items"`
}

// ComputeTotal derives the order total from its items
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// OrderItem is a line item referencing a product. price_per_unit is
// snapshotted at order time and does not follow later product price changes.
type OrderItem struct {
	ID           uint            `json:"id"`
	OrderID      uint            `json:"order_id"`
	ProductID    uint            `json:"product_id"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// TotalPrice returns quantity x price_per_unit
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.PricePerUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	Items []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// OrderItemInput is one requested line item
type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// UpdateOrderItemInput represents input for changing a line item quantity
type UpdateOrderItemInput struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
