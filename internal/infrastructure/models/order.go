package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"type:varchar(10);not null;default:'pending'"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Order) TableName() string { return "orders" }

// OrderItem rows cascade with their order; the product reference is
// protected (a product referenced by any item cannot be deleted).
type OrderItem struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	OrderID      uint            `gorm:"not null;index"`
	ProductID    uint            `gorm:"not null;index"`
	Quantity     int             `gorm:"not null"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (OrderItem) TableName() string { return "order_items" }
