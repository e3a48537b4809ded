package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStone struct {
	ID                uint                `gorm:"primaryKey;autoIncrement"`
	Name              string              `gorm:"type:varchar(150);not null"`
	ScientificName    string              `gorm:"type:varchar(150)"`
	StoneType         string              `gorm:"type:varchar(50);not null"`
	Colors            string              `gorm:"type:varchar(100)"`
	Hardness          decimal.NullDecimal `gorm:"type:decimal(3,1)"`
	Density           decimal.NullDecimal `gorm:"type:decimal(5,2)"`
	Description       string              `gorm:"type:text"`
	Applications      string              `gorm:"type:text"`
	ExtractionSites   string              `gorm:"type:text"`
	Image             *string             `gorm:"type:varchar(255)"`
	PricePerKg        decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	AvailableQuantity int                 `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ProductStone) TableName() string { return "product_stones" }
