package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// ProductStone is a sellable catalog item. It is independent of Stone.
type ProductStone struct {
	ID                uint                `json:"id"`
	Name              string              `json:"name"`
	ScientificName    string              `json:"scientific_name"`
	StoneType         StoneType           `json:"stone_type"`
	Colors            string              `json:"colors"`
	Hardness          decimal.NullDecimal `json:"hardness,omitempty"`
	Density           decimal.NullDecimal `json:"density,omitempty"`
	Description       string              `json:"description"`
	Applications      string              `json:"applications"`
	ExtractionSites   string              `json:"extraction_sites"`
	Image             null.String         `json:"image,omitempty"`
	PricePerKg        decimal.NullDecimal `json:"price_per_kg,omitempty"`
	AvailableQuantity int                 `json:"available_quantity"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// CreateProductInput represents input for creating a sellable product
type CreateProductInput struct {
	Name              string  `json:"name" binding:"required"`
	ScientificName    string  `json:"scientific_name"`
	StoneType         string  `json:"stone_type" binding:"required"`
	Colors            string  `json:"colors"`
	Hardness          *string `json:"hardness"`
	Density           *string `json:"density"`
	Description       string  `json:"description"`
	Applications      string  `json:"applications"`
	ExtractionSites   string  `json:"extraction_sites"`
	Image             string  `json:"image"`
	PricePerKg        *string `json:"price_per_kg"`
	AvailableQuantity int     `json:"available_quantity" binding:"omitempty,gte=0"`
}
