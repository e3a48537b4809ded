package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/domain/repositories"
	"stone-shop.backend/internal/interfaces/http/response"
	"stone-shop.backend/pkg/utils"
)

// ProductHandler handles sellable products. It talks to the repository
// directly; there is no business logic beyond input validation.
type ProductHandler struct {
	productRepo repositories.ProductRepository
}

// NewProductHandler creates a new product handler
func NewProductHandler(productRepo repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

// ListProducts returns a page of products
// GET /api/v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	products, total, err := h.productRepo.List(c.Request.Context(), pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Products retrieved.", gin.H{
		"products":   products,
		"pagination": utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}

// GetProduct returns a single product
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productRepo.GetByID(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product retrieved.", gin.H{
		"product": product,
	})
}

// CreateProduct creates a sellable product (staff only, gated at the route)
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input entities.CreateProductInput
	if !bindJSON(c, &input) {
		return
	}

	stoneType := entities.StoneType(input.StoneType)
	if !stoneType.Valid() {
		response.Error(c, domainerrors.Validation("Invalid input.", map[string]string{
			"stone_type": "Must be one of: igneous, sedimentary, metamorphic.",
		}))
		return
	}

	product := &entities.ProductStone{
		Name:              input.Name,
		ScientificName:    input.ScientificName,
		StoneType:         stoneType,
		Colors:            input.Colors,
		Description:       input.Description,
		Applications:      input.Applications,
		ExtractionSites:   input.ExtractionSites,
		AvailableQuantity: input.AvailableQuantity,
	}
	if input.Image != "" {
		product.Image = null.StringFrom(input.Image)
	}

	fieldErrors := map[string]string{}
	var ok bool
	if product.Hardness, ok = parseNullDecimal(input.Hardness); !ok {
		fieldErrors["hardness"] = "A valid number is required."
	}
	if product.Density, ok = parseNullDecimal(input.Density); !ok {
		fieldErrors["density"] = "A valid number is required."
	}
	if product.PricePerKg, ok = parseNullDecimal(input.PricePerKg); !ok {
		fieldErrors["price_per_kg"] = "A valid number is required."
	}
	if len(fieldErrors) > 0 {
		response.Error(c, domainerrors.Validation("Invalid input.", fieldErrors))
		return
	}

	if err := h.productRepo.Create(c.Request.Context(), product); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Product created.", gin.H{
		"product": product,
	})
}

func parseNullDecimal(raw *string) (decimal.NullDecimal, bool) {
	if raw == nil {
		return decimal.NullDecimal{}, true
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NewNullDecimal(d), true
}
