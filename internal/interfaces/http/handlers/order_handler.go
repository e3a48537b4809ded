package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/interfaces/http/middleware"
	"stone-shop.backend/internal/interfaces/http/response"
	"stone-shop.backend/internal/usecases"
	"stone-shop.backend/pkg/utils"
)

// OrderHandler handles the caller's orders
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// CreateOrder places an order for the caller
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Authentication("Authentication credentials were not provided.", domainerrors.ErrUnauthorized))
		return
	}

	var input entities.CreateOrderInput
	if !bindJSON(c, &input) {
		return
	}

	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Order created.", gin.H{
		"order": order,
	})
}

// ListOrders returns a page of the caller's orders
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Authentication("Authentication credentials were not provided.", domainerrors.ErrUnauthorized))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pagination := utils.GetPaginationParams(page, limit)

	orders, total, err := h.orderUsecase.ListOrders(c.Request.Context(), userID, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Orders retrieved.", gin.H{
		"orders":     orders,
		"pagination": utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	})
}

// GetOrder returns one of the caller's orders
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Authentication("Authentication credentials were not provided.", domainerrors.ErrUnauthorized))
		return
	}

	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderUsecase.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order retrieved.", gin.H{
		"order": order,
	})
}

// UpdateItemQuantity changes a line item quantity on a pending order
// PATCH /api/v1/orders/:id/items/:itemId
func (h *OrderHandler) UpdateItemQuantity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Authentication("Authentication credentials were not provided.", domainerrors.ErrUnauthorized))
		return
	}

	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "itemId")
	if !ok {
		return
	}

	var input entities.UpdateOrderItemInput
	if !bindJSON(c, &input) {
		return
	}

	order, err := h.orderUsecase.UpdateItemQuantity(c.Request.Context(), userID, orderID, itemID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Order item updated.", gin.H{
		"order": order,
	})
}

// PayOrder transitions a pending order to paid
// POST /api/v1/orders/:id/pay
func (h *OrderHandler) PayOrder(c *gin.Context) {
	h.transition(c, h.orderUsecase.MarkPaid, "Order paid.")
}

// FailOrder transitions a pending order to failed
// POST /api/v1/orders/:id/fail
func (h *OrderHandler) FailOrder(c *gin.Context) {
	h.transition(c, h.orderUsecase.MarkFailed, "Order marked as failed.")
}

func (h *OrderHandler) transition(c *gin.Context, apply func(ctx context.Context, userID uuid.UUID, orderID uint) (*entities.Order, error), message string) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Authentication("Authentication credentials were not provided.", domainerrors.ErrUnauthorized))
		return
	}

	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	order, err := apply(c.Request.Context(), userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, message, gin.H{
		"order": order,
	})
}
