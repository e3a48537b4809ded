package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/domain/repositories"
	"stone-shop.backend/pkg/utils"
)

// OrderUsecase handles order business logic
type OrderUsecase struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	uow         repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	uow repositories.UnitOfWork,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		uow:         uow,
	}
}

// CreateOrder places an order for the given user. Each line snapshots the
// product's current price, and stock is decremented in the same transaction
// so the whole order fails when any product cannot cover its quantity.
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	order := &entities.Order{
		UserID: userID,
		Status: entities.OrderStatusPending,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.Create(txCtx, order); err != nil {
			return err
		}

		for _, line := range input.Items {
			product, err := u.productRepo.GetByID(txCtx, line.ProductID)
			if err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return domainerrors.Validation("Invalid input.", map[string]string{
						"product_id": fmt.Sprintf("Product %d does not exist.", line.ProductID),
					})
				}
				return err
			}
			if !product.PricePerKg.Valid {
				return domainerrors.Validation("Invalid input.", map[string]string{
					"product_id": fmt.Sprintf("Product %d has no price and cannot be ordered.", line.ProductID),
				})
			}

			if err := u.productRepo.AdjustStock(txCtx, line.ProductID, -line.Quantity); err != nil {
				if errors.Is(err, domainerrors.ErrInsufficientStock) {
					return domainerrors.Validation("Invalid input.", map[string]string{
						"quantity": fmt.Sprintf("Not enough stock for product %d.", line.ProductID),
					})
				}
				return err
			}

			item := &entities.OrderItem{
				OrderID:      order.ID,
				ProductID:    line.ProductID,
				Quantity:     line.Quantity,
				PricePerUnit: product.PricePerKg.Decimal,
			}
			if err := u.orderRepo.CreateItem(txCtx, item); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}

		order.TotalPrice = order.ComputeTotal()
		return u.orderRepo.UpdateTotal(txCtx, order.ID, order.TotalPrice)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns the order when it belongs to the caller. Orders of
// other users are indistinguishable from missing ones.
func (u *OrderUsecase) GetOrder(ctx context.Context, userID uuid.UUID, orderID uint) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return order, nil
}

// ListOrders returns a page of the caller's orders
func (u *OrderUsecase) ListOrders(ctx context.Context, userID uuid.UUID, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	return u.orderRepo.ListByUser(ctx, userID, pagination)
}

// UpdateItemQuantity changes a line item's quantity on a pending order,
// adjusting stock by the delta and re-deriving the total in one transaction.
func (u *OrderUsecase) UpdateItemQuantity(ctx context.Context, userID uuid.UUID, orderID, itemID uint, input *entities.UpdateOrderItemInput) (*entities.Order, error) {
	var updated *entities.Order

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		order, err := u.GetOrder(txCtx, userID, orderID)
		if err != nil {
			return err
		}
		if order.Status != entities.OrderStatusPending {
			return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict,
				"Only pending orders can be edited.", domainerrors.ErrOrderNotPending)
		}

		var item *entities.OrderItem
		for _, candidate := range order.Items {
			if candidate.ID == itemID {
				item = candidate
				break
			}
		}
		if item == nil {
			return domainerrors.ErrNotFound
		}

		delta := input.Quantity - item.Quantity
		if delta != 0 {
			if err := u.productRepo.AdjustStock(txCtx, item.ProductID, -delta); err != nil {
				if errors.Is(err, domainerrors.ErrInsufficientStock) {
					return domainerrors.Validation("Invalid input.", map[string]string{
						"quantity": fmt.Sprintf("Not enough stock for product %d.", item.ProductID),
					})
				}
				return err
			}
		}

		if err := u.orderRepo.UpdateItemQuantity(txCtx, itemID, input.Quantity); err != nil {
			return err
		}

		item.Quantity = input.Quantity
		order.TotalPrice = order.ComputeTotal()
		if err := u.orderRepo.UpdateTotal(txCtx, order.ID, order.TotalPrice); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkPaid transitions a pending order to paid and stamps the payment date
func (u *OrderUsecase) MarkPaid(ctx context.Context, userID uuid.UUID, orderID uint) (*entities.Order, error) {
	return u.transition(ctx, userID, orderID, entities.OrderStatusPaid)
}

// MarkFailed transitions a pending order to failed
func (u *OrderUsecase) MarkFailed(ctx context.Context, userID uuid.UUID, orderID uint) (*entities.Order, error) {
	return u.transition(ctx, userID, orderID, entities.OrderStatusFailed)
}

func (u *OrderUsecase) transition(ctx context.Context, userID uuid.UUID, orderID uint, target entities.OrderStatus) (*entities.Order, error) {
	order, err := u.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict,
			fmt.Sprintf("Order is already %s.", order.Status), domainerrors.ErrOrderNotPending)
	}

	order.Status = target
	if target == entities.OrderStatusPaid {
		order.PaymentDate = null.TimeFrom(time.Now().UTC())
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
