package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"orderflow/internal/domain"
	"orderflow/internal/dto"
	apperrors "orderflow/internal/errors"
	"go.uber.org/zap"
)

const defaultPaymentMethod = "credit_card"

type OrderStore interface {
	Insert(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, paymentID *uuid.UUID, outcome string) (*domain.Order, error)
}

type PaymentAuthorizer interface {
	Authorize(ctx context.Context, req dto.PaymentRequest) (*dto.PaymentResponse, error)
}

type CreateOrderUseCase struct {
	store      OrderStore
	authorizer PaymentAuthorizer
	logger     *zap.Logger
}

func NewCreateOrderUseCase(store OrderStore, authorizer PaymentAuthorizer, logger *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		store:      store,
		authorizer: authorizer,
		logger:     logger,
	}
}

// CreateOrder runs the full orchestration: validate, total, insert pending,
// authorize payment, transition to a terminal status. The returned order is
// always terminal; an unreachable authorizer marks the order payment_failed
// instead of failing the request.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, customerID string, paymentMethod string, items []dto.OrderItemRequest) (*domain.Order, error) {
	if err := validateCreateOrder(customerID, items); err != nil {
		return nil, err
	}

	orderItems, err := buildItems(items)
	if err != nil {
		return nil, err
	}

	total, err := domain.ComputeTotal(orderItems)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items:      orderItems,
		Total:      total,
		Status:     domain.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.store.Insert(ctx, order); err != nil {
		// A duplicate here means a uuid collision, which should never happen.
		uc.logger.Error("inserting pending order failed", zap.String("orderId", order.ID.String()), zap.Error(err))
		return nil, apperrors.NewInternalError("persisting order", err)
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID.String()),
		zap.String("customerId", customerID),
		zap.Int("itemCount", len(orderItems)),
		zap.String("total", total.String()))

	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	// The store lock is not held here; the store is only touched before and
	// after the authorization call.
	paymentResp, err := uc.authorizer.Authorize(ctx, dto.PaymentRequest{
		OrderID:       order.ID,
		Amount:        total.Amount,
		Currency:      total.Currency,
		PaymentMethod: paymentMethod,
	})

	status, paymentID, outcome := resolveAuthorization(paymentResp, err)

	switch outcome {
	case domain.PaymentOutcomeApproved:
		uc.logger.Info("payment approved",
			zap.String("orderId", order.ID.String()),
			zap.String("paymentId", paymentID.String()))
	case domain.PaymentOutcomeDeclined:
		uc.logger.Warn("payment declined",
			zap.String("orderId", order.ID.String()),
			zap.String("paymentId", paymentID.String()))
	case domain.PaymentOutcomeUnavailable:
		uc.logger.Error("payment authorizer unavailable",
			zap.String("orderId", order.ID.String()),
			zap.Error(err))
	}

	updated, updateErr := uc.store.UpdateStatus(ctx, order.ID, status, paymentID, outcome)
	if updateErr != nil {
		uc.logger.Error("updating order status failed", zap.String("orderId", order.ID.String()), zap.Error(updateErr))
		return nil, apperrors.NewInternalError("updating order status", updateErr)
	}

	return updated, nil
}

func (uc *CreateOrderUseCase) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return uc.store.Get(ctx, id)
}

// resolveAuthorization maps the authorizer's answer onto the terminal order
// state. An UnavailableError is absorbed: the order fails, the request does
// not.
func resolveAuthorization(resp *dto.PaymentResponse, err error) (domain.OrderStatus, *uuid.UUID, string) {
	if err != nil {
		return domain.OrderStatusPaymentFailed, nil, domain.PaymentOutcomeUnavailable
	}

	paymentID := resp.PaymentID
	if resp.Status == dto.PaymentApproved {
		return domain.OrderStatusConfirmed, &paymentID, domain.PaymentOutcomeApproved
	}

	// Declined: a business outcome, the payment id is still kept for audit.
	return domain.OrderStatusPaymentFailed, &paymentID, domain.PaymentOutcomeDeclined
}

func validateCreateOrder(customerID string, items []dto.OrderItemRequest) error {
	var details []apperrors.ValidationDetail

	if customerID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customer_id",
			Message: "customer_id is required",
		})
	}

	if len(items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	for idx, item := range items {
		prefix := "items[" + strconv.Itoa(idx) + "]"

		if item.ProductID == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".product_id",
				Message: "product_id is required",
			})
		}

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".quantity",
				Message: "quantity must be at least 1",
			})
		}

		if item.UnitPrice.IsNegative() {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".unit_price",
				Message: "unit_price must be non-negative",
			})
		}

		if len(item.Currency) != 3 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + ".currency",
				Message: "currency must be a 3-letter ISO 4217 code",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func buildItems(items []dto.OrderItemRequest) ([]domain.OrderItem, error) {
	orderItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		price, err := domain.NewMoney(item.UnitPrice, item.Currency)
		if err != nil {
			return nil, err
		}
		orderItems[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		}
	}
	return orderItems, nil
}
