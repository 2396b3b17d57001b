package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"orderflow/internal/domain"
	apperrors "orderflow/internal/errors"
)

type OrderResponse struct {
	OrderID        uuid.UUID           `json:"order_id"`
	CustomerID     string              `json:"customer_id"`
	Items          []OrderItemResponse `json:"items"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	Currency       string              `json:"currency"`
	Status         string              `json:"status"`
	PaymentID      *uuid.UUID          `json:"payment_id,omitempty"`
	PaymentOutcome string              `json:"payment_outcome,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Amount,
			Currency:  item.UnitPrice.Currency,
		}
	}

	return OrderResponse{
		OrderID:        order.ID,
		CustomerID:     order.CustomerID,
		Items:          items,
		TotalAmount:    order.Total.Amount,
		Currency:       order.Total.Currency,
		Status:         string(order.Status),
		PaymentID:      order.PaymentID,
		PaymentOutcome: order.PaymentOutcome,
		CreatedAt:      order.CreatedAt,
	}
}

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Error     string                       `json:"error"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}
