package domain

import (
	"time"

	"github.com/google/uuid"

	"orderflow/internal/errors"
)

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusConfirmed     OrderStatus = "confirmed"
	OrderStatusPaymentFailed OrderStatus = "payment_failed"
)

// IsTerminal reports whether no further status transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusPaymentFailed
}

// Payment outcomes record how the authorization call ended, independently of
// the resulting order status. A decline and an unreachable authorizer both
// terminate the order as payment_failed but must stay distinguishable.
const (
	PaymentOutcomeApproved    = "approved"
	PaymentOutcomeDeclined    = "declined"
	PaymentOutcomeUnavailable = "unavailable"
)

type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice Money
}

type Order struct {
	ID             uuid.UUID
	CustomerID     string
	Items          []OrderItem
	Total          Money
	Status         OrderStatus
	PaymentID      *uuid.UUID
	PaymentOutcome string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ComputeTotal sums quantity x unit price across items. All items must share
// one currency.
func ComputeTotal(items []OrderItem) (Money, error) {
	if len(items) == 0 {
		return Money{}, errors.NewValidationError("items must not be empty",
			errors.ValidationDetail{Field: "items", Message: "at least one item is required"})
	}

	total := items[0].UnitPrice.MulInt(items[0].Quantity)
	for _, item := range items[1:] {
		sum, err := total.Add(item.UnitPrice.MulInt(item.Quantity))
		if err != nil {
			return Money{}, err
		}
		total = sum
	}

	return total, nil
}
