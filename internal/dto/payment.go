package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment authorization wire contract. These are transient DTOs exchanged
// with the payment collaborator over HTTP; they are never persisted.

type PaymentStatus string

const (
	PaymentApproved PaymentStatus = "approved"
	PaymentDeclined PaymentStatus = "declined"
	PaymentError    PaymentStatus = "error"
)

type PaymentRequest struct {
	OrderID       uuid.UUID       `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
}

type PaymentResponse struct {
	PaymentID   uuid.UUID     `json:"payment_id"`
	OrderID     uuid.UUID     `json:"order_id"`
	Status      PaymentStatus `json:"status"`
	ProcessedAt time.Time     `json:"processed_at"`
}
