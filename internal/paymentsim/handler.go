package paymentsim

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderflow/internal/dto"
)

// Payment method tokens that steer the simulated outcome. Anything else is
// approved.
const (
	MethodDeclined = "declined"
	MethodError    = "error"
	MethodSlow     = "slow"
)

// Handler implements the authorizer side of the payment wire contract with
// deterministic, token-driven outcomes so the orchestrator can be exercised
// end to end without a real payment provider.
type Handler struct {
	slowDelay time.Duration
	logger    *zap.Logger
}

func NewHandler(slowDelay time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		slowDelay: slowDelay,
		logger:    logger,
	}
}

func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid payment request", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	if req.Amount.IsNegative() || len(req.Currency) != 3 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid amount or currency"})
		return
	}

	status := dto.PaymentApproved
	switch req.PaymentMethod {
	case MethodDeclined:
		status = dto.PaymentDeclined
	case MethodError:
		status = dto.PaymentError
	case MethodSlow:
		// Holds the connection past the client timeout so callers see the
		// authorizer as unavailable.
		select {
		case <-time.After(h.slowDelay):
		case <-r.Context().Done():
			return
		}
	}

	resp := dto.PaymentResponse{
		PaymentID:   uuid.New(),
		OrderID:     req.OrderID,
		Status:      status,
		ProcessedAt: time.Now().UTC(),
	}

	h.logger.Info("payment processed",
		zap.String("orderId", req.OrderID.String()),
		zap.String("paymentId", resp.PaymentID.String()),
		zap.String("status", string(status)),
		zap.String("amount", req.Amount.String()),
		zap.String("currency", req.Currency))

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
