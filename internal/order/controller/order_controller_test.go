package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"orderflow/internal/domain"
	"orderflow/internal/dto"
	apperrors "orderflow/internal/errors"
)

type mockOrderUseCase struct {
	CreateOrderFunc func(ctx context.Context, customerID string, paymentMethod string, items []dto.OrderItemRequest) (*domain.Order, error)
	GetOrderFunc    func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

func (m *mockOrderUseCase) CreateOrder(ctx context.Context, customerID string, paymentMethod string, items []dto.OrderItemRequest) (*domain.Order, error) {
	return m.CreateOrderFunc(ctx, customerID, paymentMethod, items)
}

func (m *mockOrderUseCase) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return m.GetOrderFunc(ctx, id)
}

func newTestRouter(uc OrderUseCase) http.Handler {
	ctrl := NewOrderController(uc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/orders", ctrl.CreateOrder)
	r.Get("/orders/{orderId}", ctrl.GetOrder)
	return r
}

func confirmedOrder() *domain.Order {
	price, _ := domain.NewMoney(decimal.RequireFromString("10.00"), "USD")
	items := []domain.OrderItem{{ProductID: "A", Quantity: 2, UnitPrice: price}}
	total, _ := domain.ComputeTotal(items)
	paymentID := uuid.New()
	now := time.Now().UTC()
	return &domain.Order{
		ID:             uuid.New(),
		CustomerID:     "cust-1",
		Items:          items,
		Total:          total,
		Status:         domain.OrderStatusConfirmed,
		PaymentID:      &paymentID,
		PaymentOutcome: domain.PaymentOutcomeApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCreateOrder_Success(t *testing.T) {
	order := confirmedOrder()
	uc := &mockOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, customerID string, paymentMethod string, items []dto.OrderItemRequest) (*domain.Order, error) {
			return order, nil
		},
	}

	body := `{"customer_id":"cust-1","payment_method":"credit_card","items":[{"product_id":"A","quantity":2,"unit_price":"10.00","currency":"USD"}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.OrderID != order.ID {
		t.Errorf("order id mismatch")
	}
	if resp.Status != "confirmed" {
		t.Errorf("expected confirmed, got %s", resp.Status)
	}
	if !resp.TotalAmount.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("expected total 20.00, got %s", resp.TotalAmount)
	}
	if resp.PaymentID == nil {
		t.Errorf("expected payment_id in response")
	}
}

func TestCreateOrder_InvalidJSON(t *testing.T) {
	uc := &mockOrderUseCase{}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %s", resp.Error)
	}
	if resp.TraceID == "" {
		t.Errorf("expected a traceId")
	}
}

func TestCreateOrder_ValidationDetailsSurface(t *testing.T) {
	uc := &mockOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, customerID string, paymentMethod string, items []dto.OrderItemRequest) (*domain.Order, error) {
			return nil, apperrors.NewValidationError("validation failed",
				apperrors.ValidationDetail{Field: "customer_id", Message: "customer_id is required"})
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[]}`))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Details) != 1 || resp.Details[0].Field != "customer_id" {
		t.Errorf("expected customer_id detail, got %+v", resp.Details)
	}
}

func TestCreateOrder_CurrencyMismatch(t *testing.T) {
	uc := &mockOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, customerID string, paymentMethod string, items []dto.OrderItemRequest) (*domain.Order, error) {
			return nil, apperrors.NewCurrencyMismatchError("USD", "EUR")
		},
	}

	body := `{"customer_id":"cust-1","items":[{"product_id":"A","quantity":1,"unit_price":"1.00","currency":"USD"}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "CURRENCY_MISMATCH" {
		t.Errorf("expected CURRENCY_MISMATCH, got %s", resp.Error)
	}
}

func TestGetOrder_Success(t *testing.T) {
	order := confirmedOrder()
	uc := &mockOrderUseCase{
		GetOrderFunc: func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
			if id != order.ID {
				t.Errorf("unexpected id %s", id)
			}
			return order, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.OrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.OrderID != order.ID {
		t.Errorf("order id mismatch")
	}
}

func TestGetOrder_InvalidID(t *testing.T) {
	uc := &mockOrderUseCase{}

	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	uc := &mockOrderUseCase{
		GetOrderFunc: func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %s", resp.Error)
	}
}

func TestCreateOrder_InternalError(t *testing.T) {
	uc := &mockOrderUseCase{
		CreateOrderFunc: func(ctx context.Context, customerID string, paymentMethod string, items []dto.OrderItemRequest) (*domain.Order, error) {
			return nil, apperrors.NewInternalError("persisting order", nil)
		},
	}

	body := `{"customer_id":"cust-1","items":[{"product_id":"A","quantity":1,"unit_price":"1.00","currency":"USD"}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
