package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"orderflow/internal/domain"
	"orderflow/internal/errors"
)

// MemoryStore is the single owner of all orders after insertion. Every
// operation runs under the mutex and both Insert and Get copy the order, so
// callers never hold a reference into the map and a reader can never observe
// a half-applied update.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders: make(map[uuid.UUID]*domain.Order),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[order.ID]; exists {
		return errors.NewConflictError(fmt.Sprintf("order %s already exists", order.ID))
	}

	s.orders[order.ID] = copyOrder(order)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[id]
	if !exists {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	return copyOrder(order), nil
}

// UpdateStatus moves an order out of pending. Terminal orders reject any
// further transition. paymentID may be nil when the authorizer never
// answered.
func (s *MemoryStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, paymentID *uuid.UUID, outcome string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, exists := s.orders[id]
	if !exists {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	if order.Status.IsTerminal() {
		return nil, errors.NewConflictError(fmt.Sprintf("order %s is already %s", id, order.Status))
	}

	order.Status = status
	order.PaymentID = paymentID
	order.PaymentOutcome = outcome
	order.UpdatedAt = time.Now().UTC()

	return copyOrder(order), nil
}

// Count reports the number of stored orders. Used by status reporting.
func (s *MemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func copyOrder(order *domain.Order) *domain.Order {
	cp := *order
	cp.Items = make([]domain.OrderItem, len(order.Items))
	copy(cp.Items, order.Items)
	if order.PaymentID != nil {
		pid := *order.PaymentID
		cp.PaymentID = &pid
	}
	return &cp
}
