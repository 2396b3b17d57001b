package order

import (
	"orderflow/internal/config"
	"orderflow/internal/infrastructure/payment"
	"orderflow/internal/order/controller"
	"orderflow/internal/order/store"
	"orderflow/internal/order/usecase"
	"go.uber.org/zap"
)

func NewModule(cfg *config.Config, logger *zap.Logger) (*controller.OrderController, *store.MemoryStore) {
	orderStore := store.NewMemoryStore()

	authorizer := payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.Timeout, logger)

	uc := usecase.NewCreateOrderUseCase(orderStore, authorizer, logger)

	return controller.NewOrderController(uc, logger), orderStore
}
