package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/studioops/internal/domain"
)

// OrderUseCase handles product order management.
type OrderUseCase struct {
	txManager  TransactionManager
	orderRepo  ProductOrderRepository
	ledgerRepo LedgerRepository
	idGen      IDGenerator
}

// NewOrderUseCase creates a new OrderUseCase.
func NewOrderUseCase(txManager TransactionManager, orderRepo ProductOrderRepository, ledgerRepo LedgerRepository, idGen IDGenerator) *OrderUseCase {
	return &OrderUseCase{
		txManager:  txManager,
		orderRepo:  orderRepo,
		ledgerRepo: ledgerRepo,
		idGen:      idGen,
	}
}

// CreateOrderInput represents input for creating a product order.
type CreateOrderInput struct {
	Reference     string
	ClientName    string
	OrderTotal    decimal.Decimal
	AssignedStaff []string
}

// CreateOrder creates a new product order with no financial entry.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.ProductOrder, error) {
	now := time.Now().UTC()

	order := &domain.ProductOrder{
		ID:            uc.idGen.Generate(),
		Reference:     input.Reference,
		ClientName:    input.ClientName,
		OrderTotal:    input.OrderTotal,
		AssignedStaff: input.AssignedStaff,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves a product order by ID.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*domain.ProductOrder, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// ListOrdersInput represents input for listing product orders.
type ListOrdersInput struct {
	Window Window
	Limit  int
	Offset int
}

// ListOrders lists product orders inside a reporting window.
func (uc *OrderUseCase) ListOrders(ctx context.Context, input ListOrdersInput) ([]*domain.ProductOrder, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}
	if input.Limit > 500 {
		input.Limit = 500
	}
	return uc.orderRepo.List(ctx, input.Window, input.Limit, input.Offset)
}

// AssignStaff replaces an order's assigned-staff set, reconciling any
// persisted commission lines against the new set in the same transaction.
func (uc *OrderUseCase) AssignStaff(ctx context.Context, actor domain.Actor, id string, staff []string) (*domain.ProductOrder, error) {
	if !actor.CanManageFinances() {
		return nil, domain.ErrInsufficientRole
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := uc.orderRepo.UpdateAssignedStaff(ctx, tx, id, staff, now); err != nil {
		return nil, err
	}

	if order.Finance != nil {
		lines := domain.ReconcileCommissions(staff, order.Finance.CommissionLines)
		lines = domain.PruneZeroCommissions(lines)
		if err := uc.ledgerRepo.ReplaceCommissionLines(ctx, tx, id, lines); err != nil {
			return nil, err
		}
		order.Finance.CommissionLines = lines
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	order.AssignedStaff = staff
	order.UpdatedAt = now
	return order, nil
}

// DeleteOrder removes a product order and its financial entry.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.CanManageFinances() {
		return domain.ErrInsufficientRole
	}
	return uc.orderRepo.Delete(ctx, id)
}
