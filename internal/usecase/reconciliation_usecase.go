package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/studioops/internal/domain"
)

// ReconciliationUseCase handles financial entry drafting, validation, and
// the balance-gated save of breakdowns for both revenue streams.
type ReconciliationUseCase struct {
	txManager   TransactionManager
	bookingRepo BookingRepository
	orderRepo   ProductOrderRepository
	ledgerRepo  LedgerRepository
	retrier     Retrier
}

// NewReconciliationUseCase creates a new reconciliation use case.
func NewReconciliationUseCase(
	txManager TransactionManager,
	bookingRepo BookingRepository,
	orderRepo ProductOrderRepository,
	ledgerRepo LedgerRepository,
	retrier Retrier,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		txManager:   txManager,
		bookingRepo: bookingRepo,
		orderRepo:   orderRepo,
		ledgerRepo:  ledgerRepo,
		retrier:     retrier,
	}
}

// DraftBookingFinance synthesizes an in-memory breakdown for the
// reconciliation view. Saved figures carry forward; commission lines are
// seeded from the booking's current assigned-staff set with zero amounts for
// newly assigned staff. Nothing is persisted.
func (uc *ReconciliationUseCase) DraftBookingFinance(ctx context.Context, bookingID string) (*domain.BookingFinance, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	draft := &domain.BookingFinance{PackageName: booking.PackageName}
	var saved []domain.CommissionLine
	if booking.Finance != nil {
		clone := *booking.Finance
		draft = &clone
		saved = booking.Finance.CommissionLines
	}
	draft.CommissionLines = domain.ReconcileCommissions(booking.AssignedStaff, saved)

	return draft, nil
}

// DraftOrderFinance synthesizes an in-memory breakdown for a product order,
// seeding the order amount from the declared order total.
func (uc *ReconciliationUseCase) DraftOrderFinance(ctx context.Context, orderID string) (*domain.OrderFinance, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	draft := &domain.OrderFinance{OrderAmount: order.OrderTotal}
	var saved []domain.CommissionLine
	if order.Finance != nil {
		clone := *order.Finance
		draft = &clone
		saved = order.Finance.CommissionLines
	}
	draft.CommissionLines = domain.ReconcileCommissions(order.AssignedStaff, saved)

	return draft, nil
}

// ValidateBreakdownInput is one interactive validation request. The endpoint
// is hit on every edit, so it stays a pure pass-through to the balance check.
type ValidateBreakdownInput struct {
	DeclaredAmount  decimal.Decimal
	CategoryAmounts []decimal.Decimal
	CommissionLines []domain.CommissionLine
}

// ValidateBreakdown checks a breakdown without touching persistence. An
// unbalanced breakdown is a normal editing state, never an error.
func (uc *ReconciliationUseCase) ValidateBreakdown(input ValidateBreakdownInput) domain.BalanceResult {
	return domain.CheckBalance(input.DeclaredAmount, input.CategoryAmounts, input.CommissionLines)
}

// SaveBookingFinance commits a booking breakdown. The save is rejected unless
// the caller may manage finances and the breakdown balances exactly against
// the declared amount. Commission lines are reconciled against the booking's
// current assigned-staff set and zero-amount lines are pruned before the
// write; the breakdown and its lines go into one transaction.
func (uc *ReconciliationUseCase) SaveBookingFinance(ctx context.Context, actor domain.Actor, bookingID string, fin *domain.BookingFinance) (*domain.BookingFinance, error) {
	if !actor.CanManageFinances() {
		return nil, domain.ErrInsufficientRole
	}

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	entry := *fin
	entry.CommissionLines = domain.ReconcileCommissions(booking.AssignedStaff, fin.CommissionLines)
	entry.UpdatedAt = time.Now().UTC()

	if err := validateLines(entry.CommissionLines); err != nil {
		return nil, err
	}
	if result := domain.CheckEntry(&entry); !result.IsBalanced {
		return nil, &domain.UnbalancedError{Result: result}
	}

	entry.CommissionLines = domain.PruneZeroCommissions(entry.CommissionLines)

	if err := uc.persist(ctx, bookingID, func(tx Transaction) error {
		return uc.ledgerRepo.SaveBookingFinance(ctx, tx, bookingID, &entry)
	}, entry.CommissionLines); err != nil {
		return nil, err
	}

	return &entry, nil
}

// SaveOrderFinance commits a product-order breakdown under the same gates as
// SaveBookingFinance.
func (uc *ReconciliationUseCase) SaveOrderFinance(ctx context.Context, actor domain.Actor, orderID string, fin *domain.OrderFinance) (*domain.OrderFinance, error) {
	if !actor.CanManageFinances() {
		return nil, domain.ErrInsufficientRole
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	entry := *fin
	entry.CommissionLines = domain.ReconcileCommissions(order.AssignedStaff, fin.CommissionLines)
	entry.UpdatedAt = time.Now().UTC()

	if err := validateLines(entry.CommissionLines); err != nil {
		return nil, err
	}
	if result := domain.CheckEntry(&entry); !result.IsBalanced {
		return nil, &domain.UnbalancedError{Result: result}
	}

	entry.CommissionLines = domain.PruneZeroCommissions(entry.CommissionLines)

	if err := uc.persist(ctx, orderID, func(tx Transaction) error {
		return uc.ledgerRepo.SaveOrderFinance(ctx, tx, orderID, &entry)
	}, entry.CommissionLines); err != nil {
		return nil, err
	}

	return &entry, nil
}

// persist writes a breakdown and its commission lines as one logical unit.
// The whole transaction retries on deadlock and serialization failures.
func (uc *ReconciliationUseCase) persist(ctx context.Context, entityID string, saveEntry func(Transaction) error, lines []domain.CommissionLine) error {
	return uc.retrier.Retry(ctx, func() error {
		return uc.persistOnce(ctx, entityID, saveEntry, lines)
	})
}

func (uc *ReconciliationUseCase) persistOnce(ctx context.Context, entityID string, saveEntry func(Transaction) error, lines []domain.CommissionLine) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := saveEntry(tx); err != nil {
		return err
	}
	if err := uc.ledgerRepo.ReplaceCommissionLines(ctx, tx, entityID, lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func validateLines(lines []domain.CommissionLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("%w: staff %q", err, line.StaffName)
		}
	}
	return nil
}
