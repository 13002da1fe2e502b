package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/studioops/internal/domain"
)

// BookingUseCase handles booking management.
type BookingUseCase struct {
	txManager   TransactionManager
	bookingRepo BookingRepository
	ledgerRepo  LedgerRepository
	idGen       IDGenerator
}

// NewBookingUseCase creates a new BookingUseCase.
func NewBookingUseCase(txManager TransactionManager, bookingRepo BookingRepository, ledgerRepo LedgerRepository, idGen IDGenerator) *BookingUseCase {
	return &BookingUseCase{
		txManager:   txManager,
		bookingRepo: bookingRepo,
		ledgerRepo:  ledgerRepo,
		idGen:       idGen,
	}
}

// CreateBookingInput represents input for creating a booking.
type CreateBookingInput struct {
	Reference     string
	ClientName    string
	EventType     string
	EventDate     time.Time
	PackageName   string
	AssignedStaff []string
}

// CreateBooking creates a new booking with no financial entry.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	now := time.Now().UTC()

	booking := &domain.Booking{
		ID:            uc.idGen.Generate(),
		Reference:     input.Reference,
		ClientName:    input.ClientName,
		EventType:     input.EventType,
		EventDate:     input.EventDate,
		PackageName:   input.PackageName,
		AssignedStaff: input.AssignedStaff,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := booking.Validate(); err != nil {
		return nil, err
	}
	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (uc *BookingUseCase) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return uc.bookingRepo.GetByID(ctx, id)
}

// ListBookingsInput represents input for listing bookings.
type ListBookingsInput struct {
	Window Window
	Limit  int
	Offset int
}

// ListBookings lists bookings inside a reporting window.
func (uc *BookingUseCase) ListBookings(ctx context.Context, input ListBookingsInput) ([]*domain.Booking, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}
	if input.Limit > 500 {
		input.Limit = 500
	}
	return uc.bookingRepo.List(ctx, input.Window, input.Limit, input.Offset)
}

// AssignStaff replaces a booking's assigned-staff set. Any persisted
// commission lines are reconciled against the new set in the same
// transaction, so stored lines never reference unassigned staff.
func (uc *BookingUseCase) AssignStaff(ctx context.Context, actor domain.Actor, id string, staff []string) (*domain.Booking, error) {
	if !actor.CanManageFinances() {
		return nil, domain.ErrInsufficientRole
	}

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := uc.bookingRepo.UpdateAssignedStaff(ctx, tx, id, staff, now); err != nil {
		return nil, err
	}

	if booking.Finance != nil {
		lines := domain.ReconcileCommissions(staff, booking.Finance.CommissionLines)
		lines = domain.PruneZeroCommissions(lines)
		if err := uc.ledgerRepo.ReplaceCommissionLines(ctx, tx, id, lines); err != nil {
			return nil, err
		}
		booking.Finance.CommissionLines = lines
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	booking.AssignedStaff = staff
	booking.UpdatedAt = now
	return booking, nil
}

// DeleteBooking removes a booking and, through the schema's cascade, its
// financial entry. There is no soft delete.
func (uc *BookingUseCase) DeleteBooking(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.CanManageFinances() {
		return domain.ErrInsufficientRole
	}
	return uc.bookingRepo.Delete(ctx, id)
}
