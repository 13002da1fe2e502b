package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
	"github.com/iho/studioops/internal/usecase/mocks"
)

func TestBookingUseCase_CreateBooking(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateBookingInput
		expectError error
	}{
		{
			name: "successful creation",
			input: usecase.CreateBookingInput{
				Reference:     "BK-001",
				ClientName:    "Perera",
				EventType:     "Wedding",
				EventDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				PackageName:   "Gold",
				AssignedStaff: []string{"Amara"},
			},
		},
		{
			name:        "empty reference rejected",
			input:       usecase.CreateBookingInput{ClientName: "Perera"},
			expectError: domain.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := mocks.NewMockBookingRepository()
			uc := usecase.NewBookingUseCase(mocks.NewMockTransactionManager(), bookingRepo, mocks.NewMockLedgerRepository(), mocks.NewMockIDGenerator())

			booking, err := uc.CreateBooking(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected error %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if booking.ID == "" {
				t.Error("expected generated ID")
			}
			if booking.Finance != nil {
				t.Error("new booking must have no financial entry")
			}
		})
	}
}

func TestBookingUseCase_AssignStaff_ReconcilesPersistedLines(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository()
	ledgerRepo := mocks.NewMockLedgerRepository()
	uc := usecase.NewBookingUseCase(mocks.NewMockTransactionManager(), bookingRepo, ledgerRepo, mocks.NewMockIDGenerator())

	booking := &domain.Booking{
		ID:            "bk-1",
		Reference:     "BK-001",
		AssignedStaff: []string{"Amara", "Binara"},
		Finance: &domain.BookingFinance{
			PackageAmount: dec("1000"),
			CommissionLines: []domain.CommissionLine{
				{StaffName: "Amara", Amount: dec("300")},
				{StaffName: "Binara", Amount: dec("200")},
			},
		},
	}
	_ = bookingRepo.Create(context.Background(), booking)

	updated, err := uc.AssignStaff(context.Background(), management, "bk-1", []string{"Amara", "Kasun"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(updated.AssignedStaff) != 2 || updated.AssignedStaff[1] != "Kasun" {
		t.Errorf("assigned staff = %v", updated.AssignedStaff)
	}

	// Binara's line dropped, Kasun's zero seed pruned before the write
	lines := ledgerRepo.Lines["bk-1"]
	if len(lines) != 1 || lines[0].StaffName != "Amara" || !lines[0].Amount.Equal(dec("300")) {
		t.Errorf("persisted lines = %v, want only Amara 300", lines)
	}
}

func TestBookingUseCase_AssignStaff_RequiresManagement(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository()
	uc := usecase.NewBookingUseCase(mocks.NewMockTransactionManager(), bookingRepo, mocks.NewMockLedgerRepository(), mocks.NewMockIDGenerator())

	_, err := uc.AssignStaff(context.Background(), staff, "bk-1", []string{"Amara"})
	if !errors.Is(err, domain.ErrInsufficientRole) {
		t.Fatalf("expected ErrInsufficientRole, got %v", err)
	}
}

func TestBookingUseCase_ListBookings_ClampsLimit(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository()
	var gotLimit int
	bookingRepo.ListFunc = func(ctx context.Context, w usecase.Window, limit, offset int) ([]*domain.Booking, error) {
		gotLimit = limit
		return nil, nil
	}
	uc := usecase.NewBookingUseCase(mocks.NewMockTransactionManager(), bookingRepo, mocks.NewMockLedgerRepository(), mocks.NewMockIDGenerator())

	if _, err := uc.ListBookings(context.Background(), usecase.ListBookingsInput{Limit: 99999}); err != nil {
		t.Fatal(err)
	}
	if gotLimit != 500 {
		t.Errorf("limit = %d, want 500", gotLimit)
	}

	if _, err := uc.ListBookings(context.Background(), usecase.ListBookingsInput{}); err != nil {
		t.Fatal(err)
	}
	if gotLimit != 50 {
		t.Errorf("default limit = %d, want 50", gotLimit)
	}
}
