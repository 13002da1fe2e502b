package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/studioops/internal/adapter/http/dto"
	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
)

type bookingServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateBookingInput) (*domain.Booking, error)
	getFn    func(ctx context.Context, id string) (*domain.Booking, error)
	listFn   func(ctx context.Context, input usecase.ListBookingsInput) ([]*domain.Booking, error)
	assignFn func(ctx context.Context, actor domain.Actor, id string, staff []string) (*domain.Booking, error)
	deleteFn func(ctx context.Context, actor domain.Actor, id string) error
}

func (s *bookingServiceStub) CreateBooking(ctx context.Context, input usecase.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, input)
}

func (s *bookingServiceStub) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.getFn(ctx, id)
}

func (s *bookingServiceStub) ListBookings(ctx context.Context, input usecase.ListBookingsInput) ([]*domain.Booking, error) {
	return s.listFn(ctx, input)
}

func (s *bookingServiceStub) AssignStaff(ctx context.Context, actor domain.Actor, id string, staff []string) (*domain.Booking, error) {
	return s.assignFn(ctx, actor, id, staff)
}

func (s *bookingServiceStub) DeleteBooking(ctx context.Context, actor domain.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func TestBookingHandler_Create_Success(t *testing.T) {
	booking := &domain.Booking{ID: "bk-1", Reference: "BK-001", AssignedStaff: []string{"Kasun"}}
	var captured usecase.CreateBookingInput

	handler := NewBookingHandler(&bookingServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateBookingInput) (*domain.Booking, error) {
			captured = input
			return booking, nil
		},
	})

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Reference:     "BK-001",
		ClientName:    "Perera Family",
		EventType:     "wedding",
		EventDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		PackageName:   "Wedding Classic",
		AssignedStaff: []string{"Kasun"},
	})

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Reference != "BK-001" || captured.PackageName != "Wedding Classic" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.BookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "bk-1" {
		t.Fatalf("expected booking ID bk-1, got %s", resp.ID)
	}
	if resp.Reconciled {
		t.Fatal("new booking must not be reconciled")
	}
}

func TestBookingHandler_Create_InvalidBody(t *testing.T) {
	handler := NewBookingHandler(&bookingServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateBookingInput) (*domain.Booking, error) {
			t.Fatal("CreateBooking should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookingHandler_Get_NotFound(t *testing.T) {
	handler := NewBookingHandler(&bookingServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Booking, error) {
			return nil, domain.ErrBookingNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookingHandler_List_PassesWindow(t *testing.T) {
	handler := NewBookingHandler(&bookingServiceStub{
		listFn: func(ctx context.Context, input usecase.ListBookingsInput) ([]*domain.Booking, error) {
			wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
			wantTo := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
			if !input.Window.From.Equal(wantFrom) || !input.Window.To.Equal(wantTo) {
				t.Fatalf("unexpected window %+v", input.Window)
			}
			return []*domain.Booking{{ID: "bk-1"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings?month=3&year=2026", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookingHandler_AssignStaff(t *testing.T) {
	handler := NewBookingHandler(&bookingServiceStub{
		assignFn: func(ctx context.Context, actor domain.Actor, id string, staff []string) (*domain.Booking, error) {
			if len(staff) != 2 || staff[0] != "Kasun" || staff[1] != "Amara" {
				t.Fatalf("unexpected staff %v", staff)
			}
			return &domain.Booking{ID: id, AssignedStaff: staff}, nil
		},
	})

	body, _ := json.Marshal(dto.AssignStaffRequest{StaffNames: []string{"Kasun", "Amara"}})
	req := httptest.NewRequest(http.MethodPut, "/bookings/bk-1/staff", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "bk-1")
	req = withActor(req, managementActor)
	rec := httptest.NewRecorder()

	handler.AssignStaff(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookingHandler_Delete(t *testing.T) {
	deleted := false
	handler := NewBookingHandler(&bookingServiceStub{
		deleteFn: func(ctx context.Context, actor domain.Actor, id string) error {
			deleted = true
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/bookings/bk-1", nil)
	req = setChiURLParam(req, "id", "bk-1")
	req = withActor(req, managementActor)
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !deleted {
		t.Fatal("expected delete to be called")
	}
}
