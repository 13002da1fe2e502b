package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/studioops/internal/adapter/http/dto"
	"github.com/iho/studioops/internal/adapter/http/middleware"
	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/usecase"
)

type bookingService interface {
	CreateBooking(ctx context.Context, input usecase.CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context, input usecase.ListBookingsInput) ([]*domain.Booking, error)
	AssignStaff(ctx context.Context, actor domain.Actor, id string, staff []string) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, actor domain.Actor, id string) error
}

// BookingHandler handles booking-related HTTP requests.
type BookingHandler struct {
	bookingUC bookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingUC bookingService) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// Create creates a new booking.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	booking, err := h.bookingUC.CreateBooking(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create booking", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BookingFromDomain(booking))
}

// Get retrieves a booking by ID.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing booking ID", "")
		return
	}

	booking, err := h.bookingUC.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get booking", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BookingFromDomain(booking))
}

// List lists bookings inside a reporting month.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	bookings, err := h.bookingUC.ListBookings(r.Context(), usecase.ListBookingsInput{
		Window: usecase.MonthWindow(period),
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BookingsFromDomain(bookings))
}

// AssignStaff replaces a booking's assigned-staff set.
func (h *BookingHandler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing booking ID", "")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.AssignStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	booking, err := h.bookingUC.AssignStaff(r.Context(), actor, id, req.StaffNames)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to assign staff", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BookingFromDomain(booking))
}

// Delete removes a booking.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing booking ID", "")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.bookingUC.DeleteBooking(r.Context(), actor, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete booking", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
