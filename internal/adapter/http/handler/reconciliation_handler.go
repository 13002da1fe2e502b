package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/studioops/internal/adapter/http/dto"
	"github.com/iho/studioops/internal/adapter/http/middleware"
	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/infrastructure/metrics"
	"github.com/iho/studioops/internal/usecase"
)

type reconciliationService interface {
	DraftBookingFinance(ctx context.Context, bookingID string) (*domain.BookingFinance, error)
	DraftOrderFinance(ctx context.Context, orderID string) (*domain.OrderFinance, error)
	ValidateBreakdown(input usecase.ValidateBreakdownInput) domain.BalanceResult
	SaveBookingFinance(ctx context.Context, actor domain.Actor, bookingID string, fin *domain.BookingFinance) (*domain.BookingFinance, error)
	SaveOrderFinance(ctx context.Context, actor domain.Actor, orderID string, fin *domain.OrderFinance) (*domain.OrderFinance, error)
}

// ReconciliationHandler handles breakdown drafting, validation, and saving.
type ReconciliationHandler struct {
	reconciliationUC reconciliationService
	metrics          *metrics.Metrics
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC reconciliationService, m *metrics.Metrics) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC, metrics: m}
}

// DraftBookingFinance returns an in-memory breakdown draft for a booking.
func (h *ReconciliationHandler) DraftBookingFinance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing booking ID", "")
		return
	}

	draft, err := h.reconciliationUC.DraftBookingFinance(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to draft breakdown", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BookingFinanceFromDomain(draft))
}

// DraftOrderFinance returns an in-memory breakdown draft for a product order.
func (h *ReconciliationHandler) DraftOrderFinance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing order ID", "")
		return
	}

	draft, err := h.reconciliationUC.DraftOrderFinance(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to draft breakdown", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrderFinanceFromDomain(draft))
}

// ValidateBreakdown runs the balance check without persisting anything. An
// unbalanced breakdown returns 200 with is_balanced false.
func (h *ReconciliationHandler) ValidateBreakdown(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateBreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result := h.reconciliationUC.ValidateBreakdown(req.ToUseCaseInput())
	if h.metrics != nil {
		h.metrics.ValidationChecks.Inc()
	}

	writeJSON(w, http.StatusOK, dto.BalanceResultFromDomain(result))
}

// SaveBookingFinance commits a booking breakdown.
func (h *ReconciliationHandler) SaveBookingFinance(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SaveBookingFinanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	saved, err := h.reconciliationUC.SaveBookingFinance(r.Context(), actor, id, req.ToDomain())
	if err != nil {
		h.rejectSave(w, "booking", err)
		return
	}

	h.countSave("booking", metrics.OutcomeBalanced)
	writeJSON(w, http.StatusOK, dto.BookingFinanceFromDomain(saved))
}

// SaveOrderFinance commits a product-order breakdown.
func (h *ReconciliationHandler) SaveOrderFinance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing order ID", "")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SaveOrderFinanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	saved, err := h.reconciliationUC.SaveOrderFinance(r.Context(), actor, id, req.ToDomain())
	if err != nil {
		h.rejectSave(w, "order", err)
		return
	}

	h.countSave("order", metrics.OutcomeBalanced)
	writeJSON(w, http.StatusOK, dto.OrderFinanceFromDomain(saved))
}

func (h *ReconciliationHandler) rejectSave(w http.ResponseWriter, entity string, err error) {
	var ubErr *domain.UnbalancedError
	if errors.As(err, &ubErr) {
		h.countSave(entity, metrics.OutcomeUnbalanced)
		if h.metrics != nil {
			diff, _ := ubErr.Result.Difference.Abs().Float64()
			h.metrics.BreakdownDifference.Observe(diff)
		}
		writeUnbalanced(w, ubErr)
		return
	}

	h.countSave(entity, metrics.OutcomeError)
	writeError(w, mapDomainError(err), "failed to save breakdown", err.Error())
}

func (h *ReconciliationHandler) countSave(entity, outcome string) {
	if h.metrics != nil {
		h.metrics.BreakdownSaves.WithLabelValues(entity, outcome).Inc()
	}
}
