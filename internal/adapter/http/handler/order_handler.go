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

type orderService interface {
	CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*domain.ProductOrder, error)
	GetOrder(ctx context.Context, id string) (*domain.ProductOrder, error)
	ListOrders(ctx context.Context, input usecase.ListOrdersInput) ([]*domain.ProductOrder, error)
	AssignStaff(ctx context.Context, actor domain.Actor, id string, staff []string) (*domain.ProductOrder, error)
	DeleteOrder(ctx context.Context, actor domain.Actor, id string) error
}

// OrderHandler handles product-order HTTP requests.
type OrderHandler struct {
	orderUC orderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderUC orderService) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// Create creates a new product order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	order, err := h.orderUC.CreateOrder(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create order", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.OrderFromDomain(order))
}

// Get retrieves a product order by ID.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing order ID", "")
		return
	}

	order, err := h.orderUC.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get order", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrderFromDomain(order))
}

// List lists product orders inside a reporting month.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	orders, err := h.orderUC.ListOrders(r.Context(), usecase.ListOrdersInput{
		Window: usecase.MonthWindow(period),
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdersFromDomain(orders))
}

// AssignStaff replaces an order's assigned-staff set.
func (h *OrderHandler) AssignStaff(w http.ResponseWriter, r *http.Request) {
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

	var req dto.AssignStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	order, err := h.orderUC.AssignStaff(r.Context(), actor, id, req.StaffNames)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to assign staff", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrderFromDomain(order))
}

// Delete removes a product order.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.orderUC.DeleteOrder(r.Context(), actor, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete order", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
