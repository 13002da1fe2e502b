package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/studioops/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"package not found", domain.ErrPackageNotFound, http.StatusNotFound},
		{"invalid reference", domain.ErrInvalidReference, http.StatusBadRequest},
		{"invalid price", domain.ErrInvalidPrice, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"empty staff name", domain.ErrEmptyStaffName, http.StatusBadRequest},
		{"unbalanced entry", domain.ErrUnbalancedEntry, http.StatusBadRequest},
		{"unbalanced error type", &domain.UnbalancedError{}, http.StatusBadRequest},
		{"insufficient role", domain.ErrInsufficientRole, http.StatusForbidden},
		{"expired token", domain.ErrExpiredToken, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Fatalf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestPeriodFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reports?month=12&year=2025", nil)
	period, err := periodFromQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if period.Month != time.December || period.Year != 2025 {
		t.Fatalf("unexpected period %+v", period)
	}
}

func TestPeriodFromQueryDefaultsToCurrentMonth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	period, err := periodFromQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now().UTC()
	if period.Month != now.Month() || period.Year != now.Year() {
		t.Fatalf("expected current month default, got %+v", period)
	}
}

func TestPeriodFromQueryRejectsBadMonth(t *testing.T) {
	for _, q := range []string{"month=0", "month=13", "month=abc", "year=1800"} {
		req := httptest.NewRequest(http.MethodGet, "/reports?"+q, nil)
		if _, err := periodFromQuery(req); err == nil {
			t.Fatalf("expected error for %q", q)
		}
	}
}
