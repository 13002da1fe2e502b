package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/iho/studioops/internal/adapter/http/dto"
	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/report"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeUnbalanced writes a rejected save with the balance figures so the
// client can show the remaining difference.
func writeUnbalanced(w http.ResponseWriter, ubErr *domain.UnbalancedError) {
	balance := dto.BalanceResultFromDomain(ubErr.Result)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   "breakdown does not balance",
		Message: ubErr.Error(),
		Balance: &balance,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPackageNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyStaffName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnbalancedEntry):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// periodFromQuery reads month and year query parameters. Both default to the
// current UTC month.
func periodFromQuery(r *http.Request) (report.Period, error) {
	now := time.Now().UTC()
	period := report.Period{Month: now.Month(), Year: now.Year()}

	if val := r.URL.Query().Get("month"); val != "" {
		month, err := strconv.Atoi(val)
		if err != nil || month < 1 || month > 12 {
			return report.Period{}, fmt.Errorf("month must be 1-12, got %q", val)
		}
		period.Month = time.Month(month)
	}
	if val := r.URL.Query().Get("year"); val != "" {
		year, err := strconv.Atoi(val)
		if err != nil || year < 2000 || year > 2200 {
			return report.Period{}, fmt.Errorf("year out of range: %q", val)
		}
		period.Year = year
	}

	return period, nil
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
