package domain

import "errors"

var (
	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidReference = errors.New("reference code must not be empty")

	// Product order errors
	ErrOrderNotFound = errors.New("product order not found")

	// Package errors
	ErrPackageNotFound = errors.New("service package not found")
	ErrInvalidPrice    = errors.New("price field contains no numeric amount")

	// Ledger errors
	ErrUnbalancedEntry = errors.New("breakdown does not balance against declared amount")
	ErrInvalidAmount   = errors.New("amount must not be negative")
	ErrEmptyStaffName  = errors.New("commission line staff name must not be empty")
	ErrNoFinancialData = errors.New("no financial entry recorded")
)
