package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductOrder is a product sale (booth prints, albums, frames) carrying one
// declared revenue amount. Unlike bookings it has no category context; it
// only participates in the financial views of a report.
type ProductOrder struct {
	ID            string
	Reference     string
	ClientName    string
	OrderTotal    decimal.Decimal
	AssignedStaff []string
	Finance       *OrderFinance
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate validates a new product order.
func (o *ProductOrder) Validate() error {
	if o.Reference == "" {
		return ErrInvalidReference
	}
	if o.OrderTotal.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// IsReconciled reports whether a balanced financial entry has been recorded.
func (o *ProductOrder) IsReconciled() bool {
	return o.Finance != nil
}
