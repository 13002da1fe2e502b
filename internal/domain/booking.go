package domain

import "time"

// Booking is an event booking carrying one declared revenue amount (the
// booked package price). Its financial breakdown is optional; a nil Finance
// means the booking has not been reconciled yet.
type Booking struct {
	ID            string
	Reference     string
	ClientName    string
	EventType     string
	EventDate     time.Time
	PackageName   string
	AssignedStaff []string
	Finance       *BookingFinance
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate validates a new booking.
func (b *Booking) Validate() error {
	if b.Reference == "" {
		return ErrInvalidReference
	}
	return nil
}

// IsReconciled reports whether a balanced financial entry has been recorded.
func (b *Booking) IsReconciled() bool {
	return b.Finance != nil
}
