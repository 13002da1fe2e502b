package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionLine allocates part of an entity's revenue to one staff member.
// Staff are identified by display name; see ReconcileCommissions for how the
// line set is kept in sync with an entity's assigned-staff set.
type CommissionLine struct {
	StaffName string
	Amount    decimal.Decimal
}

// Validate validates a commission line.
func (l CommissionLine) Validate() error {
	if l.StaffName == "" {
		return ErrEmptyStaffName
	}
	if l.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// CategoryAmount is one named expense category of a financial breakdown.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// LedgerEntry is a financial breakdown attached to a revenue entity. Both
// breakdown variants expose the same shape so balance checking and salary
// aggregation are written once.
type LedgerEntry interface {
	// DeclaredAmount is the revenue amount the breakdown must sum to.
	DeclaredAmount() decimal.Decimal
	// CategoryAmounts are the fixed expense categories of the variant.
	CategoryAmounts() []CategoryAmount
	// Commissions are the per-staff allocation lines.
	Commissions() []CommissionLine
}

// Booking expense category names.
const (
	CategoryPhotographer = "photographer_expenses"
	CategoryVideographer = "videographer_expenses"
	CategoryEditor       = "editor_expenses"
	CategoryCompany      = "company_expenses"
	CategoryOther        = "other_expenses"
	CategoryFinal        = "final_amount"
)

// Product order expense category names.
const (
	CategoryStudioFee = "studio_fee"
	CategoryProfit    = "profit"
)

// BookingFinance is the financial breakdown of an event booking.
type BookingFinance struct {
	PackageCategory      string
	PackageName          string
	PackageAmount        decimal.Decimal
	PhotographerExpenses decimal.Decimal
	VideographerExpenses decimal.Decimal
	EditorExpenses       decimal.Decimal
	CompanyExpenses      decimal.Decimal
	OtherExpenses        decimal.Decimal
	FinalAmount          decimal.Decimal
	CommissionLines      []CommissionLine
	UpdatedAt            time.Time
}

// DeclaredAmount returns the booked package price.
func (f *BookingFinance) DeclaredAmount() decimal.Decimal {
	return f.PackageAmount
}

// CategoryAmounts returns the fixed booking expense categories.
func (f *BookingFinance) CategoryAmounts() []CategoryAmount {
	return []CategoryAmount{
		{Name: CategoryPhotographer, Amount: f.PhotographerExpenses},
		{Name: CategoryVideographer, Amount: f.VideographerExpenses},
		{Name: CategoryEditor, Amount: f.EditorExpenses},
		{Name: CategoryCompany, Amount: f.CompanyExpenses},
		{Name: CategoryOther, Amount: f.OtherExpenses},
		{Name: CategoryFinal, Amount: f.FinalAmount},
	}
}

// Commissions returns the per-staff allocation lines.
func (f *BookingFinance) Commissions() []CommissionLine {
	return f.CommissionLines
}

// OrderFinance is the financial breakdown of a product order.
type OrderFinance struct {
	OrderAmount     decimal.Decimal
	StudioFee       decimal.Decimal
	OtherExpenses   decimal.Decimal
	Profit          decimal.Decimal
	CommissionLines []CommissionLine
	UpdatedAt       time.Time
}

// DeclaredAmount returns the order total.
func (f *OrderFinance) DeclaredAmount() decimal.Decimal {
	return f.OrderAmount
}

// CategoryAmounts returns the fixed product-order expense categories.
func (f *OrderFinance) CategoryAmounts() []CategoryAmount {
	return []CategoryAmount{
		{Name: CategoryStudioFee, Amount: f.StudioFee},
		{Name: CategoryOther, Amount: f.OtherExpenses},
		{Name: CategoryProfit, Amount: f.Profit},
	}
}

// Commissions returns the per-staff allocation lines.
func (f *OrderFinance) Commissions() []CommissionLine {
	return f.CommissionLines
}

// PhotographerCommissionTotal is the summed commission across all lines. It is
// derived, never stored independently of the lines.
func (f *OrderFinance) PhotographerCommissionTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range f.CommissionLines {
		total = total.Add(line.Amount)
	}
	return total
}

// CommissionTotal sums the commission lines of any ledger entry.
func CommissionTotal(e LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Commissions() {
		total = total.Add(line.Amount)
	}
	return total
}
