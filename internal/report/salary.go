package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/studioops/internal/domain"
)

// StaffEarnings is one staff member's salary rollup across both revenue
// streams. The merge key is the display name string, so two records crediting
// the literal same name accumulate into one row.
type StaffEarnings struct {
	Name            string
	BookingEarnings decimal.Decimal
	ProductEarnings decimal.Decimal
	TotalEarnings   decimal.Decimal
}

// ComputeSalary merges commission lines from reconciled bookings and
// reconciled product orders into one per-staff ledger. The two streams are
// summed independently, so either may be empty. Both inputs are expected to
// be pre-filtered to the reporting window. Output follows first-sight order;
// use SortEarningsByTotal for the presentation order.
func ComputeSalary(bookings []*domain.Booking, orders []*domain.ProductOrder) []StaffEarnings {
	var order []string
	totals := make(map[string]*StaffEarnings)

	get := func(name string) *StaffEarnings {
		earnings, ok := totals[name]
		if !ok {
			earnings = &StaffEarnings{
				Name:            name,
				BookingEarnings: decimal.Zero,
				ProductEarnings: decimal.Zero,
				TotalEarnings:   decimal.Zero,
			}
			totals[name] = earnings
			order = append(order, name)
		}
		return earnings
	}

	for _, b := range bookings {
		if b.Finance == nil {
			continue
		}
		for _, line := range b.Finance.CommissionLines {
			earnings := get(line.StaffName)
			earnings.BookingEarnings = earnings.BookingEarnings.Add(line.Amount)
			earnings.TotalEarnings = earnings.TotalEarnings.Add(line.Amount)
		}
	}

	for _, o := range orders {
		if o.Finance == nil {
			continue
		}
		for _, line := range o.Finance.CommissionLines {
			earnings := get(line.StaffName)
			earnings.ProductEarnings = earnings.ProductEarnings.Add(line.Amount)
			earnings.TotalEarnings = earnings.TotalEarnings.Add(line.Amount)
		}
	}

	result := make([]StaffEarnings, 0, len(order))
	for _, name := range order {
		result = append(result, *totals[name])
	}
	return result
}

// SortEarningsByTotal sorts a salary ledger by total earnings descending,
// with name order as the stable tie-break.
func SortEarningsByTotal(earnings []StaffEarnings) {
	sort.SliceStable(earnings, func(i, j int) bool {
		return earnings[i].TotalEarnings.GreaterThan(earnings[j].TotalEarnings)
	})
}

// SumEarnings returns the column-wise totals across all staff, used for the
// trailing SUMMARY row.
func SumEarnings(earnings []StaffEarnings) StaffEarnings {
	sum := StaffEarnings{
		Name:            "SUMMARY",
		BookingEarnings: decimal.Zero,
		ProductEarnings: decimal.Zero,
		TotalEarnings:   decimal.Zero,
	}
	for _, e := range earnings {
		sum.BookingEarnings = sum.BookingEarnings.Add(e.BookingEarnings)
		sum.ProductEarnings = sum.ProductEarnings.Add(e.ProductEarnings)
		sum.TotalEarnings = sum.TotalEarnings.Add(e.TotalEarnings)
	}
	return sum
}
