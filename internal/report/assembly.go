package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/studioops/internal/domain"
)

// Sheet names, in the fixed order the report emits them.
const (
	SheetBookings          = "Bookings"
	SheetProductOrders     = "Product Orders"
	SheetOrderFinancials   = "Order Financials"
	SheetPackageAnalytics  = "Package Analytics"
	SheetStaffPerformance  = "Staff Performance"
	SheetCategoryBreakdown = "Category Breakdown"
	SheetFinancialSummary  = "Financial Summary"
	SheetBookingFinancials = "Booking Financials"
	SheetStaffEarnings     = "Staff Earnings"
	SheetSalary            = "Salary Sheet"
)

// Placeholder rows keep every named sheet present even when its underlying
// collection has no matching entries.
const (
	placeholderNoBookings  = "No bookings recorded for this period"
	placeholderNoOrders    = "No product orders recorded for this period"
	placeholderNoFinancial = "No financial data available for this period"
	placeholderNoPackages  = "No service packages configured"
	placeholderNoStaff     = "No staff assignments for this period"
)

const summaryLabel = "SUMMARY"

// Row is one tabular row; cells hold strings, numbers, or decimal amounts.
type Row []any

// Sheet is one named tabular section of the report. The first row is the
// header.
type Sheet struct {
	Name string
	Rows []Row
}

// Period is the reporting window label. Window filtering happens before
// assembly; the period only names the report.
type Period struct {
	Month time.Month
	Year  int
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// Report is the assembled, ordered set of tabular sections handed to the
// sink for rendering.
type Report struct {
	Period Period
	Sheets []Sheet
}

// Sheet returns a section by name.
func (r *Report) Sheet(name string) (*Sheet, bool) {
	for i := range r.Sheets {
		if r.Sheets[i].Name == name {
			return &r.Sheets[i], true
		}
	}
	return nil, false
}

// Assemble arranges the aggregates and raw rows into the fixed set of named
// sections. Every section is always emitted; empty collections degrade to an
// explanatory placeholder row under the header.
func Assemble(bookings []*domain.Booking, orders []*domain.ProductOrder, packages []*domain.ServicePackage, period Period) *Report {
	return &Report{
		Period: period,
		Sheets: []Sheet{
			bookingDetailSheet(bookings),
			orderDetailSheet(orders),
			orderFinancialsSheet(orders),
			packageAnalyticsSheet(bookings, packages),
			staffPerformanceSheet(bookings, packages),
			categoryBreakdownSheet(bookings),
			financialSummarySheet(bookings, orders, packages),
			bookingFinancialsSheet(bookings),
			staffEarningsSheet(bookings),
			salarySheet(bookings, orders),
		},
	}
}

func sheetOf(name string, header Row, rows []Row, placeholder string) Sheet {
	if len(rows) == 0 {
		return Sheet{Name: name, Rows: []Row{header, {placeholder}}}
	}
	return Sheet{Name: name, Rows: append([]Row{header}, rows...)}
}

func bookingDetailSheet(bookings []*domain.Booking) Sheet {
	header := Row{"Reference", "Client", "Event Type", "Event Date", "Package", "Assigned Staff", "Reconciled"}

	rows := make([]Row, 0, len(bookings))
	for _, b := range bookings {
		eventType := b.EventType
		if eventType == "" {
			eventType = UncategorizedBucket
		}
		rows = append(rows, Row{
			b.Reference,
			b.ClientName,
			eventType,
			b.EventDate.Format("2006-01-02"),
			b.PackageName,
			strings.Join(b.AssignedStaff, ", "),
			yesNo(b.IsReconciled()),
		})
	}
	return sheetOf(SheetBookings, header, rows, placeholderNoBookings)
}

func orderDetailSheet(orders []*domain.ProductOrder) Sheet {
	header := Row{"Reference", "Client", "Order Total", "Assigned Staff", "Created", "Reconciled"}

	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, Row{
			o.Reference,
			o.ClientName,
			o.OrderTotal,
			strings.Join(o.AssignedStaff, ", "),
			o.CreatedAt.Format("2006-01-02"),
			yesNo(o.IsReconciled()),
		})
	}
	return sheetOf(SheetProductOrders, header, rows, placeholderNoOrders)
}

func orderFinancialsSheet(orders []*domain.ProductOrder) Sheet {
	header := Row{"Reference", "Order Amount", "Commission Total", "Studio Fee", "Other Expenses", "Profit"}

	var rows []Row
	for _, o := range orders {
		if o.Finance == nil {
			continue
		}
		rows = append(rows, Row{
			o.Reference,
			o.Finance.OrderAmount,
			o.Finance.PhotographerCommissionTotal(),
			o.Finance.StudioFee,
			o.Finance.OtherExpenses,
			o.Finance.Profit,
		})
	}
	return sheetOf(SheetOrderFinancials, header, rows, placeholderNoFinancial)
}

func packageAnalyticsSheet(bookings []*domain.Booking, packages []*domain.ServicePackage) Sheet {
	header := Row{"Package", "Bookings", "Revenue"}

	stats := AggregateByPackage(bookings, packages)
	rows := make([]Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, Row{s.Name, s.Count, s.Revenue})
	}
	return sheetOf(SheetPackageAnalytics, header, rows, placeholderNoPackages)
}

func staffPerformanceSheet(bookings []*domain.Booking, packages []*domain.ServicePackage) Sheet {
	header := Row{"Staff", "Assignments", "Revenue Share"}

	stats := AggregateByStaff(bookings, packages)
	sortStaffStatsByRevenue(stats)
	rows := make([]Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, Row{s.Name, s.Count, s.Revenue})
	}
	return sheetOf(SheetStaffPerformance, header, rows, placeholderNoStaff)
}

func categoryBreakdownSheet(bookings []*domain.Booking) Sheet {
	header := Row{"Category", "Bookings"}

	stats := AggregateByCategory(bookings)
	rows := make([]Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, Row{s.Name, s.Count})
	}
	return sheetOf(SheetCategoryBreakdown, header, rows, placeholderNoBookings)
}

func financialSummarySheet(bookings []*domain.Booking, orders []*domain.ProductOrder, packages []*domain.ServicePackage) Sheet {
	header := Row{"Figure", "Value"}

	if len(bookings) == 0 && len(orders) == 0 {
		return sheetOf(SheetFinancialSummary, header, nil, placeholderNoFinancial)
	}

	reconciledBookingRevenue := decimal.Zero
	reconciledBookings := 0
	for _, b := range bookings {
		if b.Finance == nil {
			continue
		}
		reconciledBookings++
		reconciledBookingRevenue = reconciledBookingRevenue.Add(b.Finance.PackageAmount)
	}

	orderRevenue := decimal.Zero
	reconciledOrders := 0
	for _, o := range orders {
		orderRevenue = orderRevenue.Add(o.OrderTotal)
		if o.Finance != nil {
			reconciledOrders++
		}
	}

	rows := []Row{
		{"Total bookings", len(bookings)},
		{"Reconciled bookings", reconciledBookings},
		{"Declared booking income", TotalDeclaredIncome(bookings, packages)},
		{"Reconciled booking revenue", reconciledBookingRevenue},
		{"Total product orders", len(orders)},
		{"Reconciled product orders", reconciledOrders},
		{"Product order revenue", orderRevenue},
	}
	return sheetOf(SheetFinancialSummary, header, rows, placeholderNoFinancial)
}

func bookingFinancialsSheet(bookings []*domain.Booking) Sheet {
	header := Row{
		"Reference", "Package", "Package Amount", "Photographer", "Videographer",
		"Editor", "Company", "Other", "Commission Total", "Final Amount",
	}

	sums := make([]decimal.Decimal, 8)
	for i := range sums {
		sums[i] = decimal.Zero
	}

	var rows []Row
	for _, b := range bookings {
		if b.Finance == nil {
			continue
		}
		f := b.Finance
		commission := domain.CommissionTotal(f)
		rows = append(rows, Row{
			b.Reference, f.PackageName, f.PackageAmount, f.PhotographerExpenses,
			f.VideographerExpenses, f.EditorExpenses, f.CompanyExpenses,
			f.OtherExpenses, commission, f.FinalAmount,
		})
		for i, amount := range []decimal.Decimal{
			f.PackageAmount, f.PhotographerExpenses, f.VideographerExpenses,
			f.EditorExpenses, f.CompanyExpenses, f.OtherExpenses, commission, f.FinalAmount,
		} {
			sums[i] = sums[i].Add(amount)
		}
	}

	if len(rows) > 0 {
		rows = append(rows, Row{
			summaryLabel, "", sums[0], sums[1], sums[2], sums[3], sums[4], sums[5], sums[6], sums[7],
		})
	}
	return sheetOf(SheetBookingFinancials, header, rows, placeholderNoFinancial)
}

func staffEarningsSheet(bookings []*domain.Booking) Sheet {
	header := Row{"Staff", "Earnings"}

	earnings := ComputeSalary(bookings, nil)
	SortEarningsByTotal(earnings)

	rows := make([]Row, 0, len(earnings)+1)
	for _, e := range earnings {
		rows = append(rows, Row{e.Name, e.BookingEarnings})
	}
	if len(rows) > 0 {
		rows = append(rows, Row{summaryLabel, SumEarnings(earnings).BookingEarnings})
	}
	return sheetOf(SheetStaffEarnings, header, rows, placeholderNoFinancial)
}

func salarySheet(bookings []*domain.Booking, orders []*domain.ProductOrder) Sheet {
	header := Row{"Staff", "Booking Earnings", "Product Earnings", "Total Earnings"}

	earnings := ComputeSalary(bookings, orders)
	SortEarningsByTotal(earnings)

	rows := make([]Row, 0, len(earnings)+1)
	for _, e := range earnings {
		rows = append(rows, Row{e.Name, e.BookingEarnings, e.ProductEarnings, e.TotalEarnings})
	}
	if len(rows) > 0 {
		sum := SumEarnings(earnings)
		rows = append(rows, Row{summaryLabel, sum.BookingEarnings, sum.ProductEarnings, sum.TotalEarnings})
	}
	return sheetOf(SheetSalary, header, rows, placeholderNoFinancial)
}

func sortStaffStatsByRevenue(stats []StaffStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue.GreaterThan(stats[j].Revenue)
	})
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
