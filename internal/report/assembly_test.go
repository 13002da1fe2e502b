package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/studioops/internal/domain"
)

var allSheetNames = []string{
	SheetBookings,
	SheetProductOrders,
	SheetOrderFinancials,
	SheetPackageAnalytics,
	SheetStaffPerformance,
	SheetCategoryBreakdown,
	SheetFinancialSummary,
	SheetBookingFinancials,
	SheetStaffEarnings,
	SheetSalary,
}

func TestAssemble_EmptyInputCompleteness(t *testing.T) {
	report := Assemble(nil, nil, nil, Period{Month: time.March, Year: 2026})

	require.Len(t, report.Sheets, len(allSheetNames))
	for i, name := range allSheetNames {
		assert.Equal(t, name, report.Sheets[i].Name, "sheet order")
	}

	for _, sheet := range report.Sheets {
		// header plus one placeholder row, never an empty section
		require.Len(t, sheet.Rows, 2, "sheet %s", sheet.Name)
		require.NotEmpty(t, sheet.Rows[1], "sheet %s placeholder", sheet.Name)
		placeholder, ok := sheet.Rows[1][0].(string)
		require.True(t, ok, "sheet %s placeholder cell", sheet.Name)
		assert.Contains(t, placeholder, "No ", "sheet %s placeholder text", sheet.Name)
	}
}

func TestAssemble_FixedOrderWithData(t *testing.T) {
	bookings := []*domain.Booking{
		{
			Reference:     "BK-001",
			ClientName:    "Perera",
			EventType:     "Wedding",
			EventDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			PackageName:   "Gold",
			AssignedStaff: []string{"Amara", "Kasun"},
			Finance: &domain.BookingFinance{
				PackageName:          "Gold",
				PackageAmount:        dec("50000"),
				PhotographerExpenses: dec("10000"),
				CompanyExpenses:      dec("15000"),
				FinalAmount:          dec("15000"),
				CommissionLines: []domain.CommissionLine{
					{StaffName: "Amara", Amount: dec("6000")},
					{StaffName: "Kasun", Amount: dec("4000")},
				},
			},
		},
	}
	orders := []*domain.ProductOrder{
		{
			Reference:  "PO-001",
			OrderTotal: dec("12000"),
			CreatedAt:  time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			Finance: &domain.OrderFinance{
				OrderAmount:   dec("12000"),
				StudioFee:     dec("2000"),
				Profit:        dec("7000"),
				CommissionLines: []domain.CommissionLine{
					{StaffName: "Amara", Amount: dec("3000")},
				},
			},
		},
	}
	packages := []*domain.ServicePackage{{Name: "Gold", Price: "Rs. 50,000"}}

	report := Assemble(bookings, orders, packages, Period{Month: time.March, Year: 2026})

	require.Len(t, report.Sheets, len(allSheetNames))

	salary, ok := report.Sheet(SheetSalary)
	require.True(t, ok)
	// header, Amara, Kasun, SUMMARY
	require.Len(t, salary.Rows, 4)
	assert.Equal(t, "Amara", salary.Rows[1][0])
	assert.Equal(t, "SUMMARY", salary.Rows[3][0])
	assertDecimalCell(t, salary.Rows[3][3], "13000")
}

func TestAssemble_SalarySummaryRow(t *testing.T) {
	bookings := []*domain.Booking{
		reconciledBooking(domain.CommissionLine{StaffName: "A", Amount: dec("500")}),
	}
	orders := []*domain.ProductOrder{
		reconciledOrder(
			domain.CommissionLine{StaffName: "A", Amount: dec("200")},
			domain.CommissionLine{StaffName: "B", Amount: dec("300")},
		),
	}

	report := Assemble(bookings, orders, nil, Period{Month: time.January, Year: 2026})

	salary, ok := report.Sheet(SheetSalary)
	require.True(t, ok)
	require.Len(t, salary.Rows, 4)

	// sorted by total descending: A (700) before B (300)
	assert.Equal(t, "A", salary.Rows[1][0])
	assert.Equal(t, "B", salary.Rows[2][0])

	summary := salary.Rows[3]
	assert.Equal(t, "SUMMARY", summary[0])
	assertDecimalCell(t, summary[1], "500")
	assertDecimalCell(t, summary[2], "500")
	assertDecimalCell(t, summary[3], "1000")
}

func TestAssemble_StaffEarningsIsBookingOnly(t *testing.T) {
	bookings := []*domain.Booking{
		reconciledBooking(domain.CommissionLine{StaffName: "A", Amount: dec("500")}),
	}
	orders := []*domain.ProductOrder{
		reconciledOrder(domain.CommissionLine{StaffName: "A", Amount: dec("9999")}),
	}

	report := Assemble(bookings, orders, nil, Period{Month: time.January, Year: 2026})

	earnings, ok := report.Sheet(SheetStaffEarnings)
	require.True(t, ok)
	require.Len(t, earnings.Rows, 3)
	assertDecimalCell(t, earnings.Rows[1][1], "500")
}

func TestAssemble_BookingFinancialsSummary(t *testing.T) {
	bookings := []*domain.Booking{
		{
			Reference: "BK-001",
			Finance: &domain.BookingFinance{
				PackageAmount:        dec("1000"),
				PhotographerExpenses: dec("400"),
				FinalAmount:          dec("500"),
				CommissionLines:      []domain.CommissionLine{{StaffName: "A", Amount: dec("100")}},
			},
		},
		{Reference: "BK-002"}, // unreconciled, excluded
	}

	report := Assemble(bookings, nil, nil, Period{Month: time.January, Year: 2026})

	fin, ok := report.Sheet(SheetBookingFinancials)
	require.True(t, ok)
	// header, one data row, SUMMARY
	require.Len(t, fin.Rows, 3)
	assert.Equal(t, "SUMMARY", fin.Rows[2][0])
	assertDecimalCell(t, fin.Rows[2][2], "1000")
}

func TestAssemble_PartiallyEmptySections(t *testing.T) {
	// bookings only: order sheets carry placeholders, booking sheets carry data
	bookings := []*domain.Booking{{Reference: "BK-001", EventType: "Wedding"}}

	report := Assemble(bookings, nil, nil, Period{Month: time.June, Year: 2026})

	orderSheet, ok := report.Sheet(SheetProductOrders)
	require.True(t, ok)
	assert.Equal(t, Row{placeholderNoOrders}, orderSheet.Rows[1])

	bookingSheet, ok := report.Sheet(SheetBookings)
	require.True(t, ok)
	assert.Equal(t, "BK-001", bookingSheet.Rows[1][0])
}

func assertDecimalCell(t *testing.T, cell any, want string) {
	t.Helper()
	s, ok := cell.(interface{ String() string })
	require.True(t, ok, "cell %v is not a decimal", cell)
	assert.Equal(t, want, s.String())
}
