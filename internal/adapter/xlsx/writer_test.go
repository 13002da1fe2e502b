package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/report"
)

func TestWriter_Render(t *testing.T) {
	bookings := []*domain.Booking{
		{
			Reference:   "BK-001",
			EventType:   "Wedding",
			PackageName: "Gold",
			Finance: &domain.BookingFinance{
				PackageAmount: decimal.NewFromInt(50000),
				FinalAmount:   decimal.NewFromInt(40000),
				CommissionLines: []domain.CommissionLine{
					{StaffName: "Amara", Amount: decimal.NewFromInt(10000)},
				},
			},
		},
	}
	rep := report.Assemble(bookings, nil, nil, report.Period{Month: time.March, Year: 2026})

	data, err := NewWriter().Render(rep)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, len(rep.Sheets))
	assert.Equal(t, report.SheetBookings, sheets[0])
	assert.Equal(t, report.SheetSalary, sheets[len(sheets)-1])

	ref, err := f.GetCellValue(report.SheetBookings, "A2")
	require.NoError(t, err)
	assert.Equal(t, "BK-001", ref)

	// decimal amounts survive exactly
	total, err := f.GetCellValue(report.SheetSalary, "D2")
	require.NoError(t, err)
	assert.Equal(t, "10000", total)
}

func TestWriter_Render_EmptyReportKeepsEverySheet(t *testing.T) {
	rep := report.Assemble(nil, nil, nil, report.Period{Month: time.January, Year: 2026})

	data, err := NewWriter().Render(rep)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Len(t, f.GetSheetList(), len(rep.Sheets))

	placeholder, err := f.GetCellValue(report.SheetSalary, "A2")
	require.NoError(t, err)
	assert.Contains(t, placeholder, "No financial data")
}
