package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/report"
	"github.com/iho/studioops/internal/usecase"
	"github.com/iho/studioops/internal/usecase/mocks"
)

func TestReportUseCase_MonthlyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingRepo := mocks.NewMockBookingRepository()
	orderRepo := mocks.NewMockProductOrderRepository()
	packageRepo := mocks.NewMockPackageRepository(ctrl)

	period := report.Period{Month: time.March, Year: 2026}
	window := usecase.MonthWindow(period)

	bookingRepo.ListFunc = func(ctx context.Context, w usecase.Window, limit, offset int) ([]*domain.Booking, error) {
		if !w.From.Equal(window.From) || !w.To.Equal(window.To) {
			t.Errorf("window = %v..%v, want %v..%v", w.From, w.To, window.From, window.To)
		}
		return []*domain.Booking{
			{Reference: "BK-001", PackageName: "Gold", EventType: "Wedding"},
		}, nil
	}
	orderRepo.ListFunc = func(ctx context.Context, w usecase.Window, limit, offset int) ([]*domain.ProductOrder, error) {
		return nil, nil
	}
	packageRepo.EXPECT().List(gomock.Any()).Return([]*domain.ServicePackage{
		{Name: "Gold", Price: "Rs. 50,000"},
	}, nil)

	uc := usecase.NewReportUseCase(bookingRepo, orderRepo, packageRepo, mocks.NewMockReportRenderer(), nil, zerolog.Nop())

	rep, err := uc.MonthlyReport(context.Background(), period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rep.Sheets) != 10 {
		t.Errorf("expected 10 sheets, got %d", len(rep.Sheets))
	}
	analytics, ok := rep.Sheet(report.SheetPackageAnalytics)
	if !ok {
		t.Fatal("missing package analytics sheet")
	}
	if analytics.Rows[1][0] != "Gold" {
		t.Errorf("first analytics row = %v, want Gold", analytics.Rows[1])
	}
}

func TestReportUseCase_ExportMonthlyReport_CachesRenderedBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingRepo := mocks.NewMockBookingRepository()
	orderRepo := mocks.NewMockProductOrderRepository()
	packageRepo := mocks.NewMockPackageRepository(ctrl)
	packageRepo.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)

	renderer := mocks.NewMockReportRenderer()
	cache := mocks.NewMockCache()

	uc := usecase.NewReportUseCase(bookingRepo, orderRepo, packageRepo, renderer, cache, zerolog.Nop())

	period := report.Period{Month: time.January, Year: 2026}

	first, filename, err := uc.ExportMonthlyReport(context.Background(), period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "studioops_report_2026_01.xlsx" {
		t.Errorf("filename = %s", filename)
	}

	// second call is served from cache: the package repo expectation above
	// allows exactly one fetch
	second, _, err := uc.ExportMonthlyReport(context.Background(), period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != string(second) {
		t.Error("cached export differs from rendered export")
	}
	if len(renderer.Rendered) != 1 {
		t.Errorf("renderer ran %d times, want 1", len(renderer.Rendered))
	}
}

func TestReportUseCase_SalaryStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingRepo := mocks.NewMockBookingRepository()
	orderRepo := mocks.NewMockProductOrderRepository()
	packageRepo := mocks.NewMockPackageRepository(ctrl)
	packageRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

	bookingRepo.ListFunc = func(ctx context.Context, w usecase.Window, limit, offset int) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{Finance: &domain.BookingFinance{CommissionLines: []domain.CommissionLine{
				{StaffName: "Amara", Amount: dec("500")},
			}}},
		}, nil
	}
	orderRepo.ListFunc = func(ctx context.Context, w usecase.Window, limit, offset int) ([]*domain.ProductOrder, error) {
		return []*domain.ProductOrder{
			{Finance: &domain.OrderFinance{CommissionLines: []domain.CommissionLine{
				{StaffName: "Amara", Amount: dec("200")},
			}}},
		}, nil
	}

	uc := usecase.NewReportUseCase(bookingRepo, orderRepo, packageRepo, mocks.NewMockReportRenderer(), nil, zerolog.Nop())

	statement, err := uc.SalaryStatement(context.Background(), "Amara", report.Period{Month: time.March, Year: 2026})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !statement.TotalEarnings.Equal(dec("700")) {
		t.Errorf("total = %s, want 700", statement.TotalEarnings)
	}

	unknown, err := uc.SalaryStatement(context.Background(), "Nobody", report.Period{Month: time.March, Year: 2026})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !unknown.TotalEarnings.IsZero() {
		t.Errorf("unknown staff total = %s, want 0", unknown.TotalEarnings)
	}
}

func TestMonthWindow(t *testing.T) {
	window := usecase.MonthWindow(report.Period{Month: time.December, Year: 2025})

	wantFrom := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !window.From.Equal(wantFrom) || !window.To.Equal(wantTo) {
		t.Errorf("window = %v..%v, want %v..%v", window.From, window.To, wantFrom, wantTo)
	}
}
