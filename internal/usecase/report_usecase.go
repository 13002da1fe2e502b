package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/studioops/internal/domain"
	"github.com/iho/studioops/internal/report"
)

// reportFetchLimit bounds one report window fetch.
const reportFetchLimit = 10000

// exportCacheTTL is how long a rendered workbook stays cached. Reports are
// regenerated cheaply, so the cache only smooths repeated downloads.
const exportCacheTTL = 5 * time.Minute

// ReportUseCase assembles the monthly period report and per-staff salary
// statements over window-filtered snapshots of both revenue streams.
type ReportUseCase struct {
	bookingRepo BookingRepository
	orderRepo   ProductOrderRepository
	packageRepo PackageRepository
	renderer    ReportRenderer
	cache       Cache
	logger      zerolog.Logger
}

// NewReportUseCase creates a new ReportUseCase. cache may be nil to disable
// export caching.
func NewReportUseCase(
	bookingRepo BookingRepository,
	orderRepo ProductOrderRepository,
	packageRepo PackageRepository,
	renderer ReportRenderer,
	cache Cache,
	logger zerolog.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		bookingRepo: bookingRepo,
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
		renderer:    renderer,
		cache:       cache,
		logger:      logger,
	}
}

// MonthlyReport assembles the period report for one calendar month. The
// window boundaries are the literal first-of-month values; all date filtering
// happens at the repository, never inside the aggregators.
func (uc *ReportUseCase) MonthlyReport(ctx context.Context, period report.Period) (*report.Report, error) {
	bookings, orders, packages, err := uc.fetchWindow(ctx, period)
	if err != nil {
		return nil, err
	}

	uc.warnMissingPackages(bookings, packages, period)

	return report.Assemble(bookings, orders, packages, period), nil
}

// ExportMonthlyReport renders the period report as a downloadable workbook.
// Rendered bytes are cached briefly keyed by period.
func (uc *ReportUseCase) ExportMonthlyReport(ctx context.Context, period report.Period) ([]byte, string, error) {
	filename := fmt.Sprintf("studioops_report_%04d_%02d.xlsx", period.Year, int(period.Month))
	cacheKey := fmt.Sprintf("report:%04d-%02d", period.Year, int(period.Month))

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
			data, decodeErr := base64.StdEncoding.DecodeString(cached)
			if decodeErr == nil {
				return data, filename, nil
			}
		}
	}

	rep, err := uc.MonthlyReport(ctx, period)
	if err != nil {
		return nil, "", err
	}

	data, err := uc.renderer.Render(rep)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render report: %w", err)
	}

	if uc.cache != nil {
		encoded := base64.StdEncoding.EncodeToString(data)
		if err := uc.cache.Set(ctx, cacheKey, encoded, exportCacheTTL); err != nil {
			uc.logger.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache report export")
		}
	}

	return data, filename, nil
}

// SalaryStatement returns one staff member's earnings rollup for the period.
// Staff are keyed by display name; an unknown name yields a zero statement.
func (uc *ReportUseCase) SalaryStatement(ctx context.Context, staffName string, period report.Period) (report.StaffEarnings, error) {
	bookings, orders, _, err := uc.fetchWindow(ctx, period)
	if err != nil {
		return report.StaffEarnings{}, err
	}

	for _, earnings := range report.ComputeSalary(bookings, orders) {
		if earnings.Name == staffName {
			return earnings, nil
		}
	}

	return report.StaffEarnings{Name: staffName}, nil
}

func (uc *ReportUseCase) fetchWindow(ctx context.Context, period report.Period) ([]*domain.Booking, []*domain.ProductOrder, []*domain.ServicePackage, error) {
	window := MonthWindow(period)

	bookings, err := uc.bookingRepo.List(ctx, window, reportFetchLimit, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	orders, err := uc.orderRepo.List(ctx, window, reportFetchLimit, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch product orders: %w", err)
	}
	packages, err := uc.packageRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch packages: %w", err)
	}

	return bookings, orders, packages, nil
}

// warnMissingPackages surfaces package names with no price record for audit.
// Missing reference data is a zero-revenue contribution, not a failure.
func (uc *ReportUseCase) warnMissingPackages(bookings []*domain.Booking, packages []*domain.ServicePackage, period report.Period) {
	index := report.BuildPriceIndex(packages)
	for _, name := range report.MissingPackages(bookings, index) {
		uc.logger.Warn().
			Str("package", name).
			Str("period", period.String()).
			Msg("booking references package with no price record")
	}
}

// MonthWindow computes the half-open window [first of month, first of next
// month) for a period.
func MonthWindow(period report.Period) Window {
	from := time.Date(period.Year, period.Month, 1, 0, 0, 0, 0, time.UTC)
	return Window{From: from, To: from.AddDate(0, 1, 0)}
}
