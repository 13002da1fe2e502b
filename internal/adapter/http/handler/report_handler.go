package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/studioops/internal/adapter/http/dto"
	"github.com/iho/studioops/internal/infrastructure/metrics"
	"github.com/iho/studioops/internal/report"
)

type reportService interface {
	MonthlyReport(ctx context.Context, period report.Period) (*report.Report, error)
	ExportMonthlyReport(ctx context.Context, period report.Period) ([]byte, string, error)
	SalaryStatement(ctx context.Context, staffName string, period report.Period) (report.StaffEarnings, error)
}

// ReportHandler handles monthly report HTTP requests.
type ReportHandler struct {
	reportUC reportService
	metrics  *metrics.Metrics
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC reportService, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, metrics: m}
}

// Monthly assembles the monthly report and returns it as JSON.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	start := time.Now()
	rep, err := h.reportUC.MonthlyReport(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to assemble report", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ReportsAssembled.Inc()
		h.metrics.ReportDuration.Observe(time.Since(start).Seconds())
	}

	writeJSON(w, http.StatusOK, dto.ReportFromDomain(rep))
}

// Export renders the monthly report as a spreadsheet download.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	data, filename, err := h.reportUC.ExportMonthlyReport(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to export report", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Salary returns one staff member's earnings statement for a month.
func (h *ReportHandler) Salary(w http.ResponseWriter, r *http.Request) {
	staffName := r.URL.Query().Get("staff")
	if staffName == "" {
		writeError(w, http.StatusBadRequest, "missing staff parameter", "")
		return
	}

	period, err := periodFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	earnings, err := h.reportUC.SalaryStatement(r.Context(), staffName, period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute salary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StaffEarningsFromReport(earnings))
}
