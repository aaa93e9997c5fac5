package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/handler/http/response"
)

type ReportHandler interface {
	// GetPeriodSummary returns period counts for the authenticated employee
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
	// GetDailyBreakdown returns ordered per-day records for a period
	GetDailyBreakdown(w http.ResponseWriter, r *http.Request)
	// GetWeekChart returns the four week buckets for a month
	GetWeekChart(w http.ResponseWriter, r *http.Request)
	// GetCompanyReport returns per-employee summaries (manager/owner)
	GetCompanyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService attendance.ReportService
}

func NewReportHandler(reportService attendance.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetPeriodSummary handles GET /reports/attendance/summary
func (h *reportHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	req := attendance.PeriodRequest{
		Period: r.URL.Query().Get("period"), // current | last_month | quarter
	}

	result, err := h.reportService.GetPeriodSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailyBreakdown handles GET /reports/attendance/daily
func (h *reportHandlerImpl) GetDailyBreakdown(w http.ResponseWriter, r *http.Request) {
	req := attendance.PeriodRequest{
		Period: r.URL.Query().Get("period"),
	}

	result, err := h.reportService.GetDailyBreakdown(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeekChart handles GET /reports/attendance/weeks
func (h *reportHandlerImpl) GetWeekChart(w http.ResponseWriter, r *http.Request) {
	req := attendance.WeekChartRequest{
		Month: r.URL.Query().Get("month"), // format: YYYY-MM, default: current month
	}

	result, err := h.reportService.GetWeekChart(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCompanyReport handles GET /reports/attendance/company
func (h *reportHandlerImpl) GetCompanyReport(w http.ResponseWriter, r *http.Request) {
	req := attendance.CompanyReportRequest{
		Period: r.URL.Query().Get("period"),
	}

	result, err := h.reportService.GetCompanyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
