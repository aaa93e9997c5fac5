package attendance

import (
	"context"
)

// ReportService defines the attendance reporting operations. Every call
// resolves the reference "today" once and classifies all days against it.
type ReportService interface {
	// GetPeriodSummary returns period counts for the authenticated employee
	GetPeriodSummary(ctx context.Context, req PeriodRequest) (PeriodSummaryResponse, error)

	// GetDailyBreakdown returns the ordered per-day records for the period
	GetDailyBreakdown(ctx context.Context, req PeriodRequest) (DailyBreakdownResponse, error)

	// GetWeekChart returns the four fixed week buckets for a month
	GetWeekChart(ctx context.Context, req WeekChartRequest) (WeekChartResponse, error)

	// GetCompanyReport returns per-employee summaries for the whole company
	// (admin/manager), computed against a single reference date
	GetCompanyReport(ctx context.Context, req CompanyReportRequest) (CompanyReportResponse, error)
}
