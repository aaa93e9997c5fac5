package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/config"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	db *database.DB
	attendance.PunchRecordRepository
	leave.LeaveRequestRepository
	engineCfg   EngineConfig
	loc         *time.Location
	workerLimit int
}

func NewReportService(
	db *database.DB,
	punchRepo attendance.PunchRecordRepository,
	leaveRepo leave.LeaveRequestRepository,
	reportCfg config.ReportConfig,
	timezone string,
) attendance.ReportService {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	engineCfg := DefaultEngineConfig()
	engineCfg.LateAfterHour = reportCfg.LateAfterHour

	return &ReportServiceImpl{
		db:                     db,
		PunchRecordRepository:  punchRepo,
		LeaveRequestRepository: leaveRepo,
		engineCfg:              engineCfg,
		loc:                    loc,
		workerLimit:            reportCfg.WorkerLimit,
	}
}

// claimsFromContext extracts the employee and company identity set by the
// JWT verifier middleware.
func claimsFromContext(ctx context.Context) (employeeID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

// referenceDate resolves "today" once per call so that every day in the
// report is classified against the same instant.
func (s *ReportServiceImpl) referenceDate() time.Time {
	return dateOnly(time.Now().In(s.loc))
}

// GetPeriodSummary implements attendance.ReportService.
func (s *ReportServiceImpl) GetPeriodSummary(ctx context.Context, req attendance.PeriodRequest) (attendance.PeriodSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PeriodSummaryResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.PeriodSummaryResponse{}, err
	}

	today := s.referenceDate()
	return s.summarizeEmployee(ctx, employeeID, companyID, Period(req.Period), today)
}

// GetDailyBreakdown implements attendance.ReportService.
func (s *ReportServiceImpl) GetDailyBreakdown(ctx context.Context, req attendance.PeriodRequest) (attendance.DailyBreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyBreakdownResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.DailyBreakdownResponse{}, err
	}

	today := s.referenceDate()
	start, end, err := ResolvePeriod(Period(req.Period), today)
	if err != nil {
		return attendance.DailyBreakdownResponse{}, err
	}

	records, leaveDays, err := s.fetchInputs(ctx, employeeID, companyID, start, end)
	if err != nil {
		return attendance.DailyBreakdownResponse{}, err
	}

	_, days, err := Aggregate(start, end, records, leaveDays, today, s.engineCfg)
	if err != nil {
		return attendance.DailyBreakdownResponse{}, err
	}

	return attendance.DailyBreakdownResponse{
		EmployeeID: employeeID,
		Period:     req.Period,
		StartDate:  DateKey(start),
		EndDate:    DateKey(end),
		Days:       days,
	}, nil
}

// GetWeekChart implements attendance.ReportService.
func (s *ReportServiceImpl) GetWeekChart(ctx context.Context, req attendance.WeekChartRequest) (attendance.WeekChartResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WeekChartResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.WeekChartResponse{}, err
	}

	today := s.referenceDate()

	year, month := today.Year(), today.Month()
	if req.Month != "" {
		parsed, err := time.ParseInLocation("2006-01", req.Month, s.loc)
		if err != nil {
			return attendance.WeekChartResponse{}, fmt.Errorf("failed to parse month: %w", err)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 1, -1)

	records, leaveDays, err := s.fetchInputs(ctx, employeeID, companyID, start, end)
	if err != nil {
		return attendance.WeekChartResponse{}, err
	}

	buckets, err := BucketByWeek(year, month, records, leaveDays, today, s.engineCfg)
	if err != nil {
		return attendance.WeekChartResponse{}, err
	}

	return attendance.WeekChartResponse{
		EmployeeID: employeeID,
		Month:      start.Format("2006-01"),
		Buckets:    buckets,
	}, nil
}

// GetCompanyReport implements attendance.ReportService. Per-employee
// aggregations are independent, so they fan out across a bounded worker
// group, all classified against the single reference date resolved here.
func (s *ReportServiceImpl) GetCompanyReport(ctx context.Context, req attendance.CompanyReportRequest) (attendance.CompanyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CompanyReportResponse{}, err
	}

	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.CompanyReportResponse{}, err
	}

	today := s.referenceDate()
	start, end, err := ResolvePeriod(Period(req.Period), today)
	if err != nil {
		return attendance.CompanyReportResponse{}, err
	}

	employeeIDs, err := s.PunchRecordRepository.ListEmployeeIDs(ctx, companyID)
	if err != nil {
		return attendance.CompanyReportResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]attendance.PeriodSummaryResponse, len(employeeIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerLimit)
	for i, employeeID := range employeeIDs {
		i, employeeID := i, employeeID
		g.Go(func() error {
			summary, err := s.summarizeEmployee(gctx, employeeID, companyID, Period(req.Period), today)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return attendance.CompanyReportResponse{}, err
	}

	return attendance.CompanyReportResponse{
		ReportID:      uuid.NewString(),
		Period:        req.Period,
		StartDate:     DateKey(start),
		EndDate:       DateKey(end),
		GeneratedAt:   time.Now().In(s.loc).Format("2006-01-02 15:04:05"),
		EmployeeCount: len(employeeIDs),
		Employees:     summaries,
	}, nil
}

// summarizeEmployee runs the full pipeline for one employee: fetch, expand
// leave, aggregate, map to response.
func (s *ReportServiceImpl) summarizeEmployee(ctx context.Context, employeeID, companyID string, period Period, today time.Time) (attendance.PeriodSummaryResponse, error) {
	start, end, err := ResolvePeriod(period, today)
	if err != nil {
		return attendance.PeriodSummaryResponse{}, err
	}

	records, leaveDays, err := s.fetchInputs(ctx, employeeID, companyID, start, end)
	if err != nil {
		return attendance.PeriodSummaryResponse{}, err
	}

	totals, _, err := Aggregate(start, end, records, leaveDays, today, s.engineCfg)
	if err != nil {
		return attendance.PeriodSummaryResponse{}, err
	}

	return attendance.PeriodSummaryResponse{
		EmployeeID:     employeeID,
		Period:         string(period),
		StartDate:      DateKey(start),
		EndDate:        DateKey(end),
		Present:        totals.Present,
		Late:           totals.Late,
		Leave:          totals.Leave,
		Absent:         totals.Absent,
		Total:          totals.Total,
		PresentPercent: percent(totals.Present, totals.Total),
		LatePercent:    percent(totals.Late, totals.Total),
		LeavePercent:   percent(totals.Leave, totals.Total),
		AbsentPercent:  percent(totals.Absent, totals.Total),
	}, nil
}

func (s *ReportServiceImpl) fetchInputs(ctx context.Context, employeeID, companyID string, start, end time.Time) ([]attendance.PunchRecord, map[string]struct{}, error) {
	records, err := s.PunchRecordRepository.ListByEmployee(ctx, employeeID, start, end, companyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get punch records: %w", err)
	}

	leaveRequests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID, start, end, companyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get leave requests: %w", err)
	}

	return records, ExpandApprovedLeave(leaveRequests), nil
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*10000) / 100
}
