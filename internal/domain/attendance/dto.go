package attendance

import (
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

// DayStatus is the derived classification for a single work day.
type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusLeave   DayStatus = "on_leave"
	DayStatusAbsent  DayStatus = "absent"
)

// NoTimeSentinel marks a missing clock time in per-day output. A missing
// clock-out is a valid in-progress state, not an error.
const NoTimeSentinel = "no time"

// DayRecord is one classified work day. Computed fresh on every report
// call; never persisted.
type DayRecord struct {
	Date        string    `json:"date"`     // YYYY-MM-DD
	DayName     string    `json:"day_name"` // "Monday", "Tuesday", ...
	Status      DayStatus `json:"status"`
	IsLate      bool      `json:"is_late"` // tag on present, never a separate bucket
	CheckIn     string    `json:"check_in"`  // "HH:MM" or "no time"
	CheckOut    string    `json:"check_out"` // "HH:MM" or "no time"
	WorkedHours float64   `json:"worked_hours"`
}

// PeriodSummaryResponse contains the period-level counts for ring and stat
// widgets. Late days are counted inside Present; Total excludes them as a
// separate bucket so Present + Leave + Absent == Total always holds.
type PeriodSummaryResponse struct {
	EmployeeID     string  `json:"employee_id"`
	Period         string  `json:"period"`
	StartDate      string  `json:"start_date"` // YYYY-MM-DD
	EndDate        string  `json:"end_date"`   // YYYY-MM-DD
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	Leave          int     `json:"leave"`
	Absent         int     `json:"absent"`
	Total          int     `json:"total"`
	PresentPercent float64 `json:"present_percent"`
	LatePercent    float64 `json:"late_percent"`
	LeavePercent   float64 `json:"leave_percent"`
	AbsentPercent  float64 `json:"absent_percent"`
}

// DailyBreakdownResponse is the ordered per-day list for bar-chart widgets.
type DailyBreakdownResponse struct {
	EmployeeID string      `json:"employee_id"`
	Period     string      `json:"period"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Days       []DayRecord `json:"days"`
}

// WeekBucket is one of four fixed-width partitions of a calendar month
// (days 1-7, 8-14, 15-21, 22-end). The last window absorbs the remainder
// of the month, so its width varies between 7 and 10 days.
type WeekBucket struct {
	ID       int         `json:"id"`    // 1..4
	Label    string      `json:"label"` // "Week 1", ...
	StartDay int         `json:"start_day"`
	EndDay   int         `json:"end_day"`
	Days     []DayRecord `json:"days"`
}

// WeekChartResponse feeds the weekly selector/bar-chart widget.
type WeekChartResponse struct {
	EmployeeID string       `json:"employee_id"`
	Month      string       `json:"month"` // YYYY-MM
	Buckets    []WeekBucket `json:"buckets"`
}

// CompanyReportResponse is the batch per-employee summary for one period.
type CompanyReportResponse struct {
	ReportID      string                  `json:"report_id"`
	Period        string                  `json:"period"`
	StartDate     string                  `json:"start_date"`
	EndDate       string                  `json:"end_date"`
	GeneratedAt   string                  `json:"generated_at"`
	EmployeeCount int                     `json:"employee_count"`
	Employees     []PeriodSummaryResponse `json:"employees"`
}

// ========================================
// REQUEST DTOs
// ========================================

var validPeriods = []string{"current", "last_month", "quarter"}

// PeriodRequest selects the reporting period for summary and daily views.
type PeriodRequest struct {
	Period string `json:"period"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Period) {
		r.Period = "current" // Default period
	}

	if !validator.IsInSlice(r.Period, validPeriods) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: current, last_month, quarter",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeekChartRequest selects the month for the week-bucket chart.
type WeekChartRequest struct {
	Month string `json:"month"` // YYYY-MM, empty means current month
}

func (r *WeekChartRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Month) {
		if _, valid := validator.IsValidMonth(r.Month); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CompanyReportRequest selects the period for the company-wide batch report.
type CompanyReportRequest struct {
	Period string `json:"period"`
}

func (r *CompanyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Period) {
		r.Period = "current" // Default period
	}

	if !validator.IsInSlice(r.Period, validPeriods) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: current, last_month, quarter",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
