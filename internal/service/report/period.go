package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
)

// Period selects the reporting window relative to a reference date.
type Period string

const (
	PeriodCurrent   Period = "current"
	PeriodLastMonth Period = "last_month"
	PeriodQuarter   Period = "quarter"
)

// ResolvePeriod computes the inclusive [start, end] bounds for a period
// selector anchored at referenceDate. time.Date normalizes out-of-range
// months, so January minus one month lands in the previous December.
func ResolvePeriod(period Period, referenceDate time.Time) (time.Time, time.Time, error) {
	loc := referenceDate.Location()
	year, month, _ := referenceDate.Date()

	var start, end time.Time
	switch period {
	case PeriodCurrent:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, -1)
	case PeriodLastMonth:
		start = time.Date(year, month-1, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, -1)
	case PeriodQuarter:
		// Trailing 3-month window anchored at the reference month
		start = time.Date(year, month-2, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, -1)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("period %q: %w", period, attendance.ErrUnknownPeriod)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, attendance.ErrInvalidRange
	}

	return start, end, nil
}
