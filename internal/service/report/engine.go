package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
)

const dateLayout = "2006-01-02"

// EngineConfig carries the classification knobs. LateAfterHour is an
// integer-hour threshold: a clock-in anywhere inside that hour is still on
// time, only the following hour onward counts as late.
type EngineConfig struct {
	LateAfterHour int
	WeekendDays   map[time.Weekday]bool
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LateAfterHour: 10,
		WeekendDays: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
	}
}

// DateKey returns the calendar-date key for a timestamp. Keys are derived
// from the timestamp's own calendar components, never from a 24h
// truncation that could shift the date across a timezone offset.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// dateOnly drops the time-of-day component, keeping the location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// indexPunchRecords builds the date-key lookup used by the aggregator and
// bucketer. Two records collapsing onto one calendar date means the input
// violates the one-record-per-day invariant and is rejected.
func indexPunchRecords(records []attendance.PunchRecord) (map[string]attendance.PunchRecord, error) {
	idx := make(map[string]attendance.PunchRecord, len(records))
	for _, rec := range records {
		key := DateKey(rec.Date)
		if _, exists := idx[key]; exists {
			return nil, fmt.Errorf("employee %s has colliding punch records on %s: %w",
				rec.EmployeeID, key, attendance.ErrAmbiguousDateKey)
		}
		idx[key] = rec
	}
	return idx, nil
}
