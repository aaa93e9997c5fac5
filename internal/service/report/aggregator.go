package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
)

// PeriodTotals holds the folded summary counts for one period. Late is a
// tag on Present, not a separate bucket: Present + Leave + Absent == Total.
type PeriodTotals struct {
	Present int
	Late    int
	Leave   int
	Absent  int
	Total   int
}

// Aggregate iterates every calendar date in the inclusive [start, end]
// range through Classify, folding emitted days into totals and an ordered
// per-day list. Weekends and future days never reach the totals.
func Aggregate(start, end time.Time, records []attendance.PunchRecord, leaveDays map[string]struct{}, today time.Time, cfg EngineConfig) (PeriodTotals, []attendance.DayRecord, error) {
	if end.Before(start) {
		return PeriodTotals{}, nil, attendance.ErrInvalidRange
	}

	idx, err := indexPunchRecords(records)
	if err != nil {
		return PeriodTotals{}, nil, err
	}

	var totals PeriodTotals
	days := make([]attendance.DayRecord, 0, int(dateOnly(end).Sub(dateOnly(start)).Hours()/24)+1)

	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		var rec *attendance.PunchRecord
		if r, ok := idx[DateKey(d)]; ok {
			rec = &r
		}

		day, emitted := Classify(d, rec, leaveDays, today, cfg)
		if !emitted {
			continue
		}

		switch day.Status {
		case attendance.DayStatusPresent:
			totals.Present++
			if day.IsLate {
				totals.Late++
			}
		case attendance.DayStatusLeave:
			totals.Leave++
		case attendance.DayStatusAbsent:
			totals.Absent++
		}
		totals.Total++
		days = append(days, day)
	}

	return totals, days, nil
}
