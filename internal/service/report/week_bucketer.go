package report

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
)

// The first three windows are fixed 7-day spans; the fourth absorbs the
// rest of the month (7 to 10 days depending on month length).
var weekWindows = [4]struct{ start, end int }{
	{1, 7},
	{8, 14},
	{15, 21},
	{22, 31},
}

// BucketByWeek partitions a month's days into four fixed windows for the
// weekly bar chart. The chart view deliberately diverges from the summary
// view on no-data days: every non-weekend day without a punch or leave
// entry gets an explicit absent marker, including days after the reference
// date, so the chart can render "no data yet" slots. Weekends are still
// skipped.
func BucketByWeek(year int, month time.Month, records []attendance.PunchRecord, leaveDays map[string]struct{}, today time.Time, cfg EngineConfig) ([]attendance.WeekBucket, error) {
	idx, err := indexPunchRecords(records)
	if err != nil {
		return nil, err
	}

	loc := today.Location()
	lastDay := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, -1).Day()

	buckets := make([]attendance.WeekBucket, 0, len(weekWindows))
	for i, window := range weekWindows {
		endDay := window.end
		if i == len(weekWindows)-1 {
			endDay = lastDay
		}

		bucket := attendance.WeekBucket{
			ID:       i + 1,
			Label:    fmt.Sprintf("Week %d", i+1),
			StartDay: window.start,
			EndDay:   endDay,
			Days:     []attendance.DayRecord{},
		}

		for dayNum := window.start; dayNum <= endDay; dayNum++ {
			date := time.Date(year, month, dayNum, 0, 0, 0, 0, loc)

			var rec *attendance.PunchRecord
			if r, ok := idx[DateKey(date)]; ok {
				rec = &r
			}

			day, emitted := Classify(date, rec, leaveDays, today, cfg)
			if !emitted {
				if cfg.WeekendDays[date.Weekday()] {
					continue
				}
				// Future day with no data: still emit the marker.
				day = attendance.DayRecord{
					Date:     DateKey(date),
					DayName:  date.Weekday().String(),
					Status:   attendance.DayStatusAbsent,
					CheckIn:  attendance.NoTimeSentinel,
					CheckOut: attendance.NoTimeSentinel,
				}
			}
			bucket.Days = append(bucket.Days, day)
		}

		buckets = append(buckets, bucket)
	}

	return buckets, nil
}
