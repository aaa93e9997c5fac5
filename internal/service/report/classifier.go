package report

import (
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
)

// Classify decides one calendar day's status. Precedence is strict:
// weekend skip, then punch record, then leave coverage, then future skip,
// then absent. A punched day inside an approved leave range is Present,
// not Leave. The returned bool reports whether the day is emitted at all;
// weekends and future days with no data contribute to nothing.
func Classify(date time.Time, rec *attendance.PunchRecord, leaveDays map[string]struct{}, today time.Time, cfg EngineConfig) (attendance.DayRecord, bool) {
	if cfg.WeekendDays[date.Weekday()] {
		return attendance.DayRecord{}, false
	}

	day := attendance.DayRecord{
		Date:     DateKey(date),
		DayName:  date.Weekday().String(),
		CheckIn:  attendance.NoTimeSentinel,
		CheckOut: attendance.NoTimeSentinel,
	}

	if rec != nil {
		day.Status = attendance.DayStatusPresent
		day.IsLate = rec.ClockIn.Hour() > cfg.LateAfterHour
		day.CheckIn = rec.ClockIn.Format("15:04")
		// Missing clock-out is a valid in-progress state: the sentinel
		// stays and worked hours remain zero.
		if rec.ClockOut != nil {
			day.CheckOut = rec.ClockOut.Format("15:04")
			day.WorkedHours = roundHours(rec.ClockOut.Sub(rec.ClockIn))
		}
		return day, true
	}

	if _, onLeave := leaveDays[DateKey(date)]; onLeave {
		day.Status = attendance.DayStatusLeave
		return day, true
	}

	if dateOnly(date).After(dateOnly(today)) {
		return attendance.DayRecord{}, false
	}

	day.Status = attendance.DayStatusAbsent
	return day, true
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
