package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_CurrentMonthMidway(t *testing.T) {
	cfg := DefaultEngineConfig()

	// June 2025 starts on a Sunday; the 15th is also a Sunday.
	today := date(2025, time.June, 15)
	start, end, err := ResolvePeriod(PeriodCurrent, today)
	require.NoError(t, err)

	// Single late punch on Tuesday the 10th, no leave.
	records := []attendance.PunchRecord{
		*punchAt(date(2025, time.June, 10), 11, 0, nil),
	}

	totals, days, err := Aggregate(start, end, records, leaveSet(), today, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, totals.Present)
	assert.Equal(t, 1, totals.Late)
	assert.Equal(t, 0, totals.Leave)
	// Weekdays June 2-6 and 9-13 minus the punched 10th
	assert.Equal(t, 9, totals.Absent)
	assert.Equal(t, 10, totals.Total)
	assert.Equal(t, totals.Present+totals.Leave+totals.Absent, totals.Total)

	// Ordered, no weekends, nothing after the reference date
	require.Len(t, days, 10)
	assert.Equal(t, "2025-06-02", days[0].Date)
	assert.Equal(t, "2025-06-13", days[len(days)-1].Date)
	for _, day := range days {
		parsed, err := time.Parse("2006-01-02", day.Date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, parsed.Weekday())
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
		assert.False(t, parsed.After(today))
	}
}

func TestAggregate_PunchRecordWinsOverLeave(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.June, 15)

	// Approved leave Mon-Wed June 2-4, but the employee punched in on the 3rd
	leaveDays := leaveSet("2025-06-02", "2025-06-03", "2025-06-04")
	records := []attendance.PunchRecord{
		*punchAt(date(2025, time.June, 3), 9, 0, nil),
	}

	totals, days, err := Aggregate(date(2025, time.June, 2), date(2025, time.June, 4), records, leaveDays, today, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, totals.Present)
	assert.Equal(t, 2, totals.Leave)
	assert.Equal(t, 0, totals.Absent)
	assert.Equal(t, 3, totals.Total)

	require.Len(t, days, 3)
	assert.Equal(t, attendance.DayStatusLeave, days[0].Status)
	assert.Equal(t, attendance.DayStatusPresent, days[1].Status)
	assert.Equal(t, attendance.DayStatusLeave, days[2].Status)
}

func TestAggregate_NoDataYieldsAllAbsentWorkdays(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.July, 1)

	totals, days, err := Aggregate(date(2025, time.June, 1), date(2025, time.June, 30), nil, leaveSet(), today, cfg)
	require.NoError(t, err)

	// June 2025 has 21 weekdays; the whole month is in the past
	assert.Equal(t, 0, totals.Present)
	assert.Equal(t, 21, totals.Absent)
	assert.Equal(t, 21, totals.Total)
	assert.Len(t, days, 21)
}

func TestAggregate_EndBeforeStartRejected(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.June, 15)

	_, _, err := Aggregate(date(2025, time.June, 10), date(2025, time.June, 1), nil, leaveSet(), today, cfg)
	assert.ErrorIs(t, err, attendance.ErrInvalidRange)
}

func TestAggregate_CollidingPunchRecordsRejected(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.June, 15)

	// Two rows for the same calendar date violate the one-per-day invariant
	records := []attendance.PunchRecord{
		*punchAt(date(2025, time.June, 10), 9, 0, nil),
		*punchAt(date(2025, time.June, 10), 13, 0, nil),
	}

	_, _, err := Aggregate(date(2025, time.June, 1), date(2025, time.June, 30), records, leaveSet(), today, cfg)
	assert.ErrorIs(t, err, attendance.ErrAmbiguousDateKey)
}

func TestAggregate_RecordDateWithTimeComponentStillMatches(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.June, 15)

	// Date keys come from calendar components, so a stray time-of-day on
	// the record's Date must not shift it onto another day.
	rec := *punchAt(date(2025, time.June, 10), 9, 0, nil)
	rec.Date = time.Date(2025, time.June, 10, 23, 30, 0, 0, time.UTC)

	totals, _, err := Aggregate(date(2025, time.June, 10), date(2025, time.June, 10), []attendance.PunchRecord{rec}, leaveSet(), today, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Present)
	assert.Equal(t, 0, totals.Absent)
}

func TestAggregate_FutureLeaveStillCounts(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.June, 15)

	// Leave beats the future skip: an approved absence next week is known now
	totals, days, err := Aggregate(date(2025, time.June, 16), date(2025, time.June, 17), nil, leaveSet("2025-06-16"), today, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, totals.Leave)
	assert.Equal(t, 0, totals.Absent)
	assert.Equal(t, 1, totals.Total)
	require.Len(t, days, 1)
	assert.Equal(t, attendance.DayStatusLeave, days[0].Status)
}
