package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketByWeek_WindowWidths(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.December, 31)

	cases := []struct {
		name          string
		year          int
		month         time.Month
		wantLastStart int
		wantLastEnd   int
	}{
		{"31-day month, last window 10 days", 2025, time.January, 22, 31},
		{"30-day month, last window 9 days", 2025, time.April, 22, 30},
		{"28-day month, last window 7 days", 2025, time.February, 22, 28},
		{"29-day leap february, last window 8 days", 2024, time.February, 22, 29},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buckets, err := BucketByWeek(c.year, c.month, nil, leaveSet(), today, cfg)
			require.NoError(t, err)
			require.Len(t, buckets, 4)

			assert.Equal(t, 1, buckets[0].StartDay)
			assert.Equal(t, 7, buckets[0].EndDay)
			assert.Equal(t, 8, buckets[1].StartDay)
			assert.Equal(t, 14, buckets[1].EndDay)
			assert.Equal(t, 15, buckets[2].StartDay)
			assert.Equal(t, 21, buckets[2].EndDay)
			assert.Equal(t, c.wantLastStart, buckets[3].StartDay)
			assert.Equal(t, c.wantLastEnd, buckets[3].EndDay)

			for i, bucket := range buckets {
				assert.Equal(t, i+1, bucket.ID)
			}
		})
	}
}

func TestBucketByWeek_WeekendsNeverEmitted(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.May, 1)

	buckets, err := BucketByWeek(2025, time.April, nil, leaveSet(), today, cfg)
	require.NoError(t, err)

	emitted := 0
	for _, bucket := range buckets {
		for _, day := range bucket.Days {
			parsed, err := time.Parse("2006-01-02", day.Date)
			require.NoError(t, err)
			assert.NotEqual(t, time.Saturday, parsed.Weekday())
			assert.NotEqual(t, time.Sunday, parsed.Weekday())
			emitted++
		}
	}

	// April 2025 has 22 weekdays
	assert.Equal(t, 22, emitted)
}

func TestBucketByWeek_FutureDaysGetAbsentMarkers(t *testing.T) {
	cfg := DefaultEngineConfig()

	// Mid-month reference: the chart still renders markers for the rest of
	// the month, unlike the period summary which skips future days.
	today := date(2025, time.June, 15)

	records := []attendance.PunchRecord{
		*punchAt(date(2025, time.June, 10), 9, 0, nil),
	}

	buckets, err := BucketByWeek(2025, time.June, records, leaveSet("2025-06-20"), today, cfg)
	require.NoError(t, err)
	require.Len(t, buckets, 4)

	byDate := map[string]attendance.DayRecord{}
	for _, bucket := range buckets {
		for _, day := range bucket.Days {
			byDate[day.Date] = day
		}
	}

	// Punched day
	assert.Equal(t, attendance.DayStatusPresent, byDate["2025-06-10"].Status)
	// Approved future leave still shows as leave
	assert.Equal(t, attendance.DayStatusLeave, byDate["2025-06-20"].Status)
	// Future weekday with no data gets an explicit marker
	future := byDate["2025-06-24"]
	assert.Equal(t, attendance.DayStatusAbsent, future.Status)
	assert.Equal(t, attendance.NoTimeSentinel, future.CheckIn)
	// Past weekday with no data is also absent
	assert.Equal(t, attendance.DayStatusAbsent, byDate["2025-06-04"].Status)
	// Weekends stay out even in the future
	_, ok := byDate["2025-06-21"]
	assert.False(t, ok)
}

func TestBucketByWeek_CollidingPunchRecordsRejected(t *testing.T) {
	cfg := DefaultEngineConfig()
	today := date(2025, time.June, 15)

	records := []attendance.PunchRecord{
		*punchAt(date(2025, time.June, 10), 9, 0, nil),
		*punchAt(date(2025, time.June, 10), 14, 0, nil),
	}

	_, err := BucketByWeek(2025, time.June, records, leaveSet(), today, cfg)
	assert.ErrorIs(t, err, attendance.ErrAmbiguousDateKey)
}
