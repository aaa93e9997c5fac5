package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func leaveRequest(status leave.LeaveRequestStatus, start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		CompanyID:  "co-1",
		StartDate:  start,
		EndDate:    end,
		Status:     status,
	}
}

func TestExpandApprovedLeave_OverlappingRangesUnion(t *testing.T) {
	requests := []leave.LeaveRequest{
		leaveRequest(leave.LeaveRequestStatusApproved, date(2025, time.January, 5), date(2025, time.January, 8)),
		leaveRequest(leave.LeaveRequestStatusApproved, date(2025, time.January, 7), date(2025, time.January, 10)),
	}

	days := ExpandApprovedLeave(requests)

	want := []string{"2025-01-05", "2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10"}
	assert.Len(t, days, len(want))
	for _, key := range want {
		assert.Contains(t, days, key)
	}
}

func TestExpandApprovedLeave_FiltersNonApproved(t *testing.T) {
	requests := []leave.LeaveRequest{
		leaveRequest(leave.LeaveRequestStatusWaitingApproval, date(2025, time.June, 2), date(2025, time.June, 4)),
		leaveRequest(leave.LeaveRequestStatusRejected, date(2025, time.June, 9), date(2025, time.June, 10)),
		leaveRequest(leave.LeaveRequestStatusCancelled, date(2025, time.June, 16), date(2025, time.June, 17)),
		leaveRequest(leave.LeaveRequestStatusApproved, date(2025, time.June, 23), date(2025, time.June, 23)),
	}

	days := ExpandApprovedLeave(requests)

	assert.Len(t, days, 1)
	assert.Contains(t, days, "2025-06-23")
}

func TestExpandApprovedLeave_SingleDayRange(t *testing.T) {
	requests := []leave.LeaveRequest{
		leaveRequest(leave.LeaveRequestStatusApproved, date(2025, time.June, 2), date(2025, time.June, 2)),
	}

	days := ExpandApprovedLeave(requests)

	assert.Len(t, days, 1)
	assert.Contains(t, days, "2025-06-02")
}

func TestExpandApprovedLeave_EmptyInput(t *testing.T) {
	days := ExpandApprovedLeave(nil)
	assert.Empty(t, days)
}

func TestExpandApprovedLeave_RangeCrossesMonthBoundary(t *testing.T) {
	requests := []leave.LeaveRequest{
		leaveRequest(leave.LeaveRequestStatusApproved, date(2025, time.January, 30), date(2025, time.February, 2)),
	}

	days := ExpandApprovedLeave(requests)

	want := []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}
	assert.Len(t, days, len(want))
	for _, key := range want {
		assert.Contains(t, days, key)
	}
}
