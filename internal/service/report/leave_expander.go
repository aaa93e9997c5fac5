package report

import (
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
)

// ExpandApprovedLeave expands approved leave requests into the set of
// covered calendar dates, keyed YYYY-MM-DD. Only approved requests
// participate; overlapping or duplicate ranges deduplicate through set
// membership. Empty input yields an empty set.
func ExpandApprovedLeave(requests []leave.LeaveRequest) map[string]struct{} {
	days := make(map[string]struct{})
	for _, req := range requests {
		if req.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		start := dateOnly(req.StartDate)
		end := dateOnly(req.EndDate)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days[DateKey(d)] = struct{}{}
		}
	}
	return days
}
