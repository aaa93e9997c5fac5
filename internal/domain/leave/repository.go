package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave requests.
// All methods include companyID to prevent cross-company data access.
type LeaveRequestRepository interface {
	// ListByEmployee retrieves all leave requests overlapping the inclusive
	// [from, to] date range, regardless of status. Callers filter on status.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]LeaveRequest, error)
}
