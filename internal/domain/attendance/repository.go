package attendance

import (
	"context"
	"time"
)

// PunchRecordRepository defines data access methods for punch records.
// All methods include companyID to prevent cross-company data access.
type PunchRecordRepository interface {
	// ListByEmployee retrieves punch records for the inclusive [from, to]
	// date range, unordered, one row per work day. The list may include an
	// in-progress day with no clock-out.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]PunchRecord, error)

	// ListEmployeeIDs returns the distinct employee IDs that have at least
	// one punch record in the company. Used by the batch company report.
	ListEmployeeIDs(ctx context.Context, companyID string) ([]string, error)
}
