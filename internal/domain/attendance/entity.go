package attendance

import (
	"time"
)

// PunchRecord is one employee's recorded check-in/check-out pair for one
// work day. At most one record exists per (employee, date); Date carries
// the work day only, ClockIn/ClockOut carry the absolute timestamps.
type PunchRecord struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	ClockIn    time.Time
	ClockOut   *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
