package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// ListByEmployee implements leave.LeaveRequestRepository. Returns every
// request overlapping the range regardless of status; the report engine
// filters to approved ones.
func (l *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, company_id, start_date, end_date, reason,
			   status, approved_by, approved_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND company_id = $2
		  AND start_date <= $4
		  AND end_date >= $3
	`

	rows, err := l.db.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.CompanyID,
			&req.StartDate, &req.EndDate, &req.Reason,
			&req.Status, &req.ApprovedBy, &req.ApprovedAt,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}
