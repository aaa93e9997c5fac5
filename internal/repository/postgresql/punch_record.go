package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/database"
)

type punchRecordRepository struct {
	db *database.DB
}

func NewPunchRecordRepository(db *database.DB) attendance.PunchRecordRepository {
	return &punchRecordRepository{db: db}
}

// ListByEmployee implements attendance.PunchRecordRepository.
func (p *punchRecordRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.PunchRecord, error) {
	query := `
		SELECT id, employee_id, company_id, date, clock_in, clock_out, status,
			   created_at, updated_at
		FROM punch_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND date BETWEEN $3 AND $4
	`

	rows, err := p.db.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch records: %w", err)
	}
	defer rows.Close()

	var records []attendance.PunchRecord
	for rows.Next() {
		var rec attendance.PunchRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
			&rec.ClockIn, &rec.ClockOut, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punch records: %w", err)
	}

	return records, nil
}

// ListEmployeeIDs implements attendance.PunchRecordRepository.
func (p *punchRecordRepository) ListEmployeeIDs(ctx context.Context, companyID string) ([]string, error) {
	query := `
		SELECT DISTINCT employee_id
		FROM punch_records
		WHERE company_id = $1
		ORDER BY employee_id
	`

	rows, err := p.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee ids: %w", err)
	}

	return ids, nil
}
