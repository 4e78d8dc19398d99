package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sshraki/Attendance/internal/domain/attendance"
	"github.com/sshraki/Attendance/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out,
	a.total_work_hours, a.total_break_time,
	a.is_late, a.late_reason, a.late_approved,
	a.checkout_reason, a.checkout_type, a.checkout_approved,
	a.status, a.created_at, a.updated_at,
	e.name AS employee_name, e.employee_code, e.department
`

func scanAttendance(row pgx.Row) (attendance.AttendanceRecord, error) {
	var rec attendance.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.TotalWorkHours, &rec.TotalBreakTime,
		&rec.IsLate, &rec.LateReason, &rec.LateApproved,
		&rec.CheckoutReason, &rec.CheckoutType, &rec.CheckoutApproved,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.Department,
	)
	return rec, err
}

// loadBreaks attaches break records in start order.
func (r *attendanceRepository) loadBreaks(ctx context.Context, rec *attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, attendance_record_id, start_time, end_time, duration, reason, approved, created_at
		FROM break_records
		WHERE attendance_record_id = $1
		ORDER BY start_time
	`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to load breaks: %w", err)
	}
	defer rows.Close()

	rec.Breaks = nil
	for rows.Next() {
		var br attendance.BreakRecord
		if err := rows.Scan(
			&br.ID, &br.AttendanceRecordID, &br.StartTime, &br.EndTime,
			&br.Duration, &br.Reason, &br.Approved, &br.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan break: %w", err)
		}
		rec.Breaks = append(rec.Breaks, br)
	}

	return rows.Err()
}

// Create implements attendance.AttendanceRepository.
// The unique index on (employee_id, date) is the safety net against racing
// check-ins; a violation surfaces as ErrAlreadyCheckedIn.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, check_in, check_out, total_work_hours, total_break_time,
			is_late, late_reason, late_approved,
			checkout_reason, checkout_type, checkout_approved, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.TotalWorkHours,
		record.TotalBreakTime,
		record.IsLate,
		record.LateReason,
		record.LateApproved,
		record.CheckoutReason,
		record.CheckoutType,
		record.CheckoutApproved,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	if err := r.loadBreaks(ctx, &rec); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	if err := r.loadBreaks(ctx, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2, check_out = $3, total_work_hours = $4, total_break_time = $5,
			is_late = $6, late_reason = $7, late_approved = $8,
			checkout_reason = $9, checkout_type = $10, checkout_approved = $11,
			status = $12, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.CheckIn, record.CheckOut, record.TotalWorkHours, record.TotalBreakTime,
		record.IsLate, record.LateReason, record.LateApproved,
		record.CheckoutReason, record.CheckoutType, record.CheckoutApproved,
		record.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// AddBreak implements attendance.AttendanceRepository.
func (r *attendanceRepository) AddBreak(ctx context.Context, br attendance.BreakRecord) (attendance.BreakRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO break_records (attendance_record_id, start_time, end_time, duration, reason, approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		br.AttendanceRecordID, br.StartTime, br.EndTime, br.Duration, br.Reason, br.Approved,
	).Scan(&br.ID, &br.CreatedAt)
	if err != nil {
		return attendance.BreakRecord{}, fmt.Errorf("failed to add break: %w", err)
	}

	return br, nil
}

// UpdateBreak implements attendance.AttendanceRepository.
func (r *attendanceRepository) UpdateBreak(ctx context.Context, br attendance.BreakRecord) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE break_records
		SET end_time = $2, duration = $3, reason = $4, approved = $5
		WHERE id = $1
	`, br.ID, br.EndTime, br.Duration, br.Reason, br.Approved)
	if err != nil {
		return fmt.Errorf("failed to update break: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.EmployeeCode != nil {
		query += fmt.Sprintf(" AND e.employee_code = $%d", argPos)
		args = append(args, *filter.EmployeeCode)
		argPos++
	}

	query += " ORDER BY a.date DESC, e.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		if err := r.loadBreaks(ctx, &records[i]); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// MarkAbsentees implements attendance.AttendanceRepository.
func (r *attendanceRepository) MarkAbsentees(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		INSERT INTO attendance_records (employee_id, date, status, total_work_hours, total_break_time)
		SELECT e.id, $1, 'absent', 0, 0
		FROM employees e
		WHERE e.is_active
		  AND NOT EXISTS (
			SELECT 1 FROM attendance_records a
			WHERE a.employee_id = e.id AND a.date = $1
		  )
	`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to insert absent records: %w", err)
	}

	return tag.RowsAffected(), nil
}
