package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sshraki/Attendance/internal/domain/report"
	"github.com/sshraki/Attendance/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// AttendanceReport implements report.ReportRepository.
func (r *reportRepository) AttendanceReport(ctx context.Context, filter report.DateRangeFilter) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.date, e.employee_code, e.name, e.department,
			   COALESCE(to_char(a.check_in, 'HH24:MI'), 'N/A'),
			   COALESCE(to_char(a.check_out, 'HH24:MI'), 'N/A'),
			   a.status, a.is_late,
			   (SELECT COUNT(*) FROM break_records b WHERE b.attendance_record_id = a.id),
			   a.total_break_time, a.total_work_hours
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
	`
	args := []interface{}{filter.StartDate, filter.EndDate}
	if filter.EmployeeCode != nil {
		query += " AND e.employee_code = $3"
		args = append(args, *filter.EmployeeCode)
	}
	query += " ORDER BY a.date DESC, e.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run attendance report: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		var date time.Time
		var workHours decimal.Decimal
		if err := rows.Scan(
			&date, &row.EmployeeCode, &row.EmployeeName, &row.Department,
			&row.CheckIn, &row.CheckOut, &row.Status, &row.IsLate,
			&row.TotalBreaks, &row.BreakTime, &workHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		row.Date = date.Format("2006-01-02")
		row.WorkHours = workHours.StringFixed(2)
		result = append(result, row)
	}

	return result, rows.Err()
}

// WorkHoursReport implements report.ReportRepository.
func (r *reportRepository) WorkHoursReport(ctx context.Context, filter report.DateRangeFilter) ([]report.WorkHoursRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_code, e.name, e.department,
			   COUNT(*),
			   COALESCE(SUM(a.total_work_hours), 0),
			   COALESCE(SUM(a.total_break_time), 0),
			   COUNT(*) FILTER (WHERE a.is_late),
			   COALESCE(ROUND(AVG(a.total_work_hours), 2), 0)
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
	`
	args := []interface{}{filter.StartDate, filter.EndDate}
	if filter.EmployeeCode != nil {
		query += " AND e.employee_code = $3"
		args = append(args, *filter.EmployeeCode)
	}
	query += " GROUP BY e.employee_code, e.name, e.department ORDER BY e.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run work hours report: %w", err)
	}
	defer rows.Close()

	var result []report.WorkHoursRow
	for rows.Next() {
		var row report.WorkHoursRow
		var total decimal.Decimal
		if err := rows.Scan(
			&row.EmployeeCode, &row.EmployeeName, &row.Department,
			&row.TotalDays, &total, &row.TotalBreakTime,
			&row.LateDays, &row.AverageWorkHrs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work hours report row: %w", err)
		}
		row.TotalWorkHours = total.StringFixed(2)
		result = append(result, row)
	}

	return result, rows.Err()
}

// ApprovalsReport implements report.ReportRepository.
func (r *reportRepository) ApprovalsReport(ctx context.Context, filter report.DateRangeFilter) ([]report.ApprovalRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(r.requested_at, 'YYYY-MM-DD'), e.employee_code, e.name,
			   r.type, r.reason, r.status,
			   COALESCE(r.approved_by, 'N/A'),
			   COALESCE(to_char(r.approved_at, 'YYYY-MM-DD'), 'N/A')
		FROM approval_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.requested_at >= $1 AND r.requested_at < $2 + INTERVAL '1 day'
	`
	args := []interface{}{filter.StartDate, filter.EndDate}
	if filter.EmployeeCode != nil {
		query += " AND e.employee_code = $3"
		args = append(args, *filter.EmployeeCode)
	}
	query += " ORDER BY r.requested_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run approvals report: %w", err)
	}
	defer rows.Close()

	var result []report.ApprovalRow
	for rows.Next() {
		var row report.ApprovalRow
		if err := rows.Scan(
			&row.Date, &row.EmployeeCode, &row.EmployeeName,
			&row.Type, &row.Reason, &row.Status,
			&row.ApprovedBy, &row.ApprovedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan approvals report row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
