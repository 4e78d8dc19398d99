package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sshraki/Attendance/internal/domain/dashboard"
	"github.com/sshraki/Attendance/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// TodayCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) TodayCounts(ctx context.Context, date time.Time) (int, int, int, error) {
	q := GetQuerier(ctx, r.db)

	var present, late, onBreak int
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE a.status IN ('present', 'partial')),
			COUNT(*) FILTER (WHERE a.is_late),
			COUNT(*) FILTER (WHERE EXISTS (
				SELECT 1 FROM break_records b
				WHERE b.attendance_record_id = a.id AND b.end_time IS NULL
			))
		FROM attendance_records a
		WHERE a.date = $1
	`, date).Scan(&present, &late, &onBreak)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count today's attendance: %w", err)
	}
	return present, late, onBreak, nil
}

// CountPendingApprovals implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingApprovals(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM approval_requests WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending approvals: %w", err)
	}
	return count, nil
}

// AvgWorkHoursSince implements dashboard.DashboardRepository.
func (r *dashboardRepository) AvgWorkHoursSince(ctx context.Context, start time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var avg float64
	err := q.QueryRow(ctx, `
		SELECT COALESCE(ROUND(AVG(total_work_hours), 1), 0)
		FROM attendance_records
		WHERE date >= $1
	`, start).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to average work hours: %w", err)
	}
	return avg, nil
}

// RecentAttendanceActivity implements dashboard.DashboardRepository.
func (r *dashboardRepository) RecentAttendanceActivity(ctx context.Context, date time.Time, limit int) ([]dashboard.Activity, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT e.name,
			   a.check_out IS NOT NULL,
			   COALESCE(a.check_out, a.check_in, a.created_at)
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY COALESCE(a.check_out, a.check_in, a.created_at) DESC
		LIMIT $2
	`, date, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance activity: %w", err)
	}
	defer rows.Close()

	var activity []dashboard.Activity
	for rows.Next() {
		var name string
		var checkedOut bool
		var at time.Time
		if err := rows.Scan(&name, &checkedOut, &at); err != nil {
			return nil, fmt.Errorf("failed to scan attendance activity: %w", err)
		}

		direction := "in"
		if checkedOut {
			direction = "out"
		}
		activity = append(activity, dashboard.Activity{
			Type:     "attendance",
			Message:  fmt.Sprintf("%s checked %s", name, direction),
			Time:     at,
			Employee: name,
		})
	}

	return activity, rows.Err()
}

// RecentApprovalActivity implements dashboard.DashboardRepository.
func (r *dashboardRepository) RecentApprovalActivity(ctx context.Context, limit int) ([]dashboard.Activity, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT e.name, r.type, r.requested_at
		FROM approval_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.status = 'pending'
		ORDER BY r.requested_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load approval activity: %w", err)
	}
	defer rows.Close()

	var activity []dashboard.Activity
	for rows.Next() {
		var name, reqType string
		var at time.Time
		if err := rows.Scan(&name, &reqType, &at); err != nil {
			return nil, fmt.Errorf("failed to scan approval activity: %w", err)
		}

		activity = append(activity, dashboard.Activity{
			Type:     "approval",
			Message:  fmt.Sprintf("%s requested %s approval", name, reqType),
			Time:     at,
			Employee: name,
		})
	}

	return activity, rows.Err()
}
