package dashboard

import (
	"context"
	"time"
)

// DashboardRepository runs the aggregate queries behind the stats view.
type DashboardRepository interface {
	// CountActiveEmployees counts active directory entries.
	CountActiveEmployees(ctx context.Context) (int, error)

	// TodayCounts returns present, late and on-break counts for date.
	TodayCounts(ctx context.Context, date time.Time) (present int, late int, onBreak int, err error)

	// CountPendingApprovals counts undecided approval requests.
	CountPendingApprovals(ctx context.Context) (int, error)

	// AvgWorkHoursSince averages total work hours over records from start.
	AvgWorkHoursSince(ctx context.Context, start time.Time) (float64, error)

	// RecentAttendanceActivity returns the latest check-in/out events for
	// date, newest first.
	RecentAttendanceActivity(ctx context.Context, date time.Time, limit int) ([]Activity, error)

	// RecentApprovalActivity returns the latest pending requests, newest
	// first.
	RecentApprovalActivity(ctx context.Context, limit int) ([]Activity, error)
}
