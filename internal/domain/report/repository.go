package report

import "context"

// ReportRepository runs the reporting queries.
type ReportRepository interface {
	// AttendanceReport returns one row per attendance record in range.
	AttendanceReport(ctx context.Context, filter DateRangeFilter) ([]AttendanceRow, error)

	// WorkHoursReport returns per-employee totals over the range.
	WorkHoursReport(ctx context.Context, filter DateRangeFilter) ([]WorkHoursRow, error)

	// ApprovalsReport returns one row per approval request in range.
	ApprovalsReport(ctx context.Context, filter DateRangeFilter) ([]ApprovalRow, error)
}
