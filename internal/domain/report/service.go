package report

import "context"

// ReportService exposes reporting queries and spreadsheet export.
type ReportService interface {
	Attendance(ctx context.Context, filter DateRangeFilter) ([]AttendanceRow, error)
	WorkHours(ctx context.Context, filter DateRangeFilter) ([]WorkHoursRow, error)
	Approvals(ctx context.Context, filter DateRangeFilter) ([]ApprovalRow, error)

	// AttendanceXLSX renders the attendance report as an XLSX workbook.
	AttendanceXLSX(ctx context.Context, filter DateRangeFilter) ([]byte, error)
}
