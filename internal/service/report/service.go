package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sshraki/Attendance/internal/domain/report"
)

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{ReportRepository: reportRepo}
}

// Attendance implements report.ReportService.
func (s *ReportServiceImpl) Attendance(ctx context.Context, filter report.DateRangeFilter) ([]report.AttendanceRow, error) {
	return s.ReportRepository.AttendanceReport(ctx, filter)
}

// WorkHours implements report.ReportService.
func (s *ReportServiceImpl) WorkHours(ctx context.Context, filter report.DateRangeFilter) ([]report.WorkHoursRow, error) {
	return s.ReportRepository.WorkHoursReport(ctx, filter)
}

// Approvals implements report.ReportService.
func (s *ReportServiceImpl) Approvals(ctx context.Context, filter report.DateRangeFilter) ([]report.ApprovalRow, error) {
	return s.ReportRepository.ApprovalsReport(ctx, filter)
}

// AttendanceXLSX implements report.ReportService.
func (s *ReportServiceImpl) AttendanceXLSX(ctx context.Context, filter report.DateRangeFilter) ([]byte, error) {
	rows, err := s.ReportRepository.AttendanceReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Attendance"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{
		"Date", "Employee ID", "Name", "Department",
		"Check In", "Check Out", "Status", "Late",
		"Breaks", "Break Time (min)", "Work Hours",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", last, headerStyle)

	for i, row := range rows {
		late := "No"
		if row.IsLate {
			late = "Yes"
		}
		values := []interface{}{
			row.Date, row.EmployeeCode, row.EmployeeName, row.Department,
			row.CheckIn, row.CheckOut, row.Status, late,
			row.TotalBreaks, row.BreakTime, row.WorkHours,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "D", 18)
	f.SetColWidth(sheetName, "E", "K", 14)

	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
