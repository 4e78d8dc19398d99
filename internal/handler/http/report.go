package http

import (
	"fmt"
	"net/http"

	"github.com/sshraki/Attendance/internal/domain/report"
	"github.com/sshraki/Attendance/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	WorkHours(w http.ResponseWriter, r *http.Request)
	Approvals(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func parseFilter(r *http.Request) (report.DateRangeFilter, error) {
	q := r.URL.Query()

	start, end, err := report.ParseDateRange(q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		return report.DateRangeFilter{}, err
	}

	filter := report.DateRangeFilter{StartDate: start, EndDate: end}
	if employeeCode := q.Get("employee_id"); employeeCode != "" {
		filter.EmployeeCode = &employeeCode
	}

	return filter, nil
}

// Attendance implements ReportHandler.
func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.reportService.Attendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// WorkHours implements ReportHandler.
func (h *reportHandlerImpl) WorkHours(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.reportService.WorkHours(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approvals implements ReportHandler.
func (h *reportHandlerImpl) Approvals(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.reportService.Approvals(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ExportAttendance implements ReportHandler.
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.reportService.AttendanceXLSX(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx",
		filter.StartDate.Format("2006-01-02"),
		filter.EndDate.Format("2006-01-02"),
	)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}
