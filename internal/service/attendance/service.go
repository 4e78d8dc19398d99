package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sshraki/Attendance/internal/domain/attendance"
	"github.com/sshraki/Attendance/internal/domain/employee"
	"github.com/sshraki/Attendance/internal/domain/settings"
	"github.com/sshraki/Attendance/internal/pkg/clock"
	"github.com/sshraki/Attendance/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	settingsService settings.SettingsService
	clk             clock.Clock
	runTx           database.TxRunner
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsService settings.SettingsService,
	clk clock.Clock,
	runTx database.TxRunner,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		settingsService:      settingsService,
		clk:                  clk,
		runTx:                runTx,
	}
}

// today loads the employee's record for the current date. A nil record means
// no check-in happened yet.
func (a *AttendanceServiceImpl) today(ctx context.Context, employeeCode string) (employee.Employee, *attendance.AttendanceRecord, time.Time, error) {
	emp, err := a.EmployeeRepository.GetByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return employee.Employee{}, nil, time.Time{}, err
	}

	now := a.clk.Now().UTC()
	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, attendance.DateOf(now))
	if err != nil {
		return employee.Employee{}, nil, time.Time{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	return emp, record, now, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, existing, now, err := a.today(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := attendance.ValidateTransition(attendance.StateOf(existing), attendance.ActionCheckIn); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Policy is read once per operation; a settings update racing this
	// read can produce a decision on the previous policy (documented
	// non-atomic read-then-decide).
	policy, err := a.settingsService.Get(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}

	isLate := policy.IsLateArrival(now)

	record := attendance.AttendanceRecord{
		EmployeeID:     emp.ID,
		Date:           attendance.DateOf(now),
		CheckIn:        &now,
		TotalWorkHours: decimal.Zero,
		IsLate:         isLate,
		LateApproved:   !isLate,
		Status:         attendance.StatusPresent,
	}

	// The repository turns a (employee_id, date) unique violation into
	// ErrAlreadyCheckedIn, so racing check-ins yield one winner.
	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.EmployeeCode = &emp.EmployeeCode

	return attendance.ToResponse(created), nil
}

// StartBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context, req attendance.BreakRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, record, now, err := a.today(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := attendance.ValidateTransition(attendance.StateOf(record), attendance.ActionStartBreak); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	br := attendance.BreakRecord{
		AttendanceRecordID: record.ID,
		StartTime:          now,
		Duration:           0,
		Reason:             req.Reason,
		Approved:           true,
	}

	created, err := a.AttendanceRepository.AddBreak(ctx, br)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.Breaks = append(record.Breaks, created)

	return attendance.ToResponse(*record), nil
}

// EndBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context, req attendance.BreakRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, record, now, err := a.today(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := attendance.ValidateTransition(attendance.StateOf(record), attendance.ActionEndBreak); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open := record.OpenBreak()
	open.EndTime = &now
	// Duration rounds down to whole minutes.
	open.Duration = int(now.Sub(open.StartTime).Minutes())
	record.TotalBreakTime = record.SumBreakMinutes()

	err = a.runTx(ctx, func(ctx context.Context) error {
		if err := a.AttendanceRepository.UpdateBreak(ctx, *open); err != nil {
			return err
		}
		return a.AttendanceRepository.Update(ctx, *record)
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, record, now, err := a.today(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := attendance.ValidateTransition(attendance.StateOf(record), attendance.ActionCheckOut); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	breakMinutes := record.SumBreakMinutes()
	workedMinutes := now.Sub(*record.CheckIn).Minutes()

	record.CheckOut = &now
	record.CheckoutReason = req.Reason
	record.CheckoutType = req.Type
	record.TotalBreakTime = breakMinutes
	// Not clamped at zero: a break total exceeding elapsed time passes
	// through as negative hours.
	record.TotalWorkHours = decimal.NewFromFloat((workedMinutes - float64(breakMinutes)) / 60).Round(2)

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeCode string) (attendance.AttendanceResponse, error) {
	_, record, _, err := a.today(ctx, employeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return attendance.ToResponse(*record), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, nil
}

// Update implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.CheckIn = req.CheckIn
	record.CheckOut = req.CheckOut
	record.Status = req.Status
	record.IsLate = req.IsLate
	record.LateApproved = req.LateApproved
	record.CheckoutApproved = req.CheckoutApproved

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}
