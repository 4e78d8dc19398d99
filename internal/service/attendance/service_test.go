package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sshraki/Attendance/internal/domain/attendance"
	"github.com/sshraki/Attendance/internal/domain/employee"
	"github.com/sshraki/Attendance/internal/domain/settings"
)

// ===== TEST DOUBLES =====

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type stubSettingsService struct {
	settings settings.Settings
}

func (s *stubSettingsService) Get(ctx context.Context) (settings.Settings, error) {
	return s.settings, nil
}

func (s *stubSettingsService) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	return s.settings, nil
}

type fakeEmployeeRepo struct {
	byCode map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range r.byCode {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	e, ok := r.byCode[code]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.byCode[e.EmployeeCode] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error       { return nil }
func (r *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) HasAdmin(ctx context.Context) (bool, error) { return true, nil }

type fakeAttendanceRepo struct {
	records map[string]attendance.AttendanceRecord // employeeID|date
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.AttendanceRecord)}
}

func (r *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	k := r.key(record.EmployeeID, record.Date)
	if _, exists := r.records[k]; exists {
		return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedIn
	}
	r.nextID++
	record.ID = fmt.Sprintf("att-%d", r.nextID)
	r.records[k] = record
	return record, nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	rec, ok := r.records[r.key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	copied := rec
	copied.Breaks = append([]attendance.BreakRecord(nil), rec.Breaks...)
	return &copied, nil
}

func (r *fakeAttendanceRepo) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	k := r.key(record.EmployeeID, record.Date)
	if _, ok := r.records[k]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[k] = record
	return nil
}

func (r *fakeAttendanceRepo) AddBreak(ctx context.Context, br attendance.BreakRecord) (attendance.BreakRecord, error) {
	for k, rec := range r.records {
		if rec.ID == br.AttendanceRecordID {
			r.nextID++
			br.ID = fmt.Sprintf("brk-%d", r.nextID)
			rec.Breaks = append(rec.Breaks, br)
			r.records[k] = rec
			return br, nil
		}
	}
	return attendance.BreakRecord{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) UpdateBreak(ctx context.Context, br attendance.BreakRecord) error {
	for k, rec := range r.records {
		for i := range rec.Breaks {
			if rec.Breaks[i].ID == br.ID {
				rec.Breaks[i] = br
				r.records[k] = rec
				return nil
			}
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) MarkAbsentees(ctx context.Context, date time.Time) (int64, error) {
	return 0, nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(clk *fakeClock) (attendance.AttendanceService, *fakeAttendanceRepo) {
	attendanceRepo := newFakeAttendanceRepo()
	employeeRepo := &fakeEmployeeRepo{byCode: map[string]employee.Employee{
		"EMP001": {ID: "emp-1", EmployeeCode: "EMP001", Name: "Jane Roe", Role: employee.RoleEmployee, IsActive: true},
	}}
	settingsSvc := &stubSettingsService{settings: settings.Default()}

	svc := NewAttendanceService(attendanceRepo, employeeRepo, settingsSvc, clk, passthroughTx)
	return svc, attendanceRepo
}

func at(hour, min, sec int) time.Time {
	return time.Date(2025, 3, 10, hour, min, sec, 0, time.UTC)
}

// ===== CHECK IN =====

func TestAttendanceService_CheckIn_OnTime(t *testing.T) {
	clk := &fakeClock{now: at(8, 10, 0)}
	svc, _ := newTestService(clk)

	result, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	assert.False(t, result.IsLate)
	assert.True(t, result.LateApproved)
	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Equal(t, string(attendance.StateCheckedIn), result.State)
	assert.Equal(t, "0.00", result.TotalWorkHours)
}

func TestAttendanceService_CheckIn_GraceBoundary(t *testing.T) {
	// Default window is 08:00 with 15 minutes of grace: 08:15 exactly is
	// still on time, 08:16 is late.
	clk := &fakeClock{now: at(8, 15, 59)}
	svc, _ := newTestService(clk)

	result, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	assert.False(t, result.IsLate)
}

func TestAttendanceService_CheckIn_Late(t *testing.T) {
	clk := &fakeClock{now: at(8, 16, 0)}
	svc, _ := newTestService(clk)

	result, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	assert.True(t, result.IsLate)
	assert.False(t, result.LateApproved)
}

func TestAttendanceService_CheckIn_Twice(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeCode: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckIn_UnknownEmployee(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeCode: "GHOST"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== BREAKS =====

func TestAttendanceService_StartBreak_NotCheckedIn(t *testing.T) {
	clk := &fakeClock{now: at(9, 0, 0)}
	svc, _ := newTestService(clk)

	_, err := svc.StartBreak(context.Background(), attendance.BreakRequest{EmployeeCode: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_StartBreak_Twice(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	clk.now = at(12, 0, 0)
	result, err := svc.StartBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateOnBreak), result.State)

	_, err = svc.StartBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyOnBreak)
}

func TestAttendanceService_EndBreak_NotOnBreak(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	_, err = svc.EndBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrNotOnBreak)
}

func TestAttendanceService_EndBreak_DurationRoundsDown(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	clk.now = at(12, 0, 0)
	_, err = svc.StartBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	// 42 minutes and 30 seconds on break counts as 42 whole minutes.
	clk.now = at(12, 42, 30)
	result, err := svc.EndBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, 42, result.TotalBreakTime)
	require.Len(t, result.Breaks, 1)
	assert.Equal(t, 42, result.Breaks[0].Duration)
	assert.Equal(t, string(attendance.StateCheckedIn), result.State)
}

func TestAttendanceService_MultipleBreaksAccumulate(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	clk.now = at(10, 0, 0)
	_, err = svc.StartBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	clk.now = at(10, 15, 0)
	_, err = svc.EndBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	clk.now = at(13, 0, 0)
	_, err = svc.StartBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	clk.now = at(13, 45, 0)
	result, err := svc.EndBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, 60, result.TotalBreakTime)
	assert.Len(t, result.Breaks, 2)
}

// ===== CHECK OUT =====

func TestAttendanceService_CheckOut_WorkHours(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	clk.now = at(12, 0, 0)
	_, err = svc.StartBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	clk.now = at(13, 0, 0)
	_, err = svc.EndBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	// 8:00 to 16:50 is 530 minutes, minus 60 on break: 470/60 = 7.83.
	clk.now = at(16, 50, 0)
	result, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, "7.83", result.TotalWorkHours)
	assert.Equal(t, 60, result.TotalBreakTime)
	assert.Equal(t, string(attendance.StateCheckedOut), result.State)
}

func TestAttendanceService_CheckOut_WhileOnBreak(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	clk.now = at(12, 0, 0)
	_, err = svc.StartBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	// Checking out while on break is allowed; the open break keeps zero
	// duration and does not count against work time.
	clk.now = at(16, 0, 0)
	result, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, "8.00", result.TotalWorkHours)
	assert.Equal(t, 0, result.TotalBreakTime)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	clk.now = at(17, 0, 0)
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeCode: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)

	_, err = svc.StartBreak(ctx, attendance.BreakRequest{EmployeeCode: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_CheckOut_NotCheckedIn(t *testing.T) {
	clk := &fakeClock{now: at(17, 0, 0)}
	svc, _ := newTestService(clk)

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeCode: "EMP001"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_NegativeHoursPassThrough(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, repo := newTestService(clk)
	ctx := context.Background()

	result, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	// A manually corrected break longer than the elapsed day drives the
	// total negative; it is stored as-is, not clamped.
	end := at(8, 30, 0)
	rec, err := repo.GetByID(ctx, result.ID)
	require.NoError(t, err)
	rec.Breaks = append(rec.Breaks, attendance.BreakRecord{
		ID:                 "brk-manual",
		AttendanceRecordID: rec.ID,
		StartTime:          at(8, 5, 0),
		EndTime:            &end,
		Duration:           600,
		Approved:           true,
	})
	require.NoError(t, repo.Update(ctx, rec))

	clk.now = at(9, 0, 0)
	out, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	assert.Equal(t, "-9.00", out.TotalWorkHours)
}

// ===== TODAY =====

func TestAttendanceService_GetToday_NoRecord(t *testing.T) {
	clk := &fakeClock{now: at(9, 0, 0)}
	svc, _ := newTestService(clk)

	_, err := svc.GetToday(context.Background(), "EMP001")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_GetToday_AfterCheckIn(t *testing.T) {
	clk := &fakeClock{now: at(8, 5, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	result, err := svc.GetToday(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateCheckedIn), result.State)
	assert.NotNil(t, result.CheckIn)
}

func TestAttendanceService_NewDayStartsFresh(t *testing.T) {
	clk := &fakeClock{now: at(8, 0, 0)}
	svc, _ := newTestService(clk)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	clk.now = at(17, 0, 0)
	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)

	// Next calendar day: checking in again is legal.
	clk.now = clk.now.AddDate(0, 0, 1)
	result, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeCode: "EMP001"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateCheckedIn), result.State)
}
