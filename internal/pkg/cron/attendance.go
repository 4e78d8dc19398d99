package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sshraki/Attendance/internal/domain/attendance"
	"github.com/sshraki/Attendance/internal/pkg/clock"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	clk            clock.Clock
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, clk clock.Clock) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		clk:            clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills absent records for the previous day so
// reports and dashboard counts see a row per active employee. Attendance
// history is append-only; the insert skips employees that already have a
// record.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	now := j.clk.Now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := attendance.DateOf(now.AddDate(0, 0, -1))

	created, err := j.attendanceRepo.MarkAbsentees(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absentees: %w", err)
	}

	if created > 0 {
		slog.Info("Cron: Marked absent employees", "date", yesterday.Format("2006-01-02"), "count", created)
	}
	return nil
}
