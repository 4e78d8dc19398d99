package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/sshraki/Attendance/internal/domain/dashboard"
	"github.com/sshraki/Attendance/internal/pkg/clock"
)

const recentActivityLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clk clock.Clock
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, clk clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		clk:                 clk,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	now := s.clk.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := today.AddDate(0, 0, -7)

	total, err := s.DashboardRepository.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	present, late, onBreak, err := s.DashboardRepository.TodayCounts(ctx, today)
	if err != nil {
		return dashboard.Stats{}, err
	}

	pending, err := s.DashboardRepository.CountPendingApprovals(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	avgHours, err := s.DashboardRepository.AvgWorkHoursSince(ctx, weekAgo)
	if err != nil {
		return dashboard.Stats{}, err
	}

	attendanceActivity, err := s.DashboardRepository.RecentAttendanceActivity(ctx, today, recentActivityLimit)
	if err != nil {
		return dashboard.Stats{}, err
	}

	approvalActivity, err := s.DashboardRepository.RecentApprovalActivity(ctx, recentActivityLimit)
	if err != nil {
		return dashboard.Stats{}, err
	}

	activity := append(attendanceActivity, approvalActivity...)
	sort.Slice(activity, func(i, j int) bool {
		return activity[i].Time.After(activity[j].Time)
	})
	if len(activity) > recentActivityLimit {
		activity = activity[:recentActivityLimit]
	}

	return dashboard.Stats{
		TotalEmployees:   total,
		PresentToday:     present,
		LateToday:        late,
		OnBreak:          onBreak,
		PendingApprovals: pending,
		AvgWorkHours:     avgHours,
		RecentActivity:   activity,
	}, nil
}
