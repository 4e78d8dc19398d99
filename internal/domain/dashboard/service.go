package dashboard

import "context"

// DashboardService assembles today's aggregate stats.
type DashboardService interface {
	GetStats(ctx context.Context) (Stats, error)
}
