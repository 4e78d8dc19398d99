package dashboard

import "time"

// Stats is the aggregate view backing the dashboard landing page.
type Stats struct {
	TotalEmployees   int        `json:"total_employees"`
	PresentToday     int        `json:"present_today"`
	LateToday        int        `json:"late_today"`
	OnBreak          int        `json:"on_break"`
	PendingApprovals int        `json:"pending_approvals"`
	AvgWorkHours     float64    `json:"avg_work_hours"`
	RecentActivity   []Activity `json:"recent_activity"`
}

type Activity struct {
	Type     string    `json:"type"` // attendance, approval
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
	Employee string    `json:"employee"`
}
