package response

import "repair_hub/internal/domain/entities"

type DashboardResponse struct {
	ActiveJobs       int                 `json:"active_jobs"`
	OpenQuotes       int                 `json:"open_quotes"`
	TotalRepaired    int                 `json:"total_repaired"`
	EstimatedRevenue float64             `json:"estimated_revenue"`
	CompletedRevenue float64             `json:"completed_revenue"`
	InventoryValue   float64             `json:"inventory_value"`
	RecentJobs       []RepairJobResponse `json:"recent_jobs"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardResponse {
	return DashboardResponse{
		ActiveJobs:       s.ActiveJobs,
		OpenQuotes:       s.OpenQuotes,
		TotalRepaired:    s.TotalRepaired,
		EstimatedRevenue: s.EstimatedRevenue.InexactFloat64(),
		CompletedRevenue: s.CompletedRevenue.InexactFloat64(),
		InventoryValue:   s.InventoryValue.InexactFloat64(),
		RecentJobs:       FromRepairJobs(s.RecentJobs),
	}
}

type NotificationsResponse struct {
	Notifications []entities.Notification `json:"notifications"`
}

func FromNotifications(items []entities.Notification) NotificationsResponse {
	if items == nil {
		items = []entities.Notification{}
	}
	return NotificationsResponse{Notifications: items}
}
