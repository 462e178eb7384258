package entities

import "github.com/shopspring/decimal"

type DashboardStats struct {
	ActiveJobs       int
	OpenQuotes       int
	TotalRepaired    int
	EstimatedRevenue decimal.Decimal
	CompletedRevenue decimal.Decimal
	InventoryValue   decimal.Decimal
	RecentJobs       []RepairJob
}
