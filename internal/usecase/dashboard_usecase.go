package usecase

import (
	"context"

	"repair_hub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const recentJobsLimit = 4

type IDashboardUseCase interface {
	Stats(ctx context.Context, session entities.Session) (entities.DashboardStats, error)
}

type DashboardUseCase struct {
	workspaces *WorkspaceRegistry
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(workspaces *WorkspaceRegistry) *DashboardUseCase {
	return &DashboardUseCase{workspaces: workspaces}
}

func (u *DashboardUseCase) Stats(_ context.Context, session entities.Session) (entities.DashboardStats, error) {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return entities.DashboardStats{}, err
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	stats := entities.DashboardStats{
		EstimatedRevenue: decimal.Zero,
		CompletedRevenue: decimal.Zero,
		InventoryValue:   stockValue(ws.stock),
		RecentJobs:       make([]entities.RepairJob, 0, recentJobsLimit),
	}
	for i, j := range ws.jobs {
		switch j.Status {
		case entities.RepairStatusCompleted:
			stats.TotalRepaired++
			stats.CompletedRevenue = stats.CompletedRevenue.Add(j.EstimatedCost)
		case entities.RepairStatusQuoted:
			stats.OpenQuotes++
			stats.ActiveJobs++
		default:
			stats.ActiveJobs++
		}
		stats.EstimatedRevenue = stats.EstimatedRevenue.Add(j.EstimatedCost)
		if i < recentJobsLimit {
			stats.RecentJobs = append(stats.RecentJobs, j.Clone())
		}
	}
	return stats, nil
}
