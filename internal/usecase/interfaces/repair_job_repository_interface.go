package interfaces

import (
	"context"
	"repair_hub/internal/domain/entities"
)

// IRepairJobRepository abstracts the backend table holding repair jobs.
//
// The backend is consulted for two operations only:
//   - select all jobs of a partition, most recently added first
//   - upsert a job by id
type IRepairJobRepository interface {
	ListByFirm(ctx context.Context, firmID string) ([]entities.RepairJob, error)
	Upsert(ctx context.Context, job entities.RepairJob) error
}
