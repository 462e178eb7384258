package usecase

import (
	"context"
	"strings"
	"time"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"
	"repair_hub/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IPartConsumptionUseCase moves stock onto a repair job.
type IPartConsumptionUseCase interface {
	Consume(ctx context.Context, session entities.Session, jobID, stockItemID string, quantity int) (entities.RepairJob, entities.StockItem, error)
}

type PartConsumptionUseCase struct {
	workspaces *WorkspaceRegistry
	jobsRepo   interfaces.IRepairJobRepository
	stockRepo  interfaces.IStockItemRepository
	reconciler *Reconciler
	now        func() time.Time
	logger     *zap.Logger
}

var _ IPartConsumptionUseCase = (*PartConsumptionUseCase)(nil)

func NewPartConsumptionUseCase(
	workspaces *WorkspaceRegistry,
	jobsRepo interfaces.IRepairJobRepository,
	stockRepo interfaces.IStockItemRepository,
	reconciler *Reconciler,
	log *zap.Logger,
) *PartConsumptionUseCase {
	return &PartConsumptionUseCase{
		workspaces: workspaces,
		jobsRepo:   jobsRepo,
		stockRepo:  stockRepo,
		reconciler: reconciler,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger.Named(log, "usecase.consumption"),
	}
}

// Consume deducts quantity units of a stock item and appends a part snapshot
// to the job. The cost is captured at the current unit price and never
// recomputed. Both changes are applied together or not at all.
func (u *PartConsumptionUseCase) Consume(ctx context.Context, session entities.Session, jobID, stockItemID string, quantity int) (entities.RepairJob, entities.StockItem, error) {
	if quantity <= 0 {
		return entities.RepairJob{}, entities.StockItem{}, ErrInvalidQuantity
	}
	jobID = strings.TrimSpace(jobID)
	stockItemID = strings.TrimSpace(stockItemID)

	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return entities.RepairJob{}, entities.StockItem{}, err
	}

	ws.mu.Lock()
	jobIdx := ws.jobIndex(jobID)
	if jobIdx < 0 {
		ws.mu.Unlock()
		return entities.RepairJob{}, entities.StockItem{}, ErrRepairJobNotFound
	}
	item, err := ws.deductLocked(stockItemID, quantity)
	if err != nil {
		ws.mu.Unlock()
		return entities.RepairJob{}, entities.StockItem{}, err
	}

	now := u.now()
	job := &ws.jobs[jobIdx]
	job.PartsUsed = append(job.PartsUsed, entities.UsedPart{
		ID:          uuid.NewString(),
		StockItemID: item.ID,
		Name:        item.Name,
		Quantity:    quantity,
		Cost:        item.Price.Mul(decimal.NewFromInt(int64(quantity))),
		DateUsed:    now,
	})
	job.UpdatedAt = laterOf(now, job.UpdatedAt)
	savedJob := job.Clone()

	u.reconciler.Dispatch(ctx, session, "stock_item", item.ID, "upsert", func(ctx context.Context) error {
		return u.stockRepo.Upsert(ctx, item)
	})
	u.reconciler.Dispatch(ctx, session, "repair_job", savedJob.ID, "upsert", func(ctx context.Context) error {
		return u.jobsRepo.Upsert(ctx, savedJob)
	})
	ws.mu.Unlock()

	u.logger.Debug("part consumed",
		zap.String("job_id", savedJob.ID),
		zap.String("stock_item_id", item.ID),
		zap.Int("quantity", quantity),
	)
	return savedJob, item, nil
}
