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

// NewStockItem is the input of AddItem.
type NewStockItem struct {
	Name     string
	Category string
	Quantity int
	Price    decimal.Decimal
}

// IStockLedgerUseCase keeps the shop inventory.
//
// Quantities only change through AddItem and Deduct and never go negative.
type IStockLedgerUseCase interface {
	AddItem(ctx context.Context, session entities.Session, in NewStockItem) (entities.StockItem, error)
	Deduct(ctx context.Context, session entities.Session, itemID string, quantity int) (entities.StockItem, error)
	List(ctx context.Context, session entities.Session, search string) ([]entities.StockItem, error)
	TotalValue(ctx context.Context, session entities.Session) (decimal.Decimal, error)
}

type StockLedgerUseCase struct {
	workspaces *WorkspaceRegistry
	repo       interfaces.IStockItemRepository
	reconciler *Reconciler
	now        func() time.Time
	logger     *zap.Logger
}

var _ IStockLedgerUseCase = (*StockLedgerUseCase)(nil)

func NewStockLedgerUseCase(workspaces *WorkspaceRegistry, repo interfaces.IStockItemRepository, reconciler *Reconciler, log *zap.Logger) *StockLedgerUseCase {
	return &StockLedgerUseCase{
		workspaces: workspaces,
		repo:       repo,
		reconciler: reconciler,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger.Named(log, "usecase.stock"),
	}
}

func (u *StockLedgerUseCase) AddItem(ctx context.Context, session entities.Session, in NewStockItem) (entities.StockItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.StockItem{}, ErrInvalidStockName
	}
	if in.Quantity < 0 {
		return entities.StockItem{}, ErrInvalidStockQuantity
	}
	if in.Price.IsNegative() {
		return entities.StockItem{}, ErrInvalidStockPrice
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = entities.DefaultStockCategory
	}

	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return entities.StockItem{}, err
	}

	item := entities.StockItem{
		ID:          uuid.NewString(),
		FirmID:      session.PartitionKey,
		Name:        name,
		Category:    category,
		Quantity:    in.Quantity,
		Price:       in.Price,
		LastUpdated: u.now(),
	}

	ws.mu.Lock()
	ws.stock = append([]entities.StockItem{item}, ws.stock...)
	u.reconciler.Dispatch(ctx, session, "stock_item", item.ID, "insert", func(ctx context.Context) error {
		return u.repo.Insert(ctx, item)
	})
	ws.mu.Unlock()

	u.logger.Debug("stock item added", zap.String("item_id", item.ID), zap.Int("quantity", item.Quantity))
	return item, nil
}

func (u *StockLedgerUseCase) Deduct(ctx context.Context, session entities.Session, itemID string, quantity int) (entities.StockItem, error) {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return entities.StockItem{}, err
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()
	item, err := ws.deductLocked(strings.TrimSpace(itemID), quantity)
	if err != nil {
		return entities.StockItem{}, err
	}

	u.reconciler.Dispatch(ctx, session, "stock_item", item.ID, "upsert", func(ctx context.Context) error {
		return u.repo.Upsert(ctx, item)
	})
	return item, nil
}

// List matches search case-insensitively against name and category.
func (u *StockLedgerUseCase) List(_ context.Context, session entities.Session, search string) ([]entities.StockItem, error) {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return nil, err
	}

	ws.mu.Lock()
	items := ws.snapshotStock()
	ws.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return items, nil
	}
	out := make([]entities.StockItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) || strings.Contains(strings.ToLower(it.Category), needle) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (u *StockLedgerUseCase) TotalValue(_ context.Context, session entities.Session) (decimal.Decimal, error) {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return decimal.Zero, err
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()
	return stockValue(ws.stock), nil
}

func stockValue(items []entities.StockItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Value())
	}
	return total
}
