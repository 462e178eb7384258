package interfaces

import (
	"context"
	"repair_hub/internal/domain/entities"
)

// IStockItemRepository abstracts the backend table holding stock items.
//
// Insert must fail when the id already exists; Upsert overwrites.
type IStockItemRepository interface {
	ListByFirm(ctx context.Context, firmID string) ([]entities.StockItem, error)
	Insert(ctx context.Context, item entities.StockItem) error
	Upsert(ctx context.Context, item entities.StockItem) error
}
