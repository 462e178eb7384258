package response

import (
	"time"

	"github.com/shopspring/decimal"

	"repair_hub/internal/domain/entities"
)

type StockItemResponse struct {
	ID          string    `json:"id"`
	FirmID      string    `json:"firm_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Value       float64   `json:"value"`
	LastUpdated time.Time `json:"last_updated"`
}

type StockValueResponse struct {
	TotalValue float64 `json:"total_value"`
}

type ConsumePartResponse struct {
	Job       RepairJobResponse `json:"job"`
	StockItem StockItemResponse `json:"stock_item"`
}

func FromStockItem(s entities.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:          s.ID,
		FirmID:      s.FirmID,
		Name:        s.Name,
		Category:    s.Category,
		Quantity:    s.Quantity,
		Price:       s.Price.InexactFloat64(),
		Value:       s.Value().InexactFloat64(),
		LastUpdated: s.LastUpdated,
	}
}

func FromStockItems(items []entities.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromStockItem(s))
	}
	return out
}

func FromStockValue(total decimal.Decimal) StockValueResponse {
	return StockValueResponse{TotalValue: total.InexactFloat64()}
}
