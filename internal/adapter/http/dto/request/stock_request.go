package request

import (
	"strings"

	"repair_hub/internal/usecase"
)

// StockItemRequest mirrors the add-stock form: unparsable quantity or price
// read as 0 and are rejected by the ledger.
type StockItemRequest struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Quantity FormNumber `json:"quantity"`
	Price    FormNumber `json:"price"`
}

func (r StockItemRequest) ToInput() usecase.NewStockItem {
	return usecase.NewStockItem{
		Name:     strings.TrimSpace(r.Name),
		Category: strings.TrimSpace(r.Category),
		Quantity: r.Quantity.Int(),
		Price:    r.Price.Decimal(),
	}
}

type DeductRequest struct {
	Quantity FormNumber `json:"quantity"`
}
