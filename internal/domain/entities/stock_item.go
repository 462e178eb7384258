package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultStockCategory = "General"

// StockItem is an inventory line of the shop.
//
// Storage model (DynamoDB):
//   - PK: firm_id
//   - SK: id
//   - LSI (firm_id-last_updated-index): last_updated
//
// Quantity never goes negative; it only changes through add and deduct.
type StockItem struct {
	ID          string          `json:"id"`
	FirmID      string          `json:"firm_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	LastUpdated time.Time       `json:"last_updated"`
}

// Value is quantity times unit price.
func (s StockItem) Value() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
