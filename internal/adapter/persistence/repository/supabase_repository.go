package repository

import (
	"context"
	"encoding/json"
	"time"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// SupabaseAPI is the subset of the Supabase client used by the repositories.
type SupabaseAPI interface {
	SelectByFirm(ctx context.Context, table, firmID, orderColumn string, result any) error
	Insert(ctx context.Context, table string, row any) error
	Upsert(ctx context.Context, table string, row any) error
}

type repairJobRow struct {
	ID             string        `json:"id"`
	FirmID         string        `json:"firm_id"`
	CustomerName   string        `json:"customer_name"`
	ContactNumber  string        `json:"contact_number"`
	Address        string        `json:"address"`
	Product        string        `json:"product"`
	Issue          string        `json:"issue"`
	Status         string        `json:"status"`
	EstimatedCost  json.Number   `json:"estimated_cost"`
	DevicePhotoURL *string       `json:"device_photo_url"`
	DateAdded      time.Time     `json:"date_added"`
	UpdatedAt      time.Time     `json:"updated_at"`
	PartsUsed      []usedPartRow `json:"parts_used"`
}

type usedPartRow struct {
	ID          string      `json:"id"`
	StockItemID string      `json:"stock_item_id"`
	Name        string      `json:"name"`
	Quantity    int         `json:"quantity"`
	Cost        json.Number `json:"cost"`
	DateUsed    time.Time   `json:"date_used"`
}

type stockItemRow struct {
	ID          string      `json:"id"`
	FirmID      string      `json:"firm_id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Quantity    int         `json:"quantity"`
	Price       json.Number `json:"price"`
	LastUpdated time.Time   `json:"last_updated"`
}

// RepairJobSupabaseRepository persists repair jobs in a Supabase table.
//
// parts_used is a jsonb column; numeric columns are sent as JSON numbers.
type RepairJobSupabaseRepository struct {
	client SupabaseAPI
	table  string
}

var _ interfaces.IRepairJobRepository = (*RepairJobSupabaseRepository)(nil)

func NewRepairJobSupabaseRepository(client SupabaseAPI, table string) *RepairJobSupabaseRepository {
	return &RepairJobSupabaseRepository{client: client, table: table}
}

func (r *RepairJobSupabaseRepository) ListByFirm(ctx context.Context, firmID string) ([]entities.RepairJob, error) {
	var rows []repairJobRow
	if err := r.client.SelectByFirm(ctx, r.table, firmID, "date_added", &rows); err != nil {
		return nil, err
	}
	jobs := make([]entities.RepairJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, fromRepairJobRow(row))
	}
	return jobs, nil
}

func (r *RepairJobSupabaseRepository) Upsert(ctx context.Context, job entities.RepairJob) error {
	return r.client.Upsert(ctx, r.table, toRepairJobRow(job))
}

// StockItemSupabaseRepository persists stock items in a Supabase table.
type StockItemSupabaseRepository struct {
	client SupabaseAPI
	table  string
}

var _ interfaces.IStockItemRepository = (*StockItemSupabaseRepository)(nil)

func NewStockItemSupabaseRepository(client SupabaseAPI, table string) *StockItemSupabaseRepository {
	return &StockItemSupabaseRepository{client: client, table: table}
}

func (r *StockItemSupabaseRepository) ListByFirm(ctx context.Context, firmID string) ([]entities.StockItem, error) {
	var rows []stockItemRow
	if err := r.client.SelectByFirm(ctx, r.table, firmID, "last_updated", &rows); err != nil {
		return nil, err
	}
	items := make([]entities.StockItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.StockItem{
			ID:          row.ID,
			FirmID:      row.FirmID,
			Name:        row.Name,
			Category:    row.Category,
			Quantity:    row.Quantity,
			Price:       parseDecimal(row.Price.String()),
			LastUpdated: row.LastUpdated,
		})
	}
	return items, nil
}

func (r *StockItemSupabaseRepository) Insert(ctx context.Context, item entities.StockItem) error {
	return r.client.Insert(ctx, r.table, toStockItemRow(item))
}

func (r *StockItemSupabaseRepository) Upsert(ctx context.Context, item entities.StockItem) error {
	return r.client.Upsert(ctx, r.table, toStockItemRow(item))
}

func toStockItemRow(s entities.StockItem) stockItemRow {
	return stockItemRow{
		ID:          s.ID,
		FirmID:      s.FirmID,
		Name:        s.Name,
		Category:    s.Category,
		Quantity:    s.Quantity,
		Price:       decimalNumber(s.Price),
		LastUpdated: s.LastUpdated.UTC(),
	}
}

func toRepairJobRow(j entities.RepairJob) repairJobRow {
	parts := make([]usedPartRow, 0, len(j.PartsUsed))
	for _, p := range j.PartsUsed {
		parts = append(parts, usedPartRow{
			ID:          p.ID,
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			Cost:        decimalNumber(p.Cost),
			DateUsed:    p.DateUsed.UTC(),
		})
	}
	var photo *string
	if j.DevicePhotoURL != "" {
		photo = &j.DevicePhotoURL
	}
	return repairJobRow{
		ID:             j.ID,
		FirmID:         j.FirmID,
		CustomerName:   j.CustomerName,
		ContactNumber:  j.ContactNumber,
		Address:        j.Address,
		Product:        j.Product,
		Issue:          j.Issue,
		Status:         string(j.Status),
		EstimatedCost:  decimalNumber(j.EstimatedCost),
		DevicePhotoURL: photo,
		DateAdded:      j.DateAdded.UTC(),
		UpdatedAt:      j.UpdatedAt.UTC(),
		PartsUsed:      parts,
	}
}

func fromRepairJobRow(row repairJobRow) entities.RepairJob {
	var parts []entities.UsedPart
	for _, p := range row.PartsUsed {
		parts = append(parts, entities.UsedPart{
			ID:          p.ID,
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			Cost:        parseDecimal(p.Cost.String()),
			DateUsed:    p.DateUsed,
		})
	}
	job := entities.RepairJob{
		ID:            row.ID,
		FirmID:        row.FirmID,
		CustomerName:  row.CustomerName,
		ContactNumber: row.ContactNumber,
		Address:       row.Address,
		Product:       row.Product,
		Issue:         row.Issue,
		Status:        entities.RepairStatus(row.Status),
		DateAdded:     row.DateAdded,
		UpdatedAt:     row.UpdatedAt,
		EstimatedCost: parseDecimal(row.EstimatedCost.String()),
		PartsUsed:     parts,
	}
	if row.DevicePhotoURL != nil {
		job.DevicePhotoURL = *row.DevicePhotoURL
	}
	return job
}

func decimalNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
