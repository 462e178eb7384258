package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"repair_hub/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSupabase struct {
	selectJSON string
	selectErr  error
	calls      []string
	rows       []any
}

func (f *fakeSupabase) SelectByFirm(_ context.Context, table, firmID, orderColumn string, result any) error {
	f.calls = append(f.calls, "select "+table+" "+firmID+" "+orderColumn)
	if f.selectErr != nil {
		return f.selectErr
	}
	return json.Unmarshal([]byte(f.selectJSON), result)
}

func (f *fakeSupabase) Insert(_ context.Context, table string, row any) error {
	f.calls = append(f.calls, "insert "+table)
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeSupabase) Upsert(_ context.Context, table string, row any) error {
	f.calls = append(f.calls, "upsert "+table)
	f.rows = append(f.rows, row)
	return nil
}

func TestRepairJobSupabaseRepository(t *testing.T) {
	t.Run("list decodes rows", func(t *testing.T) {
		fake := &fakeSupabase{selectJSON: `[{
			"id":"JOB-1","firm_id":"F","customer_name":"Asha","status":"approved",
			"estimated_cost":1500.5,"device_photo_url":null,
			"date_added":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z",
			"parts_used":[{"id":"P1","stock_item_id":"S1","name":"Screen","quantity":2,"cost":200,"date_used":"2026-01-02T03:04:05Z"}]
		}]`}
		repo := NewRepairJobSupabaseRepository(fake, "repairs")

		jobs, err := repo.ListByFirm(context.Background(), "F")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, []string{"select repairs F date_added"}, fake.calls)

		j := jobs[0]
		assert.Equal(t, entities.RepairStatusApproved, j.Status)
		assert.True(t, j.EstimatedCost.Equal(decimal.RequireFromString("1500.5")))
		assert.Empty(t, j.DevicePhotoURL)
		require.Len(t, j.PartsUsed, 1)
		assert.True(t, j.PartsUsed[0].Cost.Equal(decimal.NewFromInt(200)))
	})

	t.Run("upsert encodes numbers", func(t *testing.T) {
		fake := &fakeSupabase{}
		repo := NewRepairJobSupabaseRepository(fake, "repairs")

		err := repo.Upsert(context.Background(), entities.RepairJob{ID: "JOB-1", EstimatedCost: decimal.RequireFromString("99.90"), DateAdded: time.Now()})
		require.NoError(t, err)

		raw, err := json.Marshal(fake.rows[0])
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, 99.9, decoded["estimated_cost"])
		assert.Nil(t, decoded["device_photo_url"])
		assert.Equal(t, []any{}, decoded["parts_used"])
	})

	t.Run("list error", func(t *testing.T) {
		repo := NewRepairJobSupabaseRepository(&fakeSupabase{selectErr: errors.New("502")}, "repairs")
		_, err := repo.ListByFirm(context.Background(), "F")
		assert.EqualError(t, err, "502")
	})
}

func TestStockItemSupabaseRepository(t *testing.T) {
	fake := &fakeSupabase{selectJSON: `[{"id":"S1","firm_id":"F","name":"Screen","category":"Display","quantity":5,"price":100,"last_updated":"2026-01-02T03:04:05Z"}]`}
	repo := NewStockItemSupabaseRepository(fake, "stock")

	items, err := repo.ListByFirm(context.Background(), "F")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(100)))

	require.NoError(t, repo.Insert(context.Background(), items[0]))
	require.NoError(t, repo.Upsert(context.Background(), items[0]))
	assert.Equal(t, []string{"select stock F last_updated", "insert stock", "upsert stock"}, fake.calls)
}
