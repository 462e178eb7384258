package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase"
)

func TestFromRepairJob(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	j := entities.RepairJob{
		ID:            "JOB-427001",
		FirmID:        "Nihalelectronics",
		CustomerName:  "Asha",
		Product:       "TV",
		Status:        entities.RepairStatusWorking,
		EstimatedCost: decimal.RequireFromString("1500.50"),
		DateAdded:     now,
		UpdatedAt:     now,
		PartsUsed: []entities.UsedPart{
			{ID: "p1", StockItemID: "S1", Name: "Screen", Quantity: 2, Cost: decimal.NewFromInt(200), DateUsed: now},
			{ID: "p2", StockItemID: "S2", Name: "Cable", Quantity: 1, Cost: decimal.RequireFromString("12.25"), DateUsed: now},
		},
	}

	res := FromRepairJob(j)
	if res.ID != "JOB-427001" || res.FirmID != "Nihalelectronics" || res.Status != "working" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.EstimatedCost != 1500.5 {
		t.Fatalf("unexpected cost: %v", res.EstimatedCost)
	}
	if len(res.PartsUsed) != 2 || res.PartsUsed[0].Cost != 200 {
		t.Fatalf("unexpected parts: %+v", res.PartsUsed)
	}
	if res.PartsTotal != 212.25 {
		t.Fatalf("unexpected parts total: %v", res.PartsTotal)
	}
	if !res.DateAdded.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromRepairJob_NoPartsRendersEmptyList(t *testing.T) {
	res := FromRepairJob(entities.RepairJob{ID: "J1"})
	if res.PartsUsed == nil || len(res.PartsUsed) != 0 {
		t.Fatalf("expected empty parts list, got %#v", res.PartsUsed)
	}
}

func TestFromScanResult(t *testing.T) {
	res := FromScanResult(usecase.ScanResult{Job: entities.RepairJob{ID: "J9"}, IsNew: true, Payload: "J9"})
	if res.Job.ID != "J9" || !res.IsNew || res.Payload != "J9" {
		t.Fatalf("unexpected scan response: %+v", res)
	}
}

func TestFromStockItem(t *testing.T) {
	res := FromStockItem(entities.StockItem{ID: "S1", Name: "Screen", Quantity: 3, Price: decimal.RequireFromString("99.5")})
	if res.Price != 99.5 || res.Value != 298.5 {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if FromStockValue(decimal.RequireFromString("1234.75")).TotalValue != 1234.75 {
		t.Fatalf("unexpected total value")
	}
}

func TestFromJobTags(t *testing.T) {
	res := FromJobTags([]entities.JobTag{{ID: "t1", Value: "JOB-427001", Label: "JOB-427001"}})
	if res.Count != 1 || res.Tags[0].Value != "JOB-427001" {
		t.Fatalf("unexpected tags: %+v", res)
	}
	if empty := FromJobTags(nil); empty.Tags == nil || empty.Count != 0 {
		t.Fatalf("expected empty queue, got %+v", empty)
	}
}

func TestFromSession(t *testing.T) {
	exp := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	res := FromSession(entities.Session{ID: "sess-1", FirmID: "Nihalelectronics", FirmName: "Nihal Electronics", ExpiresAt: exp}, "tok")
	if res.Token != "tok" || res.SessionID != "sess-1" || res.FirmName != "Nihal Electronics" || !res.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected session response: %+v", res)
	}
}

func TestFromDashboardStats(t *testing.T) {
	res := FromDashboardStats(entities.DashboardStats{
		ActiveJobs:       2,
		OpenQuotes:       1,
		TotalRepaired:    3,
		EstimatedRevenue: decimal.NewFromInt(500),
		CompletedRevenue: decimal.NewFromInt(300),
		InventoryValue:   decimal.RequireFromString("80.5"),
		RecentJobs:       []entities.RepairJob{{ID: "J1"}},
	})
	if res.ActiveJobs != 2 || res.OpenQuotes != 1 || res.TotalRepaired != 3 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if res.EstimatedRevenue != 500 || res.CompletedRevenue != 300 || res.InventoryValue != 80.5 {
		t.Fatalf("unexpected revenue: %+v", res)
	}
	if len(res.RecentJobs) != 1 {
		t.Fatalf("unexpected recent jobs: %+v", res.RecentJobs)
	}
}

func TestFromNotifications_NilIsEmpty(t *testing.T) {
	if res := FromNotifications(nil); res.Notifications == nil {
		t.Fatalf("expected non-nil notifications")
	}
}
