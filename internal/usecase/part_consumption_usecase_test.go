package usecase

import (
	"context"
	"errors"
	"testing"

	"repair_hub/internal/domain/entities"
	mock_interfaces "repair_hub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type consumptionFixture struct {
	uc        *PartConsumptionUseCase
	jobsRepo  *mock_interfaces.MockIRepairJobRepository
	stockRepo *mock_interfaces.MockIStockItemRepository
	reg       *WorkspaceRegistry
	rec       *Reconciler
	session   entities.Session
}

func newConsumptionFixture(t *testing.T) consumptionFixture {
	ctrl := gomock.NewController(t)
	f := consumptionFixture{
		jobsRepo:  mock_interfaces.NewMockIRepairJobRepository(ctrl),
		stockRepo: mock_interfaces.NewMockIStockItemRepository(ctrl),
		reg:       NewWorkspaceRegistry(),
	}
	f.session = openTestSession(f.reg)
	f.rec = NewReconciler(f.reg, nil)
	f.uc = NewPartConsumptionUseCase(f.reg, f.jobsRepo, f.stockRepo, f.rec, nil)
	f.uc.now = fixedClock(testNow)
	return f
}

func TestPartConsumptionUseCase_Consume(t *testing.T) {
	t.Run("screen scenario", func(t *testing.T) {
		f := newConsumptionFixture(t)
		ws := seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "J1"}}, []entities.StockItem{screenItem(5)})

		f.stockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, it entities.StockItem) error {
			if it.ID != "S1" || it.Quantity != 3 {
				t.Fatalf("unexpected stock upsert: %+v", it)
			}
			return nil
		})
		f.jobsRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.RepairJob) error {
			if j.ID != "J1" || len(j.PartsUsed) != 1 {
				t.Fatalf("unexpected job upsert: %+v", j)
			}
			return nil
		})

		job, item, err := f.uc.Consume(context.Background(), f.session, "J1", "S1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()

		if item.Quantity != 3 || ws.stock[0].Quantity != 3 {
			t.Fatalf("expected quantity 3, got %d", item.Quantity)
		}
		if len(job.PartsUsed) != 1 {
			t.Fatalf("expected one part, got %d", len(job.PartsUsed))
		}
		part := job.PartsUsed[0]
		if part.ID == "" || part.StockItemID != "S1" || part.Name != "Screen" || part.Quantity != 2 || !part.DateUsed.Equal(testNow) {
			t.Fatalf("unexpected part: %+v", part)
		}
		if !part.Cost.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected cost 200, got %s", part.Cost)
		}
		if !job.PartsTotal().Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected parts total 200, got %s", job.PartsTotal())
		}
	})

	t.Run("later price change keeps recorded cost", func(t *testing.T) {
		f := newConsumptionFixture(t)
		ws := seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "J1"}}, []entities.StockItem{screenItem(5)})
		f.stockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		f.jobsRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		if _, _, err := f.uc.Consume(context.Background(), f.session, "J1", "S1", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()

		ws.mu.Lock()
		ws.stock[0].Price = decimal.NewFromInt(999)
		cost := ws.jobs[0].PartsUsed[0].Cost
		ws.mu.Unlock()
		if !cost.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected captured cost 100, got %s", cost)
		}
	})

	t.Run("parts accumulate in order", func(t *testing.T) {
		f := newConsumptionFixture(t)
		seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "J1"}}, []entities.StockItem{screenItem(5)})
		f.stockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.jobsRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		if _, _, err := f.uc.Consume(context.Background(), f.session, "J1", "S1", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		job, _, err := f.uc.Consume(context.Background(), f.session, "J1", "S1", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()

		if len(job.PartsUsed) != 2 || job.PartsUsed[0].Quantity != 1 || job.PartsUsed[1].Quantity != 3 {
			t.Fatalf("unexpected parts: %+v", job.PartsUsed)
		}
		if job.PartsUsed[0].ID == job.PartsUsed[1].ID {
			t.Fatalf("part ids must be unique")
		}
	})

	failures := []struct {
		name     string
		jobID    string
		itemID   string
		quantity int
		want     error
	}{
		{"unknown job", "J9", "S1", 1, ErrRepairJobNotFound},
		{"unknown item", "J1", "S9", 1, ErrStockItemNotFound},
		{"insufficient", "J1", "S1", 6, ErrInsufficientStock},
		{"zero quantity", "J1", "S1", 0, ErrInvalidQuantity},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			f := newConsumptionFixture(t)
			ws := seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "J1"}}, []entities.StockItem{screenItem(5)})

			_, _, err := f.uc.Consume(context.Background(), f.session, tc.jobID, tc.itemID, tc.quantity)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if ws.stock[0].Quantity != 5 || len(ws.jobs[0].PartsUsed) != 0 {
				t.Fatalf("expected nothing applied")
			}
		})
	}
}
