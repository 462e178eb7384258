package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repair_hub/internal/domain/entities"
	mock_interfaces "repair_hub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	uc     *SessionUseCase
	reg    *WorkspaceRegistry
	tokens *mock_interfaces.MockITokenManager
	jobs   *mock_interfaces.MockIRepairJobRepository
	stock  *mock_interfaces.MockIStockItemRepository
}

func newSessionFixture(t *testing.T) sessionFixture {
	ctrl := gomock.NewController(t)
	f := sessionFixture{
		reg:    NewWorkspaceRegistry(),
		tokens: mock_interfaces.NewMockITokenManager(ctrl),
		jobs:   mock_interfaces.NewMockIRepairJobRepository(ctrl),
		stock:  mock_interfaces.NewMockIStockItemRepository(ctrl),
	}
	f.uc = NewSessionUseCase(f.tokens, f.reg, f.jobs, f.stock, time.Hour, nil)
	f.uc.now = fixedClock(testNow)
	return f
}

func TestSessionUseCase_Authenticate(t *testing.T) {
	t.Run("valid credentials load the workspace", func(t *testing.T) {
		f := newSessionFixture(t)
		job := entities.RepairJob{ID: "JOB-1", Status: entities.RepairStatusWorking, EstimatedCost: decimal.NewFromInt(50)}
		item := screenItem(5)

		f.tokens.EXPECT().Issue(gomock.Any(), "Nihalelectronics", testNow.Add(time.Hour)).Return("tok", nil)
		f.jobs.EXPECT().ListByFirm(gomock.Any(), "Nihalelectronics").Return([]entities.RepairJob{job}, nil)
		f.stock.EXPECT().ListByFirm(gomock.Any(), "Nihalelectronics").Return([]entities.StockItem{item}, nil)

		session, token, err := f.uc.Authenticate(context.Background(), "Nihalelectronics", "Nihalelectronics@2026")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "tok" {
			t.Fatalf("expected token, got %q", token)
		}
		if session.ID == "" || session.FirmID != "Nihalelectronics" || session.PartitionKey != "Nihalelectronics" || session.FirmName != "Nihal Electronics" {
			t.Fatalf("unexpected session: %+v", session)
		}
		if !session.ExpiresAt.Equal(testNow.Add(time.Hour)) {
			t.Fatalf("unexpected expiry: %v", session.ExpiresAt)
		}

		ws, err := f.reg.Get(session.ID)
		if err != nil {
			t.Fatalf("expected workspace: %v", err)
		}
		if len(ws.jobs) != 1 || len(ws.stock) != 1 {
			t.Fatalf("expected loaded workspace, got %d jobs %d items", len(ws.jobs), len(ws.stock))
		}
	})

	t.Run("inputs are trimmed", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().Issue(gomock.Any(), "Yashelectronics", gomock.Any()).Return("tok", nil)
		f.jobs.EXPECT().ListByFirm(gomock.Any(), "Yashelectronics").Return(nil, nil)
		f.stock.EXPECT().ListByFirm(gomock.Any(), "Yashelectronics").Return(nil, nil)

		session, _, err := f.uc.Authenticate(context.Background(), "  Yashelectronics ", " Yashelectronics@2026\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.FirmName != "Yash Electronics" {
			t.Fatalf("unexpected firm name %q", session.FirmName)
		}
	})

	rejected := []struct {
		name, shop, secret string
	}{
		{"wrong secret", "Nihalelectronics", "wrong"},
		{"crossed pair", "Nihalelectronics", "Yashelectronics@2026"},
		{"unknown shop", "Acme", "Acme@2026"},
		{"case differs", "nihalelectronics", "Nihalelectronics@2026"},
		{"empty", "", ""},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			f := newSessionFixture(t)
			_, _, err := f.uc.Authenticate(context.Background(), tc.shop, tc.secret)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if f.reg.Len() != 0 {
				t.Fatalf("expected no workspace on rejected login")
			}
		})
	}

	t.Run("load failure keeps session usable", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return("tok", nil)
		f.jobs.EXPECT().ListByFirm(gomock.Any(), gomock.Any()).Return(nil, errors.New("offline"))
		f.stock.EXPECT().ListByFirm(gomock.Any(), gomock.Any()).Return([]entities.StockItem{screenItem(1)}, nil)

		session, _, err := f.uc.Authenticate(context.Background(), "Nihalelectronics", "Nihalelectronics@2026")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ws, _ := f.reg.Get(session.ID)
		if len(ws.jobs) != 0 || len(ws.stock) != 1 {
			t.Fatalf("expected only stock to load")
		}
		notes := ws.Inbox().Drain()
		if len(notes) != 1 || notes[0].Entity != "repair_job" || notes[0].Operation != "load" {
			t.Fatalf("expected load notification, got %+v", notes)
		}
	})

	t.Run("token error", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("sign"))

		_, _, err := f.uc.Authenticate(context.Background(), "Nihalelectronics", "Nihalelectronics@2026")
		if err == nil || err.Error() != "sign" {
			t.Fatalf("expected sign error, got %v", err)
		}
	})
}

func loginFixture(t *testing.T, f sessionFixture) entities.Session {
	t.Helper()
	f.tokens.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return("tok", nil)
	f.jobs.EXPECT().ListByFirm(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.stock.EXPECT().ListByFirm(gomock.Any(), gomock.Any()).Return(nil, nil)
	session, _, err := f.uc.Authenticate(context.Background(), "Nihalelectronics", "Nihalelectronics@2026")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return session
}

func TestSessionUseCase_Resolve(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		f := newSessionFixture(t)
		session := loginFixture(t, f)
		f.tokens.EXPECT().Validate("tok").Return(session.ID, session.FirmID, nil)

		got, err := f.uc.Resolve(context.Background(), "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != session.ID {
			t.Fatalf("expected %s, got %s", session.ID, got.ID)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newSessionFixture(t)
		f.tokens.EXPECT().Validate("bad").Return("", "", errors.New("invalid"))

		if _, err := f.uc.Resolve(context.Background(), "bad"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("revoked session", func(t *testing.T) {
		f := newSessionFixture(t)
		session := loginFixture(t, f)
		if err := f.uc.Logout(context.Background(), session); err != nil {
			t.Fatalf("logout failed: %v", err)
		}
		f.tokens.EXPECT().Validate("tok").Return(session.ID, session.FirmID, nil)

		if _, err := f.uc.Resolve(context.Background(), "tok"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("firm mismatch", func(t *testing.T) {
		f := newSessionFixture(t)
		session := loginFixture(t, f)
		f.tokens.EXPECT().Validate("tok").Return(session.ID, "Yashelectronics", nil)

		if _, err := f.uc.Resolve(context.Background(), "tok"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestSessionUseCase_Logout(t *testing.T) {
	f := newSessionFixture(t)
	session := loginFixture(t, f)

	if err := f.uc.Logout(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.reg.Get(session.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected workspace dropped, got %v", err)
	}
	if err := f.uc.Logout(context.Background(), session); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected second logout to fail, got %v", err)
	}
}

func TestSessionUseCase_SweepExpired(t *testing.T) {
	f := newSessionFixture(t)
	session := loginFixture(t, f)

	if n := f.uc.SweepExpired(testNow.Add(30 * time.Minute)); n != 0 {
		t.Fatalf("expected nothing swept, got %d", n)
	}
	if n := f.uc.SweepExpired(testNow.Add(time.Hour)); n != 1 {
		t.Fatalf("expected 1 swept, got %d", n)
	}
	if _, err := f.reg.Get(session.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected workspace dropped")
	}
}
