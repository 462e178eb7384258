package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"repair_hub/internal/domain/entities"
	mock_interfaces "repair_hub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type repairFixture struct {
	uc      *RepairJobUseCase
	repo    *mock_interfaces.MockIRepairJobRepository
	photos  *mock_interfaces.MockIPhotoStorage
	reg     *WorkspaceRegistry
	rec     *Reconciler
	session entities.Session
}

func newRepairFixture(t *testing.T) repairFixture {
	ctrl := gomock.NewController(t)
	f := repairFixture{
		repo:   mock_interfaces.NewMockIRepairJobRepository(ctrl),
		photos: mock_interfaces.NewMockIPhotoStorage(ctrl),
		reg:    NewWorkspaceRegistry(),
	}
	f.session = openTestSession(f.reg)
	f.rec = NewReconciler(f.reg, nil)
	f.uc = NewRepairJobUseCase(f.reg, f.repo, f.photos, f.rec, nil)
	f.uc.now = fixedClock(testNow)
	return f
}

func TestRepairJobUseCase_CreateOrUpdate(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		f := newRepairFixture(t)
		cases := []struct {
			name string
			in   RepairJobInput
			want error
		}{
			{"missing id", RepairJobInput{ID: " "}, ErrInvalidJobID},
			{"unknown status", RepairJobInput{ID: "J1", Status: "shipped"}, ErrInvalidStatus},
			{"negative cost", RepairJobInput{ID: "J1", EstimatedCost: decimal.NewFromInt(-1)}, ErrInvalidEstimatedCost},
		}
		for _, tc := range cases {
			if _, err := f.uc.CreateOrUpdate(context.Background(), f.session, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})

	t.Run("create inserts most recent first", func(t *testing.T) {
		f := newRepairFixture(t)
		seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "OLD"}}, nil)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.RepairJob{})).DoAndReturn(
			func(_ context.Context, j entities.RepairJob) error {
				if j.ID != "J1" || j.FirmID != "Nihalelectronics" || j.Status != entities.RepairStatusQuoted {
					t.Fatalf("unexpected upsert: %+v", j)
				}
				return nil
			},
		)

		job, err := f.uc.CreateOrUpdate(context.Background(), f.session, RepairJobInput{
			ID:            " J1 ",
			CustomerName:  "Asha",
			Product:       "iPhone 12",
			EstimatedCost: decimal.NewFromInt(1500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()

		if !job.DateAdded.Equal(testNow) || !job.UpdatedAt.Equal(testNow) {
			t.Fatalf("expected timestamps stamped, got %+v", job)
		}
		all, _ := f.uc.Filter(context.Background(), f.session, FilterAll, "")
		if len(all) != 2 || all[0].ID != "J1" {
			t.Fatalf("expected J1 first, got %+v", all)
		}
	})

	t.Run("update keeps identity, date added and parts", func(t *testing.T) {
		f := newRepairFixture(t)
		added := testNow.Add(-48 * time.Hour)
		prevUpdate := testNow.Add(-time.Hour)
		parts := []entities.UsedPart{{ID: "P1", StockItemID: "S1", Name: "Screen", Quantity: 1, Cost: decimal.NewFromInt(100)}}
		seedWorkspace(t, f.reg, f.session, []entities.RepairJob{
			{ID: "X"},
			{ID: "J1", CustomerName: "Old", Status: entities.RepairStatusQuoted, DateAdded: added, UpdatedAt: prevUpdate, PartsUsed: parts},
		}, nil)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		job, err := f.uc.CreateOrUpdate(context.Background(), f.session, RepairJobInput{
			ID:            "J1",
			CustomerName:  "New",
			Status:        entities.RepairStatusWorking,
			EstimatedCost: decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()

		if job.CustomerName != "New" || job.Status != entities.RepairStatusWorking {
			t.Fatalf("expected fields replaced, got %+v", job)
		}
		if !job.DateAdded.Equal(added) || len(job.PartsUsed) != 1 {
			t.Fatalf("expected date added and parts preserved, got %+v", job)
		}
		if job.UpdatedAt.Before(prevUpdate) {
			t.Fatalf("updated at went backwards")
		}

		all, _ := f.uc.Filter(context.Background(), f.session, "", "")
		if len(all) != 2 || all[1].ID != "J1" {
			t.Fatalf("expected position kept, got %+v", all)
		}
	})

	t.Run("round trip differs only in updated at", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		in := RepairJobInput{ID: "J1", CustomerName: "Asha", ContactNumber: "999", Address: "Main St", Product: "Pixel", Issue: "No boot", Status: entities.RepairStatusApproved, EstimatedCost: decimal.NewFromInt(20)}
		first, err := f.uc.CreateOrUpdate(context.Background(), f.session, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.uc.now = fixedClock(testNow.Add(time.Minute))
		second, err := f.uc.CreateOrUpdate(context.Background(), f.session, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()

		if second.UpdatedAt.Before(first.UpdatedAt) {
			t.Fatalf("updated at must not decrease")
		}
		second.UpdatedAt = first.UpdatedAt
		if second.CustomerName != first.CustomerName || second.Status != first.Status || !second.DateAdded.Equal(first.DateAdded) || !second.EstimatedCost.Equal(first.EstimatedCost) {
			t.Fatalf("expected equal records, got %+v vs %+v", first, second)
		}
	})

	t.Run("clock skew never moves updated at backwards", func(t *testing.T) {
		f := newRepairFixture(t)
		future := testNow.Add(time.Hour)
		seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "J1", UpdatedAt: future}}, nil)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		job, err := f.uc.CreateOrUpdate(context.Background(), f.session, RepairJobInput{ID: "J1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()
		if !job.UpdatedAt.Equal(future) {
			t.Fatalf("expected %v, got %v", future, job.UpdatedAt)
		}
	})

	t.Run("backend failure keeps local update", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("503"))

		if _, err := f.uc.CreateOrUpdate(context.Background(), f.session, RepairJobInput{ID: "J1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()

		if _, err := f.uc.FindByID(context.Background(), f.session, "J1"); err != nil {
			t.Fatalf("expected job kept locally: %v", err)
		}
		ws, _ := f.reg.Get(f.session.ID)
		notes := ws.Inbox().Drain()
		if len(notes) != 1 || notes[0].RecordID != "J1" || !strings.Contains(notes[0].Message, "503") {
			t.Fatalf("expected notification, got %+v", notes)
		}
	})
}

func TestRepairJobUseCase_Open(t *testing.T) {
	f := newRepairFixture(t)
	seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "J1", CustomerName: "Asha", Status: entities.RepairStatusWorking}}, nil)

	t.Run("existing", func(t *testing.T) {
		job, isNew, err := f.uc.Open(context.Background(), f.session, "J1")
		if err != nil || isNew || job.CustomerName != "Asha" {
			t.Fatalf("expected existing job, got %+v %v %v", job, isNew, err)
		}
	})

	t.Run("blank tag yields draft", func(t *testing.T) {
		job, isNew, err := f.uc.Open(context.Background(), f.session, "JOB-123001")
		if err != nil || !isNew {
			t.Fatalf("expected draft, got %v %v", isNew, err)
		}
		if job.ID != "JOB-123001" || job.Status != entities.RepairStatusQuoted || !job.EstimatedCost.IsZero() || !job.DateAdded.Equal(testNow) {
			t.Fatalf("unexpected draft: %+v", job)
		}
		if _, err := f.uc.FindByID(context.Background(), f.session, "JOB-123001"); !errors.Is(err, ErrRepairJobNotFound) {
			t.Fatalf("draft must not be stored, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		if _, _, err := f.uc.Open(context.Background(), f.session, " "); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})
}

func TestRepairJobUseCase_Filter(t *testing.T) {
	f := newRepairFixture(t)
	seedWorkspace(t, f.reg, f.session, []entities.RepairJob{
		{ID: "JOB-1", CustomerName: "Asha", Product: "iPhone", Status: entities.RepairStatusWorking},
		{ID: "JOB-2", CustomerName: "Ravi", Product: "Galaxy", Status: entities.RepairStatusWorking},
		{ID: "JOB-3", CustomerName: "Phil", Product: "iPad", Status: entities.RepairStatusCompleted},
	}, nil)

	cases := []struct {
		status, search string
		want           []string
	}{
		{FilterAll, "", []string{"JOB-1", "JOB-2", "JOB-3"}},
		{"working", "", []string{"JOB-1", "JOB-2"}},
		{"working", "IPH", []string{"JOB-1"}},
		{"", "job-3", []string{"JOB-3"}},
		{"completed", "ravi", nil},
		{"all", "ph", []string{"JOB-1", "JOB-3"}},
	}
	for _, tc := range cases {
		got, err := f.uc.Filter(context.Background(), f.session, tc.status, tc.search)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%s/%s: expected %v, got %+v", tc.status, tc.search, tc.want, got)
		}
		for i := range tc.want {
			if got[i].ID != tc.want[i] {
				t.Fatalf("%s/%s: expected %v, got %+v", tc.status, tc.search, tc.want, got)
			}
		}
	}

	if _, err := f.uc.Filter(context.Background(), f.session, "lost", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestRepairJobUseCase_SetStatus(t *testing.T) {
	t.Run("any transition allowed", func(t *testing.T) {
		f := newRepairFixture(t)
		seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "J1", Status: entities.RepairStatusCompleted}}, nil)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		job, err := f.uc.SetStatus(context.Background(), f.session, "J1", entities.RepairStatusQuoted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()
		if job.Status != entities.RepairStatusQuoted || !job.UpdatedAt.Equal(testNow) {
			t.Fatalf("unexpected job: %+v", job)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		f := newRepairFixture(t)
		if _, err := f.uc.SetStatus(context.Background(), f.session, "nope", entities.RepairStatusWorking); !errors.Is(err, ErrRepairJobNotFound) {
			t.Fatalf("expected ErrRepairJobNotFound, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newRepairFixture(t)
		if _, err := f.uc.SetStatus(context.Background(), f.session, "J1", "lost"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestRepairJobUseCase_AttachDevicePhoto(t *testing.T) {
	t.Run("existing job gets url", func(t *testing.T) {
		f := newRepairFixture(t)
		seedWorkspace(t, f.reg, f.session, []entities.RepairJob{{ID: "J1"}}, nil)
		f.photos.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", []byte("png")).DoAndReturn(
			func(_ context.Context, path, _ string, _ []byte) (string, error) {
				if !strings.HasPrefix(path, "J1/") || !strings.HasSuffix(path, ".png") {
					t.Fatalf("unexpected path %q", path)
				}
				return "https://cdn/" + path, nil
			},
		)
		f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.RepairJob) error {
			if !strings.HasPrefix(j.DevicePhotoURL, "https://cdn/J1/") {
				t.Fatalf("expected photo url persisted, got %+v", j)
			}
			return nil
		})

		url, err := f.uc.AttachDevicePhoto(context.Background(), f.session, "J1", "", "image/png", []byte("png"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.rec.Wait()

		job, _ := f.uc.FindByID(context.Background(), f.session, "J1")
		if job.DevicePhotoURL != url {
			t.Fatalf("expected %q, got %q", url, job.DevicePhotoURL)
		}
	})

	t.Run("draft job only returns url", func(t *testing.T) {
		f := newRepairFixture(t)
		f.photos.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/x.jpg", nil)

		url, err := f.uc.AttachDevicePhoto(context.Background(), f.session, "JOB-1", "front.JPG", "", []byte("jpg"))
		if err != nil || url != "https://cdn/x.jpg" {
			t.Fatalf("unexpected result %q %v", url, err)
		}
	})

	t.Run("upload failure is a backend error", func(t *testing.T) {
		f := newRepairFixture(t)
		f.photos.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("denied"))

		if _, err := f.uc.AttachDevicePhoto(context.Background(), f.session, "J1", "a.jpg", "image/jpeg", []byte("x")); !errors.Is(err, ErrBackend) {
			t.Fatalf("expected ErrBackend, got %v", err)
		}
	})

	t.Run("empty photo", func(t *testing.T) {
		f := newRepairFixture(t)
		if _, err := f.uc.AttachDevicePhoto(context.Background(), f.session, "J1", "a.jpg", "image/jpeg", nil); !errors.Is(err, ErrInvalidPhoto) {
			t.Fatalf("expected ErrInvalidPhoto, got %v", err)
		}
	})
}

func TestPhotoExtension(t *testing.T) {
	cases := []struct{ filename, contentType, want string }{
		{"front.PNG", "image/jpeg", "png"},
		{"", "image/webp", "webp"},
		{"", "application/octet-stream", "jpg"},
	}
	for _, tc := range cases {
		if got := photoExtension(tc.filename, tc.contentType); got != tc.want {
			t.Fatalf("photoExtension(%q,%q) = %q, want %q", tc.filename, tc.contentType, got, tc.want)
		}
	}
}
