package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"
	"repair_hub/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FilterAll disables the status filter of Filter.
const FilterAll = "all"

// RepairJobInput carries the editable fields of a repair job.
type RepairJobInput struct {
	ID             string
	CustomerName   string
	ContactNumber  string
	Address        string
	Product        string
	Issue          string
	Status         entities.RepairStatus
	EstimatedCost  decimal.Decimal
	DevicePhotoURL string
}

// IRepairJobUseCase exposes the repair job board.
//
//   - CreateOrUpdate saves the repair form (job id comes from the tag)
//   - Open is the entry point for scans and manual tag entry
//   - Filter backs the job list with its status tabs and search box
type IRepairJobUseCase interface {
	CreateOrUpdate(ctx context.Context, session entities.Session, in RepairJobInput) (entities.RepairJob, error)
	FindByID(ctx context.Context, session entities.Session, id string) (entities.RepairJob, error)
	Open(ctx context.Context, session entities.Session, id string) (entities.RepairJob, bool, error)
	Filter(ctx context.Context, session entities.Session, status, search string) ([]entities.RepairJob, error)
	SetStatus(ctx context.Context, session entities.Session, id string, status entities.RepairStatus) (entities.RepairJob, error)
	AttachDevicePhoto(ctx context.Context, session entities.Session, jobID, filename, contentType string, data []byte) (string, error)
}

type RepairJobUseCase struct {
	workspaces *WorkspaceRegistry
	repo       interfaces.IRepairJobRepository
	photos     interfaces.IPhotoStorage
	reconciler *Reconciler
	now        func() time.Time
	logger     *zap.Logger
}

var _ IRepairJobUseCase = (*RepairJobUseCase)(nil)

func NewRepairJobUseCase(
	workspaces *WorkspaceRegistry,
	repo interfaces.IRepairJobRepository,
	photos interfaces.IPhotoStorage,
	reconciler *Reconciler,
	log *zap.Logger,
) *RepairJobUseCase {
	return &RepairJobUseCase{
		workspaces: workspaces,
		repo:       repo,
		photos:     photos,
		reconciler: reconciler,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger.Named(log, "usecase.repair"),
	}
}

func (u *RepairJobUseCase) CreateOrUpdate(ctx context.Context, session entities.Session, in RepairJobInput) (entities.RepairJob, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return entities.RepairJob{}, ErrInvalidJobID
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return entities.RepairJob{}, err
	}
	if in.EstimatedCost.IsNegative() {
		return entities.RepairJob{}, ErrInvalidEstimatedCost
	}

	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return entities.RepairJob{}, err
	}

	ws.mu.Lock()
	now := u.now()
	job := entities.RepairJob{
		ID:             id,
		FirmID:         session.PartitionKey,
		CustomerName:   in.CustomerName,
		ContactNumber:  in.ContactNumber,
		Address:        in.Address,
		Product:        in.Product,
		Issue:          in.Issue,
		Status:         status,
		DateAdded:      now,
		UpdatedAt:      now,
		EstimatedCost:  in.EstimatedCost,
		DevicePhotoURL: in.DevicePhotoURL,
	}
	if idx := ws.jobIndex(id); idx >= 0 {
		existing := ws.jobs[idx]
		job.DateAdded = existing.DateAdded
		job.PartsUsed = existing.PartsUsed
		job.UpdatedAt = laterOf(now, existing.UpdatedAt)
		ws.jobs[idx] = job
	} else {
		ws.jobs = append([]entities.RepairJob{job}, ws.jobs...)
	}
	saved := job.Clone()
	u.persist(ctx, session, saved)
	ws.mu.Unlock()

	return saved, nil
}

func (u *RepairJobUseCase) FindByID(_ context.Context, session entities.Session, id string) (entities.RepairJob, error) {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return entities.RepairJob{}, err
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()
	idx := ws.jobIndex(strings.TrimSpace(id))
	if idx < 0 {
		return entities.RepairJob{}, ErrRepairJobNotFound
	}
	return ws.jobs[idx].Clone(), nil
}

// Open returns the job carrying id, or an unsaved quoted draft for a blank
// tag. The bool reports whether the draft was created.
func (u *RepairJobUseCase) Open(ctx context.Context, session entities.Session, id string) (entities.RepairJob, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RepairJob{}, false, ErrInvalidJobID
	}

	job, err := u.FindByID(ctx, session, id)
	if err == nil {
		return job, false, nil
	}
	if !errors.Is(err, ErrRepairJobNotFound) {
		return entities.RepairJob{}, false, err
	}

	now := u.now()
	return entities.RepairJob{
		ID:            id,
		FirmID:        session.PartitionKey,
		Status:        entities.RepairStatusQuoted,
		DateAdded:     now,
		UpdatedAt:     now,
		EstimatedCost: decimal.Zero,
	}, true, nil
}

// Filter keeps jobs matching status (or FilterAll) and whose customer name,
// product or id contains search, ignoring case.
func (u *RepairJobUseCase) Filter(_ context.Context, session entities.Session, status, search string) ([]entities.RepairJob, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != FilterAll && !entities.RepairStatus(status).IsValid() {
		return nil, ErrInvalidStatus
	}

	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return nil, err
	}

	ws.mu.Lock()
	jobs := ws.snapshotJobs()
	ws.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.RepairJob, 0, len(jobs))
	for _, j := range jobs {
		if status != "" && status != FilterAll && string(j.Status) != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(j.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(j.Product), needle) &&
			!strings.Contains(strings.ToLower(j.ID), needle) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (u *RepairJobUseCase) SetStatus(ctx context.Context, session entities.Session, id string, status entities.RepairStatus) (entities.RepairJob, error) {
	if !status.IsValid() {
		return entities.RepairJob{}, ErrInvalidStatus
	}
	return u.mutate(ctx, session, id, func(job *entities.RepairJob) {
		job.Status = status
	})
}

// AttachDevicePhoto uploads the photo and, when the job is already saved,
// stores the returned URL on it. Upload errors are returned to the caller.
func (u *RepairJobUseCase) AttachDevicePhoto(ctx context.Context, session entities.Session, jobID, filename, contentType string, data []byte) (string, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return "", ErrInvalidJobID
	}
	if len(data) == 0 {
		return "", ErrInvalidPhoto
	}
	if _, err := u.workspaces.Get(session.ID); err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("%s/%s.%s", jobID, uuid.NewString(), photoExtension(filename, contentType))
	url, err := u.photos.Upload(ctx, objectPath, contentType, data)
	if err != nil {
		u.logger.Warn("photo upload failed", zap.String("job_id", jobID), zap.Error(err))
		return "", fmt.Errorf("%w: photo upload: %v", ErrBackend, err)
	}

	_, err = u.mutate(ctx, session, jobID, func(job *entities.RepairJob) {
		job.DevicePhotoURL = url
	})
	if err != nil && !errors.Is(err, ErrRepairJobNotFound) {
		return "", err
	}
	return url, nil
}

// mutate applies fn to a stored job, refreshes UpdatedAt and reconciles it.
func (u *RepairJobUseCase) mutate(ctx context.Context, session entities.Session, id string, fn func(job *entities.RepairJob)) (entities.RepairJob, error) {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return entities.RepairJob{}, err
	}

	ws.mu.Lock()
	idx := ws.jobIndex(strings.TrimSpace(id))
	if idx < 0 {
		ws.mu.Unlock()
		return entities.RepairJob{}, ErrRepairJobNotFound
	}
	job := &ws.jobs[idx]
	fn(job)
	job.UpdatedAt = laterOf(u.now(), job.UpdatedAt)
	saved := job.Clone()
	u.persist(ctx, session, saved)
	ws.mu.Unlock()

	return saved, nil
}

// persist must be called with the workspace lock held.
func (u *RepairJobUseCase) persist(ctx context.Context, session entities.Session, job entities.RepairJob) {
	u.reconciler.Dispatch(ctx, session, "repair_job", job.ID, "upsert", func(ctx context.Context) error {
		return u.repo.Upsert(ctx, job)
	})
}

func normalizeStatus(s entities.RepairStatus) (entities.RepairStatus, error) {
	s = entities.RepairStatus(strings.ToLower(strings.TrimSpace(string(s))))
	if s == "" {
		return entities.RepairStatusQuoted, nil
	}
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// laterOf keeps timestamps of one record from going backwards.
func laterOf(now, previous time.Time) time.Time {
	if now.Before(previous) {
		return previous
	}
	return now
}

var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
	"image/gif":  "gif",
}

func photoExtension(filename, contentType string) string {
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."); ext != "" {
		return ext
	}
	if ext, ok := photoExtensions[strings.ToLower(contentType)]; ok {
		return ext
	}
	return "jpg"
}
