package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"
	"repair_hub/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultTagPrefix = "JOB-"
	MaxTagBatchSize  = 500

	seedMin          = 100
	seedMax          = 999
	maxSeedRedraws   = 20
	zipExportPattern = "Blank_Shop_Tags_%d.zip"
	pdfExportPattern = "Blank_Tags_%d.pdf"
)

// ITagUseCase generates identifiers for blank tags and prints them.
type ITagUseCase interface {
	GenerateBatch(ctx context.Context, session entities.Session, prefix string, count int) ([]entities.JobTag, error)
	Queue(ctx context.Context, session entities.Session) ([]entities.JobTag, error)
	Remove(ctx context.Context, session entities.Session, tagID string) error
	Clear(ctx context.Context, session entities.Session) error
	ExportZIP(ctx context.Context, session entities.Session) (string, []byte, error)
	ExportPDF(ctx context.Context, session entities.Session) (string, []byte, error)
}

type TagUseCase struct {
	workspaces  *WorkspaceRegistry
	exporter    interfaces.ITagExporter
	checkUnique bool
	seed        func() int
	now         func() time.Time
	logger      *zap.Logger
}

var _ ITagUseCase = (*TagUseCase)(nil)

type TagOption func(*TagUseCase)

// WithTagUniquenessCheck redraws the batch seed while any generated
// identifier is already used by a job or a queued tag of the session.
func WithTagUniquenessCheck(enabled bool) TagOption {
	return func(u *TagUseCase) {
		u.checkUnique = enabled
	}
}

func NewTagUseCase(workspaces *WorkspaceRegistry, exporter interfaces.ITagExporter, log *zap.Logger, opts ...TagOption) *TagUseCase {
	u := &TagUseCase{
		workspaces: workspaces,
		exporter:   exporter,
		seed:       func() int { return seedMin + rand.Intn(seedMax-seedMin+1) },
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger.Named(log, "usecase.tags"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GenerateBatch appends count tags to the queue. The i-th identifier is
// prefix + seed + the zero-padded queue position, with one seed per call.
func (u *TagUseCase) GenerateBatch(_ context.Context, session entities.Session, prefix string, count int) ([]entities.JobTag, error) {
	if count < 1 || count > MaxTagBatchSize {
		return nil, ErrInvalidBatchSize
	}
	if prefix == "" {
		prefix = DefaultTagPrefix
	}

	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return nil, err
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	existing := len(ws.tags)
	seed := u.seed()
	if u.checkUnique {
		taken := ws.takenIdentifiersLocked()
		for attempt := 1; attempt < maxSeedRedraws && collides(taken, prefix, seed, existing, count); attempt++ {
			seed = u.seed()
		}
		if collides(taken, prefix, seed, existing, count) {
			u.logger.Warn("tag identifiers collide after redraws", zap.String("prefix", prefix), zap.Int("seed", seed))
		}
	}

	batch := make([]entities.JobTag, 0, count)
	for i := 1; i <= count; i++ {
		value := tagValue(prefix, seed, existing+i)
		batch = append(batch, entities.JobTag{
			ID:    uuid.NewString(),
			Value: value,
			Label: "Job Tag " + value,
		})
	}
	ws.tags = append(ws.tags, batch...)

	out := make([]entities.JobTag, len(batch))
	copy(out, batch)
	return out, nil
}

func (u *TagUseCase) Queue(_ context.Context, session entities.Session) ([]entities.JobTag, error) {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	out := make([]entities.JobTag, len(ws.tags))
	copy(out, ws.tags)
	return out, nil
}

func (u *TagUseCase) Remove(_ context.Context, session entities.Session, tagID string) error {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	for i := range ws.tags {
		if ws.tags[i].ID == tagID {
			ws.tags = append(ws.tags[:i:i], ws.tags[i+1:]...)
			return nil
		}
	}
	return ErrTagNotFound
}

func (u *TagUseCase) Clear(_ context.Context, session entities.Session) error {
	ws, err := u.workspaces.Get(session.ID)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	ws.tags = nil
	ws.mu.Unlock()
	return nil
}

func (u *TagUseCase) ExportZIP(ctx context.Context, session entities.Session) (string, []byte, error) {
	return u.export(ctx, session, zipExportPattern, u.exporter.ExportZIP)
}

func (u *TagUseCase) ExportPDF(ctx context.Context, session entities.Session) (string, []byte, error) {
	return u.export(ctx, session, pdfExportPattern, u.exporter.ExportPDF)
}

func (u *TagUseCase) export(ctx context.Context, session entities.Session, pattern string, render func([]entities.JobTag) ([]byte, error)) (string, []byte, error) {
	tags, err := u.Queue(ctx, session)
	if err != nil {
		return "", nil, err
	}
	if len(tags) == 0 {
		return "", nil, ErrEmptyTagQueue
	}
	data, err := render(tags)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf(pattern, u.now().UnixMilli()), data, nil
}

func tagValue(prefix string, seed, position int) string {
	return fmt.Sprintf("%s%d%03d", prefix, seed, position)
}

func collides(taken map[string]struct{}, prefix string, seed, existing, count int) bool {
	for i := 1; i <= count; i++ {
		if _, ok := taken[tagValue(prefix, seed, existing+i)]; ok {
			return true
		}
	}
	return false
}

// takenIdentifiersLocked expects mu to be held.
func (w *Workspace) takenIdentifiersLocked() map[string]struct{} {
	taken := make(map[string]struct{}, len(w.jobs)+len(w.tags))
	for _, j := range w.jobs {
		taken[j.ID] = struct{}{}
	}
	for _, t := range w.tags {
		taken[t.Value] = struct{}{}
	}
	return taken
}
