package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"
	"repair_hub/pkg/logger"

	"go.uber.org/zap"
)

// ScanResult is the job opened for a decoded tag.
type ScanResult struct {
	Job     entities.RepairJob
	IsNew   bool
	Payload string
}

// IScanUseCase turns a scanned or typed tag into an opened repair job.
type IScanUseCase interface {
	Scan(ctx context.Context, session entities.Session, source interfaces.IFrameSource) (ScanResult, error)
	Lookup(ctx context.Context, session entities.Session, manualID string) (ScanResult, error)
}

type ScanUseCase struct {
	decoder interfaces.IQRDecoder
	jobs    IRepairJobUseCase
	logger  *zap.Logger
}

var _ IScanUseCase = (*ScanUseCase)(nil)

func NewScanUseCase(decoder interfaces.IQRDecoder, jobs IRepairJobUseCase, log *zap.Logger) *ScanUseCase {
	return &ScanUseCase{
		decoder: decoder,
		jobs:    jobs,
		logger:  logger.Named(log, "usecase.scan"),
	}
}

// Scan reads frames until one decodes. The source is released on every
// return path, and before the job lookup once a tag is found.
func (u *ScanUseCase) Scan(ctx context.Context, session entities.Session, source interfaces.IFrameSource) (ScanResult, error) {
	if err := source.Acquire(ctx); err != nil {
		source.Release()
		return ScanResult{}, fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}
	defer source.Release()

	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return ScanResult{}, err
		}
		frame, err := source.NextFrame(ctx)
		if errors.Is(err, io.EOF) {
			u.logger.Debug("no tag in frames", zap.Int("frames", frames))
			return ScanResult{}, ErrNoTagDetected
		}
		if err != nil {
			return ScanResult{}, err
		}
		frames++

		payload, err := u.decoder.Decode(frame)
		if err != nil || payload == "" {
			continue
		}
		source.Release()
		return u.open(ctx, session, payload)
	}
}

// Lookup opens a job from a typed tag identifier.
func (u *ScanUseCase) Lookup(ctx context.Context, session entities.Session, manualID string) (ScanResult, error) {
	manualID = strings.TrimSpace(manualID)
	if manualID == "" {
		return ScanResult{}, ErrInvalidJobID
	}
	return u.open(ctx, session, manualID)
}

func (u *ScanUseCase) open(ctx context.Context, session entities.Session, payload string) (ScanResult, error) {
	job, isNew, err := u.jobs.Open(ctx, session, payload)
	if err != nil {
		return ScanResult{}, err
	}
	return ScanResult{Job: job, IsNew: isNew, Payload: payload}, nil
}
