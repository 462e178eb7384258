package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"repair_hub/internal/domain/entities"
	"repair_hub/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reconciler pushes already-applied local changes to the backend.
//
// Writes run in the background and are never rolled back locally. Writes to
// the same record are applied one at a time in dispatch order, so the last
// local snapshot is also the last one written. A failed write is logged and
// published to the session inbox.
type Reconciler struct {
	workspaces *WorkspaceRegistry
	logger     *zap.Logger
	now        func() time.Time
	wg         sync.WaitGroup

	mu    sync.Mutex
	lanes map[laneKey][]pendingWrite
}

type laneKey struct {
	sessionID string
	entity    string
	recordID  string
}

type pendingWrite struct {
	ctx       context.Context
	session   entities.Session
	operation string
	write     func(ctx context.Context) error
}

func NewReconciler(workspaces *WorkspaceRegistry, log *zap.Logger) *Reconciler {
	return &Reconciler{
		workspaces: workspaces,
		logger:     logger.Named(log, "reconciler"),
		now:        func() time.Time { return time.Now().UTC() },
		lanes:      make(map[laneKey][]pendingWrite),
	}
}

// Dispatch queues write behind earlier writes to the same record and runs it
// detached from ctx cancellation. It never blocks, so callers may hold the
// workspace lock to keep dispatch order equal to mutation order.
func (r *Reconciler) Dispatch(ctx context.Context, session entities.Session, entity, recordID, operation string, write func(ctx context.Context) error) {
	key := laneKey{sessionID: session.ID, entity: entity, recordID: recordID}
	pending := pendingWrite{
		ctx:       context.WithoutCancel(ctx),
		session:   session,
		operation: operation,
		write:     write,
	}

	r.wg.Add(1)
	r.mu.Lock()
	queue, busy := r.lanes[key]
	r.lanes[key] = append(queue, pending)
	r.mu.Unlock()
	if busy {
		return
	}
	go r.drain(key)
}

// drain runs the writes queued for key until the lane is empty.
func (r *Reconciler) drain(key laneKey) {
	for {
		r.mu.Lock()
		queue := r.lanes[key]
		if len(queue) == 0 {
			delete(r.lanes, key)
			r.mu.Unlock()
			return
		}
		next := queue[0]
		r.lanes[key] = queue[1:]
		r.mu.Unlock()

		if err := next.write(next.ctx); err != nil {
			r.fail(next.session, key.entity, key.recordID, next.operation, err)
		}
		r.wg.Done()
	}
}

// Wait blocks until every dispatched write has finished.
func (r *Reconciler) Wait() {
	r.wg.Wait()
}

func (r *Reconciler) fail(session entities.Session, entity, recordID, operation string, err error) {
	err = fmt.Errorf("%w: %s %s %s: %v", ErrBackend, operation, entity, recordID, err)
	r.logger.Warn("backend write failed",
		zap.String("session_id", session.ID),
		zap.String("firm_id", session.FirmID),
		zap.String("entity", entity),
		zap.String("record_id", recordID),
		zap.String("operation", operation),
		zap.Error(err),
	)
	ws, wsErr := r.workspaces.Get(session.ID)
	if wsErr != nil {
		// Session ended before the write came back.
		return
	}
	ws.Inbox().Publish(entities.Notification{
		ID:         uuid.NewString(),
		Entity:     entity,
		RecordID:   recordID,
		Operation:  operation,
		Message:    err.Error(),
		OccurredAt: r.now(),
	})
}
