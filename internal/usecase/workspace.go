package usecase

import (
	"sync"

	"repair_hub/internal/domain/entities"
)

// Workspace is the in-memory, authoritative view of one session's data.
//
// Jobs and stock are kept most recent first. Every read and write goes
// through mu so mutations never interleave and reads observe the latest one.
type Workspace struct {
	mu    sync.Mutex
	jobs  []entities.RepairJob
	stock []entities.StockItem
	tags  []entities.JobTag
	inbox *NotificationInbox
}

func newWorkspace() *Workspace {
	return &Workspace{inbox: NewNotificationInbox()}
}

func (w *Workspace) Inbox() *NotificationInbox {
	return w.inbox
}

// jobIndex and stockIndex expect mu to be held.
func (w *Workspace) jobIndex(id string) int {
	for i := range w.jobs {
		if w.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (w *Workspace) stockIndex(id string) int {
	for i := range w.stock {
		if w.stock[i].ID == id {
			return i
		}
	}
	return -1
}

// deductLocked removes quantity units from a stock item. mu must be held.
func (w *Workspace) deductLocked(itemID string, quantity int) (entities.StockItem, error) {
	if quantity <= 0 {
		return entities.StockItem{}, ErrInvalidQuantity
	}
	idx := w.stockIndex(itemID)
	if idx < 0 {
		return entities.StockItem{}, ErrStockItemNotFound
	}
	if quantity > w.stock[idx].Quantity {
		return entities.StockItem{}, ErrInsufficientStock
	}
	w.stock[idx].Quantity -= quantity
	return w.stock[idx], nil
}

func (w *Workspace) snapshotJobs() []entities.RepairJob {
	out := make([]entities.RepairJob, len(w.jobs))
	for i := range w.jobs {
		out[i] = w.jobs[i].Clone()
	}
	return out
}

func (w *Workspace) snapshotStock() []entities.StockItem {
	out := make([]entities.StockItem, len(w.stock))
	copy(out, w.stock)
	return out
}

// WorkspaceRegistry maps session ids to their workspace.
type WorkspaceRegistry struct {
	mu     sync.RWMutex
	spaces map[string]*Workspace
}

func NewWorkspaceRegistry() *WorkspaceRegistry {
	return &WorkspaceRegistry{spaces: make(map[string]*Workspace)}
}

// Open returns the workspace of sessionID, creating an empty one if needed.
func (r *WorkspaceRegistry) Open(sessionID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.spaces[sessionID]
	if !ok {
		ws = newWorkspace()
		r.spaces[sessionID] = ws
	}
	return ws
}

// Get returns ErrUnauthorized when the session has no workspace, which is
// the case after logout or expiry.
func (r *WorkspaceRegistry) Get(sessionID string) (*Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.spaces[sessionID]
	if !ok {
		return nil, ErrUnauthorized
	}
	return ws, nil
}

func (r *WorkspaceRegistry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.spaces, sessionID)
}

func (r *WorkspaceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.spaces)
}
