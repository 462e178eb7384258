package usecase

import (
	"sync"

	"repair_hub/internal/domain/entities"
)

// NotificationInbox buffers reconciliation failures for one session until the
// UI drains them.
type NotificationInbox struct {
	mu    sync.Mutex
	items []entities.Notification
	limit int
}

const defaultInboxLimit = 100

func NewNotificationInbox() *NotificationInbox {
	return &NotificationInbox{limit: defaultInboxLimit}
}

// Publish appends n, dropping the oldest entry once the inbox is full.
func (b *NotificationInbox) Publish(n entities.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.limit > 0 && len(b.items) >= b.limit {
		b.items = b.items[1:]
	}
	b.items = append(b.items, n)
}

// Drain returns every pending notification in publish order and empties the inbox.
func (b *NotificationInbox) Drain() []entities.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.items
	b.items = nil
	if out == nil {
		return []entities.Notification{}
	}
	return out
}

func (b *NotificationInbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
