package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// DefaultQueueCapacity bounds the toasts a session keeps before the client drains them
const DefaultQueueCapacity = 50

// ToastQueue buffers a session's toasts until the client fetches them.
// When full, the oldest toast is discarded.
type ToastQueue struct {
	mu       sync.Mutex
	items    []entities.Notification
	capacity int
	now      func() time.Time
}

// NewToastQueue creates a queue holding at most capacity toasts
func NewToastQueue(capacity int) *ToastQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &ToastQueue{
		capacity: capacity,
		now:      time.Now,
	}
}

// Notify enqueues a toast, filling in its ID, severity and timestamp when missing
func (q *ToastQueue) Notify(ctx context.Context, n entities.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Severity == "" {
		n.Severity = entities.SeverityDefault
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = q.now()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == q.capacity {
		q.items = q.items[1:]
	}
	q.items = append(q.items, n)
}

// Drain returns every queued toast in arrival order and empties the queue
func (q *ToastQueue) Drain() []entities.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = nil
	if out == nil {
		return []entities.Notification{}
	}
	return out
}

// Len returns the number of queued toasts
func (q *ToastQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
