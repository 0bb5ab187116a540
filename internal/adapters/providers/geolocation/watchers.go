package geolocation

import (
	"context"
	"sync"

	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
)

// watchers fans pushed positions out to every open Watch channel
type watchers struct {
	mu   sync.Mutex
	next int
	subs map[int]chan providers.Coordinates
}

func (w *watchers) open(ctx context.Context) <-chan providers.Coordinates {
	w.mu.Lock()
	if w.subs == nil {
		w.subs = make(map[int]chan providers.Coordinates)
	}
	id := w.next
	w.next++
	ch := make(chan providers.Coordinates, 16)
	w.subs[id] = ch
	w.mu.Unlock()

	go func() {
		<-ctx.Done()
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(sub)
		}
	}()
	return ch
}

func (w *watchers) send(coords providers.Coordinates) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		select {
		case ch <- coords:
		default:
		}
	}
}
