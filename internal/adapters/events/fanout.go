package events

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
)

// subscriberBuffer is the per-subscriber queue depth; slow readers drop events beyond it
const subscriberBuffer = 100

// fanout tracks local subscriber channels per bus channel
type fanout struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan *entities.BookingEvent]struct{}
}

func newFanout() *fanout {
	return &fanout{subscribers: make(map[string]map[chan *entities.BookingEvent]struct{})}
}

// add registers a new subscriber and reports whether it is the channel's first
func (f *fanout) add(channel string) (chan *entities.BookingEvent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs, ok := f.subscribers[channel]
	if !ok {
		subs = make(map[chan *entities.BookingEvent]struct{})
		f.subscribers[channel] = subs
	}
	ch := make(chan *entities.BookingEvent, subscriberBuffer)
	subs[ch] = struct{}{}
	return ch, !ok
}

// remove closes one subscriber and reports whether the channel is now empty
func (f *fanout) remove(channel string, ch chan *entities.BookingEvent) (removed, empty bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs, ok := f.subscribers[channel]
	if !ok {
		return false, false
	}
	if _, ok := subs[ch]; !ok {
		return false, false
	}
	delete(subs, ch)
	close(ch)

	if len(subs) == 0 {
		delete(f.subscribers, channel)
		return true, true
	}
	return true, false
}

// drop closes every subscriber of channel
func (f *fanout) drop(channel string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.subscribers[channel] {
		close(ch)
	}
	delete(f.subscribers, channel)
}

func (f *fanout) channels() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]string, 0, len(f.subscribers))
	for channel := range f.subscribers {
		out = append(out, channel)
	}
	return out
}

func (f *fanout) count(channel string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers[channel])
}

func (f *fanout) broadcast(channel string, event *entities.BookingEvent) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for ch := range f.subscribers[channel] {
		select {
		case ch <- event:
		default:
			log.Warn().Str("channel", channel).Str("event_id", event.ID).Msg("Subscriber channel full, skipping event")
		}
	}
}
