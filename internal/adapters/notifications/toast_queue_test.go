package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
)

func TestToastQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("drain returns toasts in order and empties the queue", func(t *testing.T) {
		q := NewToastQueue(10)
		q.Notify(ctx, entities.Notification{Title: "first"})
		q.Notify(ctx, entities.Notification{Title: "second", Severity: entities.SeverityDestructive})

		got := q.Drain()
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].Title)
		assert.Equal(t, entities.SeverityDefault, got[0].Severity)
		assert.NotEmpty(t, got[0].ID)
		assert.False(t, got[0].CreatedAt.IsZero())
		assert.Equal(t, entities.SeverityDestructive, got[1].Severity)

		assert.Empty(t, q.Drain())
	})

	t.Run("oldest toast is dropped when full", func(t *testing.T) {
		q := NewToastQueue(2)
		for _, title := range []string{"a", "b", "c"} {
			q.Notify(ctx, entities.Notification{Title: title})
		}

		got := q.Drain()
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].Title)
		assert.Equal(t, "c", got[1].Title)
	})
}

func TestMultiSink(t *testing.T) {
	ctx := context.Background()
	var seen []string

	record := providers.NotificationSinkFunc(func(ctx context.Context, n entities.Notification) {
		seen = append(seen, n.Title)
	})
	q := NewToastQueue(0)

	sink := MultiSink{record, q, nil, NewLogSink()}
	sink.Notify(ctx, entities.Notification{Title: "Booking Confirmed"})

	assert.Equal(t, []string{"Booking Confirmed"}, seen)
	assert.Equal(t, 1, q.Len())
}
