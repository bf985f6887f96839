package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribersSynchronously(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventProfileModerated, func(_ context.Context, e Event) error {
		seen = append(seen, e.EntityID)
		return nil
	})
	d.Subscribe(EventProfileModerated, func(_ context.Context, e Event) error {
		seen = append(seen, e.EntityID+"-again")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventProfileModerated, EntityID: "p1"})
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p1-again"}, seen)
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventReportAdjudicated, func(context.Context, Event) error {
		return errors.New("subscriber broken")
	})
	d.Subscribe(EventReportAdjudicated, func(context.Context, Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventReportAdjudicated, EntityID: "r1"})
	require.NoError(t, err)
	require.True(t, reached, "later handlers run despite earlier failures")
}

func TestDispatcherIgnoresUnknownEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: "unknown"}))
}
