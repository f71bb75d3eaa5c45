package docstore

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHub_InitialEmissionAndNotify(t *testing.T) {
	var version atomic.Int64
	hub := NewHub(func(ctx context.Context, collection string) (Snapshot, error) {
		return Snapshot{"v": []byte{byte('0' + version.Load())}}, nil
	}, nopLogger{})
	defer hub.Close()

	var got atomic.Value
	_, err := hub.Subscribe(context.Background(), "c", func(s Snapshot) {
		got.Store(string(s["v"]))
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return got.Load() == "0" }, time.Second, 5*time.Millisecond)

	version.Store(3)
	hub.Notify("c")
	assert.Eventually(t, func() bool { return got.Load() == "3" }, time.Second, 5*time.Millisecond)
}

func TestHub_LoadErrorKeepsSubscription(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	var calls atomic.Int64

	hub := NewHub(func(ctx context.Context, collection string) (Snapshot, error) {
		if fail.Load() {
			return nil, errors.New("boom")
		}
		return Snapshot{}, nil
	}, nopLogger{})
	defer hub.Close()

	_, err := hub.Subscribe(context.Background(), "c", func(Snapshot) { calls.Add(1) })
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, calls.Load())

	fail.Store(false)
	hub.NotifyAll()
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestHub_CloseStopsSubscribers(t *testing.T) {
	hub := NewHub(func(ctx context.Context, collection string) (Snapshot, error) {
		return Snapshot{}, nil
	}, nopLogger{})

	for i := 0; i < 5; i++ {
		_, err := hub.Subscribe(context.Background(), "c", func(Snapshot) {})
		require.NoError(t, err)
	}

	hub.Close()
	assert.Zero(t, hub.Subscribers("c"))

	_, err := hub.Subscribe(context.Background(), "c", func(Snapshot) {})
	assert.ErrorIs(t, err, ErrClosed)
}
