package mirror

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore/memory"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seed(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "reservations/a", map[string]interface{}{"date": "2024-03-05", "name": "Ali"}))
	require.NoError(t, store.Set(ctx, "reservations/b", map[string]interface{}{"date": "2024-03-05", "name": "Omar", "confirmed": true}))
	require.NoError(t, store.Set(ctx, "dateLimits/2024-03-05", 2))
	require.NoError(t, store.Set(ctx, "nonWorkingDays/2024-03-08", true))
}

func startMirror(t *testing.T, store *memory.Store) *Mirror {
	t.Helper()
	m := New(store, nopLogger{})
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.WaitReady(ctx))
	return m
}

func TestMirror_InitialSnapshot(t *testing.T) {
	store := memory.NewStore(nopLogger{})
	defer store.Close()
	seed(t, store)

	m := startMirror(t, store)

	snapshot, err := m.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.Bookings, 2)
	assert.Equal(t, 2, snapshot.LimitFor("2024-03-05"))
	assert.True(t, snapshot.IsNonWorking("2024-03-08"))
}

func TestMirror_FollowsChanges(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nopLogger{})
	defer store.Close()
	seed(t, store)

	m := startMirror(t, store)
	changes, stop := m.Watch(8)
	defer stop()

	require.NoError(t, store.Delete(ctx, "nonWorkingDays/2024-03-08"))

	select {
	case change := <-changes:
		assert.Equal(t, domain.CollectionNonWorkingDays, change.Collection)
	case <-time.After(time.Second):
		t.Fatal("no change notification")
	}

	assert.Eventually(t, func() bool {
		snapshot, err := m.Snapshot(ctx)
		return err == nil && !snapshot.IsNonWorking("2024-03-08")
	}, time.Second, 5*time.Millisecond)

	_, err := store.Push(ctx, domain.CollectionReservations, map[string]interface{}{"date": "2024-03-06", "name": "New"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		bookings, err := m.Bookings(ctx)
		return err == nil && len(bookings) == 3
	}, time.Second, 5*time.Millisecond)
}

func TestMirror_SnapshotIsACopy(t *testing.T) {
	store := memory.NewStore(nopLogger{})
	defer store.Close()
	seed(t, store)

	m := startMirror(t, store)

	snapshot, err := m.Snapshot(context.Background())
	require.NoError(t, err)
	snapshot.Limits["2024-03-05"] = 7
	snapshot.Bookings[0].Name = "changed"

	again, err := m.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, again.LimitFor("2024-03-05"))
	assert.NotEqual(t, "changed", again.Bookings[0].Name)
}

func TestMirror_NotStarted(t *testing.T) {
	store := memory.NewStore(nopLogger{})
	defer store.Close()

	m := New(store, nopLogger{})
	_, err := m.Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestMirror_CloseClosesWatchers(t *testing.T) {
	store := memory.NewStore(nopLogger{})
	defer store.Close()

	m := New(store, nopLogger{})
	require.NoError(t, m.Start(context.Background()))
	changes, stop := m.Watch(1)

	m.Close()
	stop()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, m.Start(context.Background()), ErrClosed)
}

type failingStore struct {
	failOn string
}

func (f failingStore) Subscribe(ctx context.Context, collection string, fn docstore.SnapshotFunc) (docstore.Unsubscribe, error) {
	if collection == f.failOn {
		return nil, errors.New("boom")
	}
	return func() {}, nil
}

func TestMirror_StartFails(t *testing.T) {
	m := New(failingStore{failOn: domain.CollectionDateLimits}, nopLogger{})

	err := m.Start(context.Background())
	assert.ErrorIs(t, err, ErrSubscribe)
}

func TestReader_Snapshot(t *testing.T) {
	store := memory.NewStore(nopLogger{})
	defer store.Close()
	seed(t, store)
	require.NoError(t, store.Set(context.Background(), "reservations/broken", "not an object"))

	r := NewReader(store, nopLogger{})
	snapshot, err := r.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Len(t, snapshot.Bookings, 2)
	assert.Equal(t, 2, snapshot.LimitFor("2024-03-05"))
	assert.Equal(t, domain.DefaultDateLimit, snapshot.LimitFor("2024-03-06"))
	assert.True(t, snapshot.IsNonWorking("2024-03-08"))
}
