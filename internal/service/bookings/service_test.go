package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore/memory"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/mirror"
	bookingRepo "github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePublisher struct {
	mu        sync.Mutex
	confirmed []string
	err       error
}

func (p *fakePublisher) PublishBookingConfirmed(_ context.Context, b *domain.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirmed = append(p.confirmed, b.ID)
	return p.err
}

type countingMetrics struct {
	confirmed int
}

func (m *countingMetrics) IncBookingConfirmed() { m.confirmed++ }

type fixture struct {
	svc       *Service
	repo      *bookingRepo.Repository
	store     *memory.Store
	publisher *fakePublisher
	metrics   *countingMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore(nopLogger{})
	t.Cleanup(func() { _ = store.Close() })

	f := &fixture{
		repo:      bookingRepo.NewRepository(store, nopLogger{}),
		store:     store,
		publisher: &fakePublisher{},
		metrics:   &countingMetrics{},
	}
	f.svc = NewService(f.repo, mirror.NewReader(store, nopLogger{}), f.publisher, f.metrics, nopLogger{})
	return f
}

func (f *fixture) create(t *testing.T, b domain.Booking) string {
	t.Helper()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	}
	created, err := f.repo.Create(context.Background(), &b)
	require.NoError(t, err)
	return created.ID
}

func TestService_Confirm(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.create(t, domain.Booking{Date: "2024-03-05", Name: "Ali"})

	resp, err := f.svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
	assert.Equal(t, []string{id}, f.publisher.confirmed)
	assert.Equal(t, 1, f.metrics.confirmed)

	stored, err := f.repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, stored.Confirmed)
}

func TestService_ConfirmIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.create(t, domain.Booking{Date: "2024-03-05", Name: "Ali"})

	first, err := f.svc.Confirm(ctx, id)
	require.NoError(t, err)
	second, err := f.svc.Confirm(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, f.publisher.confirmed, 1)
	assert.Equal(t, 1, f.metrics.confirmed)
}

func TestService_ConfirmSurvivesPublisherFailure(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker down")
	id := f.create(t, domain.Booking{Date: "2024-03-05", Name: "Ali"})

	resp, err := f.svc.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
}

func TestService_ConfirmNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.Confirm(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pending := f.create(t, domain.Booking{Date: "2024-03-05", Name: "Pending"})
	confirmed := f.create(t, domain.Booking{Date: "2024-03-05", Name: "Confirmed", Confirmed: true})

	require.NoError(t, f.svc.Delete(ctx, pending))
	_, err := f.repo.GetByID(ctx, pending)
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)

	assert.ErrorIs(t, f.svc.Delete(ctx, confirmed), ErrCannotDelete)
	_, err = f.repo.GetByID(ctx, confirmed)
	assert.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, pending), ErrBookingNotFound)
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, domain.Booking{Date: "2024-03-05", Name: "ali hassan", Phone: "0551234567"})
	f.create(t, domain.Booking{Date: "2024-03-06", Name: "Omar", Phone: "0660000000"})

	resp, err := f.svc.Search(ctx, "ALI")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "ali hassan", resp.Bookings[0].Name)

	resp, err = f.svc.Search(ctx, "0660")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Omar", resp.Bookings[0].Name)

	resp, err = f.svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.NotNil(t, resp.Bookings)
}

func TestService_ListPendingAndStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	confirmed := gofakeit.IntRange(1, 5)
	pending := gofakeit.IntRange(1, 5)
	for i := 0; i < confirmed; i++ {
		f.create(t, domain.Booking{Date: "2024-03-05", Name: gofakeit.Name(), Confirmed: true})
	}
	for i := 0; i < pending; i++ {
		f.create(t, domain.Booking{Date: "2024-03-06", Name: gofakeit.Name()})
	}
	require.NoError(t, f.store.Set(ctx, "nonWorkingDays/2024-03-08", true))
	require.NoError(t, f.store.Set(ctx, "nonWorkingDays/2024-03-09", true))

	list, err := f.svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, pending, list.Total)
	for _, b := range list.Bookings {
		assert.False(t, b.Confirmed)
	}

	stats, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, confirmed+pending, stats.Total)
	assert.Equal(t, confirmed, stats.Confirmed)
	assert.Equal(t, pending, stats.Pending)
	assert.Equal(t, stats.Total, stats.Confirmed+stats.Pending)
	assert.Equal(t, 2, stats.NonWorkingDays)
}
