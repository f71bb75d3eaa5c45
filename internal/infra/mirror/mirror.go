package mirror

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueCalendar/internal/infra/storage/schedule"
)

// Change уведомление о новом снапшоте коллекции
type Change struct {
	Collection string
	At         time.Time
}

// Mirror держит живые подписки на reservations, dateLimits и nonWorkingDays
// и хранит последнюю копию каждой коллекции. Каждый снапшот целиком заменяет
// предыдущий.
type Mirror struct {
	store  Subscriber
	logger Logger
	now    func() time.Time

	mu         sync.RWMutex
	bookings   []domain.Booking
	limits     map[string]int
	nonWorking map[string]struct{}
	loaded     map[string]bool
	started    bool
	closed     bool
	ready      chan struct{}

	unsubscribes []docstore.Unsubscribe
	watchers     map[uint64]chan Change
	nextWatcher  uint64
}

// New создает зеркало. Подписки открываются в Start.
func New(store Subscriber, logger Logger) *Mirror {
	return &Mirror{
		store:      store,
		logger:     logger,
		now:        time.Now,
		bookings:   make([]domain.Booking, 0),
		limits:     make(map[string]int),
		nonWorking: make(map[string]struct{}),
		loaded:     make(map[string]bool),
		ready:      make(chan struct{}),
		watchers:   make(map[uint64]chan Change),
	}
}

// Start открывает три подписки. Они живут до Close или отмены ctx.
func (m *Mirror) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = true
	m.mu.Unlock()

	handlers := map[string]docstore.SnapshotFunc{
		domain.CollectionReservations:   m.onReservations,
		domain.CollectionDateLimits:     m.onDateLimits,
		domain.CollectionNonWorkingDays: m.onNonWorkingDays,
	}

	for _, collection := range domain.Collections {
		unsubscribe, err := m.store.Subscribe(ctx, collection, handlers[collection])
		if err != nil {
			m.Close()
			return fmt.Errorf("%w: %s: %v", ErrSubscribe, collection, err)
		}
		m.mu.Lock()
		m.unsubscribes = append(m.unsubscribes, unsubscribe)
		m.mu.Unlock()
	}

	m.logger.Info("Mirror: subscribed to %d collections", len(domain.Collections))
	return nil
}

// WaitReady блокируется, пока каждая коллекция не придёт хотя бы один раз
func (m *Mirror) WaitReady(ctx context.Context) error {
	m.mu.RLock()
	started := m.started
	m.mu.RUnlock()
	if !started {
		return ErrNotStarted
	}

	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot возвращает копию текущего состояния
func (m *Mirror) Snapshot(ctx context.Context) (*domain.ScheduleSnapshot, error) {
	if err := m.WaitReady(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := domain.NewScheduleSnapshot()
	snapshot.Bookings = make([]domain.Booking, len(m.bookings))
	copy(snapshot.Bookings, m.bookings)
	for date, limit := range m.limits {
		snapshot.Limits[date] = limit
	}
	for date := range m.nonWorking {
		snapshot.NonWorkingDays[date] = struct{}{}
	}
	return snapshot, nil
}

// Bookings возвращает копию списка бронирований
func (m *Mirror) Bookings(ctx context.Context) ([]domain.Booking, error) {
	if err := m.WaitReady(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Booking, len(m.bookings))
	copy(result, m.bookings)
	return result, nil
}

// Watch регистрирует наблюдателя. Медленный наблюдатель теряет уведомления,
// а не блокирует зеркало. Второе значение отменяет наблюдение.
func (m *Mirror) Watch(buffer int) (<-chan Change, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Change, buffer)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := m.nextWatcher
	m.nextWatcher++
	m.watchers[id] = ch
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if c, ok := m.watchers[id]; ok {
				delete(m.watchers, id)
				close(c)
			}
		})
	}
}

// Close освобождает подписки и закрывает каналы наблюдателей
func (m *Mirror) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	unsubscribes := m.unsubscribes
	m.unsubscribes = nil
	for id, ch := range m.watchers {
		close(ch)
		delete(m.watchers, id)
	}
	m.mu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	m.logger.Info("Mirror: closed")
}

func (m *Mirror) onReservations(snapshot docstore.Snapshot) {
	bookings, errs := booking.DecodeSnapshot(snapshot)
	for _, err := range errs {
		m.logger.Warn("Mirror: skipping reservation: %v", err)
	}

	m.apply(domain.CollectionReservations, func() {
		m.bookings = bookings
	})
}

func (m *Mirror) onDateLimits(snapshot docstore.Snapshot) {
	limits, errs := schedule.DecodeLimits(snapshot)
	for _, err := range errs {
		m.logger.Warn("Mirror: skipping date limit: %v", err)
	}

	m.apply(domain.CollectionDateLimits, func() {
		m.limits = limits
	})
}

func (m *Mirror) onNonWorkingDays(snapshot docstore.Snapshot) {
	days := schedule.DecodeNonWorkingDays(snapshot)

	m.apply(domain.CollectionNonWorkingDays, func() {
		m.nonWorking = days
	})
}

// apply заменяет копию коллекции и рассылает уведомление
func (m *Mirror) apply(collection string, replace func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	replace()

	if !m.loaded[collection] {
		m.loaded[collection] = true
		if len(m.loaded) == len(domain.Collections) {
			close(m.ready)
		}
	}

	change := Change{Collection: collection, At: m.now()}
	for _, ch := range m.watchers {
		select {
		case ch <- change:
		default:
		}
	}
}
