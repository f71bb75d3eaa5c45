package docstore

import (
	"context"
	"sync"
)

// Loader reads the current snapshot of a collection
type Loader func(ctx context.Context, collection string) (Snapshot, error)

// Hub fans change notifications out to collection subscribers.
//
// Every subscriber owns a goroutine and a notification channel of capacity 1:
// bursts of changes coalesce into a single reload, and the reloaded snapshot is
// always the latest one. A slow callback never blocks writers.
type Hub struct {
	load   Loader
	logger Logger

	mu     sync.Mutex
	subs   map[string]map[uint64]*subscriber
	nextID uint64
	closed bool
	wg     sync.WaitGroup
}

type subscriber struct {
	notify chan struct{}
	cancel context.CancelFunc
}

// NewHub creates a hub that reloads snapshots with load
func NewHub(load Loader, logger Logger) *Hub {
	return &Hub{
		load:   load,
		logger: logger,
		subs:   make(map[string]map[uint64]*subscriber),
	}
}

// Subscribe registers onSnapshot for collection and schedules the initial emission
func (h *Hub) Subscribe(ctx context.Context, collection string, onSnapshot SnapshotFunc) (Unsubscribe, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrClosed
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscriber{
		notify: make(chan struct{}, 1),
		cancel: cancel,
	}
	sub.notify <- struct{}{}

	id := h.nextID
	h.nextID++
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[uint64]*subscriber)
	}
	h.subs[collection][id] = sub
	h.wg.Add(1)
	h.mu.Unlock()

	go h.run(subCtx, collection, id, sub, onSnapshot)

	var once sync.Once
	return func() {
		once.Do(cancel)
	}, nil
}

func (h *Hub) run(ctx context.Context, collection string, id uint64, sub *subscriber, onSnapshot SnapshotFunc) {
	defer h.wg.Done()
	defer h.remove(collection, id)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.notify:
			snapshot, err := h.load(ctx, collection)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				h.logger.Error("docstore: reload of %s failed: %v", collection, err)
				continue
			}
			onSnapshot(snapshot)
		}
	}
}

func (h *Hub) remove(collection string, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.subs[collection]; ok {
		delete(subs, id)
		if len(subs) == 0 {
			delete(h.subs, collection)
		}
	}
}

// Notify schedules a reload for every subscriber of collection
func (h *Hub) Notify(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[collection] {
		select {
		case sub.notify <- struct{}{}:
		default:
		}
	}
}

// NotifyAll schedules a reload for every subscriber, e.g. after a reconnect
func (h *Hub) NotifyAll() {
	h.mu.Lock()
	collections := make([]string, 0, len(h.subs))
	for c := range h.subs {
		collections = append(collections, c)
	}
	h.mu.Unlock()

	for _, c := range collections {
		h.Notify(c)
	}
}

// Subscribers returns the number of live subscriptions on collection
func (h *Hub) Subscribers(collection string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[collection])
}

// Close cancels every subscription and waits for their goroutines
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	for _, subs := range h.subs {
		for _, sub := range subs {
			sub.cancel()
		}
	}
	h.mu.Unlock()

	h.wg.Wait()
}
