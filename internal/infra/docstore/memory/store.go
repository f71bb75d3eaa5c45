package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
)

// Store in-process реализация docstore.Store.
// Используется для разработки и как тестовый двойник.
type Store struct {
	mu     sync.RWMutex
	data   map[string]docstore.Snapshot
	hub    *docstore.Hub
	closed bool
}

// NewStore создает пустое хранилище
func NewStore(logger docstore.Logger) *Store {
	s := &Store{
		data: make(map[string]docstore.Snapshot),
	}
	s.hub = docstore.NewHub(s.GetCollection, logger)
	return s
}

// Subscribe подписывается на изменения коллекции
func (s *Store) Subscribe(ctx context.Context, collection string, onSnapshot docstore.SnapshotFunc) (docstore.Unsubscribe, error) {
	return s.hub.Subscribe(ctx, collection, onSnapshot)
}

// Get читает один документ
func (s *Store) Get(ctx context.Context, path string) (json.RawMessage, error) {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[collection][key]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return clone(doc), nil
}

// GetCollection читает всю коллекцию
func (s *Store) GetCollection(ctx context.Context, collection string) (docstore.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data[collection] == nil {
		return docstore.Snapshot{}, nil
	}
	return s.data[collection].Clone(), nil
}

// Set перезаписывает документ
func (s *Store) Set(ctx context.Context, path string, value interface{}) error {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return err
	}
	doc, err := docstore.Encode(value)
	if err != nil {
		return err
	}

	if err := s.write(ctx, func() error {
		if s.data[collection] == nil {
			s.data[collection] = make(docstore.Snapshot)
		}
		s.data[collection][key] = clone(doc)
		return nil
	}); err != nil {
		return err
	}

	s.hub.Notify(collection)
	return nil
}

// Update сливает поля в существующий документ
func (s *Store) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return err
	}

	if err := s.write(ctx, func() error {
		doc, ok := s.data[collection][key]
		if !ok {
			return docstore.ErrNotFound
		}
		merged, err := docstore.MergeFields(doc, fields)
		if err != nil {
			return err
		}
		s.data[collection][key] = merged
		return nil
	}); err != nil {
		return err
	}

	s.hub.Notify(collection)
	return nil
}

// Delete удаляет документ. Отсутствующий документ не считается ошибкой.
func (s *Store) Delete(ctx context.Context, path string) error {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return err
	}

	existed := false
	if err := s.write(ctx, func() error {
		if _, ok := s.data[collection][key]; ok {
			delete(s.data[collection], key)
			existed = true
		}
		return nil
	}); err != nil {
		return err
	}

	if existed {
		s.hub.Notify(collection)
	}
	return nil
}

// Push сохраняет значение под новым ключом
func (s *Store) Push(ctx context.Context, collection string, value interface{}) (string, error) {
	key, err := docstore.NewKey()
	if err != nil {
		return "", err
	}
	if err := s.Set(ctx, docstore.Path(collection, key), value); err != nil {
		return "", err
	}
	return key, nil
}

// Close закрывает все подписки
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.hub.Close()
	return nil
}

func (s *Store) write(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return docstore.ErrClosed
	}
	return fn()
}

func clone(doc json.RawMessage) json.RawMessage {
	cp := make(json.RawMessage, len(doc))
	copy(cp, doc)
	return cp
}
