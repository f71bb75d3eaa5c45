package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const updateRetries = 5

// Store реализация docstore.Store поверх Redis.
// Каждая коллекция - отдельный hash, изменения рассылаются через pub/sub.
type Store struct {
	client *redis.Client
	prefix string
	logger Logger
	hub    *docstore.Hub

	subOnce sync.Once
	subErr  error
	pubsub  *redis.PubSub
	done    chan struct{}
}

// NewStore создает хранилище. prefix отделяет ключи сервиса от чужих.
func NewStore(client *redis.Client, prefix string, logger Logger) *Store {
	s := &Store{
		client: client,
		prefix: prefix,
		logger: logger,
		done:   make(chan struct{}),
	}
	s.hub = docstore.NewHub(s.GetCollection, logger)
	return s
}

// HashKey возвращает ключ hash'а коллекции
func (s *Store) HashKey(collection string) string {
	return s.prefix + ":" + collection
}

// ChangesChannel возвращает канал, в который публикуются имена изменённых коллекций
func (s *Store) ChangesChannel() string {
	return s.prefix + ":changes"
}

// Subscribe подписывается на изменения коллекции
func (s *Store) Subscribe(ctx context.Context, collection string, onSnapshot docstore.SnapshotFunc) (docstore.Unsubscribe, error) {
	if err := s.startSubscriber(); err != nil {
		return nil, err
	}
	return s.hub.Subscribe(ctx, collection, onSnapshot)
}

// Get читает один документ
func (s *Store) Get(ctx context.Context, path string) (json.RawMessage, error) {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return nil, err
	}

	value, err := s.client.HGet(ctx, s.HashKey(collection), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - HGET: %v", ErrCommand, err)
	}
	return json.RawMessage(value), nil
}

// GetCollection читает всю коллекцию
func (s *Store) GetCollection(ctx context.Context, collection string) (docstore.Snapshot, error) {
	values, err := s.client.HGetAll(ctx, s.HashKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCollection - HGETALL: %v", ErrCommand, err)
	}

	snapshot := make(docstore.Snapshot, len(values))
	for key, value := range values {
		snapshot[key] = json.RawMessage(value)
	}
	return snapshot, nil
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

	if err := s.client.HSet(ctx, s.HashKey(collection), key, []byte(doc)).Err(); err != nil {
		return fmt.Errorf("%w: Set - HSET: %v", ErrCommand, err)
	}
	s.publish(ctx, collection)
	return nil
}

// Update сливает поля в существующий документ под WATCH
func (s *Store) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return err
	}
	hashKey := s.HashKey(collection)

	txf := func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, hashKey, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return docstore.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Update - HGET: %v", ErrCommand, err)
		}

		merged, err := docstore.MergeFields(current, fields)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, hashKey, key, []byte(merged))
			return nil
		})
		return err
	}

	for i := 0; i < updateRetries; i++ {
		err = s.client.Watch(ctx, txf, hashKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return err
		}
		s.publish(ctx, collection)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrConflict, path)
}

// Delete удаляет документ
func (s *Store) Delete(ctx context.Context, path string) error {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return err
	}

	removed, err := s.client.HDel(ctx, s.HashKey(collection), key).Result()
	if err != nil {
		return fmt.Errorf("%w: Delete - HDEL: %v", ErrCommand, err)
	}
	if removed > 0 {
		s.publish(ctx, collection)
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

// Close закрывает подписки. Клиент Redis закрывает владелец.
func (s *Store) Close() error {
	s.hub.Close()

	if s.pubsub == nil {
		return nil
	}
	err := s.pubsub.Close()
	<-s.done
	return err
}

// publish уведомляет подписчиков. Ошибка не ломает запись: данные уже сохранены.
func (s *Store) publish(ctx context.Context, collection string) {
	if err := s.client.Publish(ctx, s.ChangesChannel(), collection).Err(); err != nil {
		s.logger.Warn("docstore.redis: failed to publish change of %s: %v", collection, err)
	}
}

func (s *Store) startSubscriber() error {
	s.subOnce.Do(func() {
		pubsub := s.client.Subscribe(context.Background(), s.ChangesChannel())
		// Receive дожидается подтверждения подписки
		if _, err := pubsub.Receive(context.Background()); err != nil {
			_ = pubsub.Close()
			s.subErr = fmt.Errorf("%w: %v", ErrSubscribe, err)
			return
		}
		s.pubsub = pubsub
		s.logger.Info("docstore.redis: subscribed to %s", s.ChangesChannel())

		go func() {
			defer close(s.done)
			s.dispatch(pubsub.ChannelWithSubscriptions())
		}()
	})
	return s.subErr
}

// dispatch раздаёт уведомления до закрытия канала.
// Подтверждение подписки приходит здесь только после переподключения:
// сообщения за время разрыва потеряны, поэтому перечитываются все коллекции.
func (s *Store) dispatch(messages <-chan interface{}) {
	for m := range messages {
		switch msg := m.(type) {
		case *redis.Message:
			s.hub.Notify(msg.Payload)
		case *redis.Subscription:
			if msg.Kind == "subscribe" {
				s.logger.Warn("docstore.redis: resubscribed to %s, reloading all collections", msg.Channel)
				s.hub.NotifyAll()
			}
		}
	}
}
