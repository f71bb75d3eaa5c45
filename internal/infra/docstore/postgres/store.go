package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
	"github.com/m04kA/SMC-VenueCalendar/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (*sql.DB)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const (
	listenerMinReconnect = 1 * time.Second
	listenerMaxReconnect = 30 * time.Second
	listenerPingInterval = 90 * time.Second
)

// Store реализация docstore.Store поверх PostgreSQL (JSONB + LISTEN/NOTIFY)
type Store struct {
	db     DBExecutor
	dsn    string
	logger Logger
	hub    *docstore.Hub

	listenOnce sync.Once
	listenErr  error
	listener   *pq.Listener
	stop       chan struct{}
	done       chan struct{}
}

// NewStore создает хранилище. dsn нужен отдельному соединению pq.Listener.
func NewStore(db DBExecutor, dsn string, logger Logger) *Store {
	s := &Store{
		db:     db,
		dsn:    dsn,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	s.hub = docstore.NewHub(s.GetCollection, logger)
	return s
}

// EnsureSchema создаёт таблицу и триггер, если их ещё нет
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Subscribe подписывается на изменения коллекции через LISTEN
func (s *Store) Subscribe(ctx context.Context, collection string, onSnapshot docstore.SnapshotFunc) (docstore.Unsubscribe, error) {
	if err := s.startListener(); err != nil {
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

	query, args, err := psqlbuilder.Select("value").
		From(tableName).
		Where(squirrel.Eq{"collection": collection, "key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan document: %v", ErrScanRow, err)
	}

	return json.RawMessage(value), nil
}

// GetCollection читает всю коллекцию
func (s *Store) GetCollection(ctx context.Context, collection string) (docstore.Snapshot, error) {
	query, args, err := psqlbuilder.Select("key", "value").
		From(tableName).
		Where(squirrel.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCollection - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCollection - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	snapshot := make(docstore.Snapshot)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: GetCollection - scan document: %v", ErrScanRow, err)
		}
		snapshot[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCollection - iterate rows: %v", ErrScanRow, err)
	}

	return snapshot, nil
}

// Set перезаписывает документ (upsert)
func (s *Store) Set(ctx context.Context, path string, value interface{}) error {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return err
	}
	doc, err := docstore.Encode(value)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("collection", "key", "value").
		Values(collection, key, squirrel.Expr("?::jsonb", string(doc))).
		Suffix("ON CONFLICT (collection, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Update сливает поля в существующий документ.
// null в patch удаляет поле, как и в остальных реализациях.
func (s *Store) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return err
	}
	patch, removed, err := splitPatch(fields)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update(tableName).
		Set("value", squirrel.Expr("(value || ?::jsonb) - ?::text[]", string(patch), pq.Array(removed))).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"collection": collection, "key": key}).
		Where("jsonb_typeof(value) = 'object'").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// splitPatch делит поля на записываемые и удаляемые (nil).
// Удаляются только поля из patch, остальные null в документе сохраняются.
func splitPatch(fields map[string]interface{}) (json.RawMessage, []string, error) {
	set := make(map[string]interface{}, len(fields))
	removed := make([]string, 0)

	for name, value := range fields {
		if value == nil {
			removed = append(removed, name)
			continue
		}
		set[name] = value
	}
	sort.Strings(removed)

	patch, err := docstore.Encode(set)
	if err != nil {
		return nil, nil, err
	}
	return patch, removed, nil
}

// Delete удаляет документ
func (s *Store) Delete(ctx context.Context, path string) error {
	collection, key, err := docstore.SplitPath(path)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"collection": collection, "key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
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

// Close останавливает listener и все подписки
func (s *Store) Close() error {
	s.hub.Close()

	if s.listener == nil {
		return nil
	}
	close(s.stop)
	<-s.done
	return s.listener.Close()
}

func (s *Store) startListener() error {
	s.listenOnce.Do(func() {
		s.listener = pq.NewListener(s.dsn, listenerMinReconnect, listenerMaxReconnect, s.onListenerEvent)
		if err := s.listener.Listen(ChangesChannel); err != nil {
			s.listenErr = fmt.Errorf("%w: %v", ErrListen, err)
			_ = s.listener.Close()
			s.listener = nil
			return
		}
		s.logger.Info("docstore.postgres: listening on channel %s", ChangesChannel)
		go s.listen()
	})
	return s.listenErr
}

func (s *Store) listen() {
	defer close(s.done)

	for {
		select {
		case <-s.stop:
			return
		case n, ok := <-s.listener.Notify:
			if !ok {
				return
			}
			// nil приходит после переподключения: изменения могли потеряться
			if n == nil {
				s.hub.NotifyAll()
				continue
			}
			s.hub.Notify(n.Extra)
		case <-time.After(listenerPingInterval):
			if err := s.listener.Ping(); err != nil {
				s.logger.Warn("docstore.postgres: listener ping failed: %v", err)
			}
		}
	}
}

func (s *Store) onListenerEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnectionAttemptFailed:
		s.logger.Error("docstore.postgres: listener connection attempt failed: %v", err)
	case pq.ListenerEventDisconnected:
		s.logger.Warn("docstore.postgres: listener disconnected: %v", err)
	case pq.ListenerEventReconnected:
		s.logger.Info("docstore.postgres: listener reconnected")
	}
}
