package schedule

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
)

// DocumentStore операции хранилища, которые использует репозиторий
type DocumentStore interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	GetCollection(ctx context.Context, collection string) (docstore.Snapshot, error)
	Set(ctx context.Context, path string, value interface{}) error
	Delete(ctx context.Context, path string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
