package mirror

import (
	"context"

	"github.com/m04kA/SMC-VenueCalendar/internal/infra/docstore"
)

// Subscriber подписка на коллекции хранилища
type Subscriber interface {
	Subscribe(ctx context.Context, collection string, onSnapshot docstore.SnapshotFunc) (docstore.Unsubscribe, error)
}

// CollectionReader разовое чтение коллекции
type CollectionReader interface {
	GetCollection(ctx context.Context, collection string) (docstore.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
