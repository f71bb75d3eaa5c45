package postgres

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("docstore.postgres: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("docstore.postgres: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("docstore.postgres: failed to scan row")

	// ErrListen возвращается, когда не удалось подписаться на канал уведомлений
	ErrListen = errors.New("docstore.postgres: failed to listen for changes")
)
