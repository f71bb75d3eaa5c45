package redisstore

import "errors"

var (
	// ErrCommand возвращается при ошибке выполнения команды Redis
	ErrCommand = errors.New("docstore.redis: command failed")

	// ErrConflict возвращается, когда merge не удался из-за конкурентных записей
	ErrConflict = errors.New("docstore.redis: concurrent update, retries exhausted")

	// ErrSubscribe возвращается, когда не удалось подписаться на канал изменений
	ErrSubscribe = errors.New("docstore.redis: failed to subscribe for changes")
)
