package docstore

import "errors"

var (
	// ErrNotFound возвращается, когда документ отсутствует
	ErrNotFound = errors.New("docstore: document not found")

	// ErrInvalidPath возвращается при некорректном пути документа
	ErrInvalidPath = errors.New("docstore: invalid path")

	// ErrNotObject возвращается при попытке частичного обновления не-объекта
	ErrNotObject = errors.New("docstore: document is not an object")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("docstore: failed to encode value")

	// ErrClosed возвращается после закрытия хранилища
	ErrClosed = errors.New("docstore: store is closed")
)
