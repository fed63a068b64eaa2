package domain

import "errors"

var (
	// ErrInvalidRequest возвращается, когда поле или межполевое правило схемы не выполнено.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrForbidden возвращается, когда токен не совпал с ожидаемым дайджестом.
	ErrForbidden = errors.New("forbidden")
	// ErrUnsupportedMethod возвращается для неизвестного имени метода.
	ErrUnsupportedMethod = errors.New("unsupported method")
	// ErrStoreUnavailable возвращается, когда хранилище недоступно после всех попыток.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrCorruptedRecord возвращается, когда сохранённое значение не разбирается.
	ErrCorruptedRecord = errors.New("corrupted record")
)
