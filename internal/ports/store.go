package ports

//go:generate mockgen -source=store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"time"
)

// IStore: контракт хранилища ключ/значение с повторными попытками.
// Ошибки подключения после исчерпания попыток оборачивают domain.ErrStoreUnavailable.
type IStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}
