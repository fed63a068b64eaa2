package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"time"
)

// ICache: контракт кэша скоринга. Реализация не возвращает ошибок:
// сбой чтения считается промахом, сбой записи логируется и пропускается.
type ICache interface {
	Get(ctx context.Context, key string) (value float64, found bool)
	Set(ctx context.Context, key string, value float64, ttl time.Duration)
}
