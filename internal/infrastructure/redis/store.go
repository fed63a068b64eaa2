package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"scoringAPI/internal/domain"
	"scoringAPI/internal/ports"
)

var _ ports.IStore = (*Store)(nil)

// conn подмножество команд go-redis, которое нужно Store.
type conn interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Store хранилище ключ/значение поверх Redis. Подключение создаётся лениво при первом вызове
// и переиспользуется всеми запросами. Ошибки соединения повторяются с фиксированной паузой
// не более cfg.MaxRetries попыток; ожидание прерывается отменой ctx.
type Store struct {
	cfg  Config
	dial func(cfg *Config) conn
	log  *slog.Logger

	mu   sync.Mutex
	conn conn
}

// NewStore возвращает хранилище. Подключения к Redis на этом шаге нет.
func NewStore(cfg *Config, log *slog.Logger) *Store {
	return newStore(cfg, log, dial)
}

func newStore(cfg *Config, log *slog.Logger, dial func(cfg *Config) conn) *Store {
	return &Store{cfg: *cfg, dial: dial, log: log}
}

func (s *Store) connection() conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		s.conn = s.dial(&s.cfg)
	}
	return s.conn
}

// Get возвращает значение по ключу. Если ключа нет, found == false и err == nil.
func (s *Store) Get(ctx context.Context, key string) (value []byte, found bool, err error) {
	err = s.retry(ctx, "get", key, func() error {
		b, err := s.connection().Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			value, found = nil, false
			return nil
		}
		if err != nil {
			return err
		}
		value, found = b, true
		return nil
	})
	return value, found, err
}

// Set записывает значение с временем жизни ttl (ноль означает без истечения).
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.retry(ctx, "set", key, func() error {
		return s.connection().Set(ctx, key, value, ttl).Err()
	})
}

// Ping проверяет соединение (для readiness). Без повторов.
func (s *Store) Ping(ctx context.Context) error {
	return s.connection().Ping(ctx).Err()
}

// Close закрывает соединение, если оно было открыто.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// retry выполняет op с постоянной паузой между попытками. Повторяются только ошибки соединения,
// остальные возвращаются сразу.
func (s *Store) retry(ctx context.Context, op, key string, fn func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cfg.RetryDelay), uint64(s.cfg.attempts()-1)),
		ctx,
	)
	err := backoff.RetryNotify(func() error {
		err := fn()
		if err != nil && !isConnError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		storeRetriesTotal.WithLabelValues(op).Inc()
		s.log.Warn("store connection failed, retrying", "op", op, "key", key, "wait", wait, "error", err)
	})
	if err == nil {
		return nil
	}
	storeFailuresTotal.WithLabelValues(op).Inc()
	if isConnError(err) || ctx.Err() != nil {
		return fmt.Errorf("%w: %s %s after %d attempts: %v", domain.ErrStoreUnavailable, op, key, s.cfg.attempts(), err)
	}
	return fmt.Errorf("store %s %s: %w", op, key, err)
}

// isConnError отличает сбой соединения от ошибки команды.
func isConnError(err error) bool {
	if errors.Is(err, redis.ErrClosed) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
