package redis

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config настройки подключения к Redis и политики повторов.
// Переменные: SCORING_REDIS_HOST, SCORING_REDIS_PORT, SCORING_REDIS_MAX_RETRIES, SCORING_REDIS_RETRY_DELAY и т.д.
type Config struct {
	Host         string        `envconfig:"HOST" default:"localhost"`
	Port         string        `envconfig:"PORT" default:"6379"`
	Password     string        `envconfig:"PASSWORD" default:""`
	DB           int           `envconfig:"DB" default:"0"`
	MaxRetries   int           `envconfig:"MAX_RETRIES" default:"3"`
	RetryDelay   time.Duration `envconfig:"RETRY_DELAY" default:"2s"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"2s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"2s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"2s"`
}

// Addr возвращает адрес "host:port".
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// attempts сколько раз выполняется операция, включая первую попытку.
func (c *Config) attempts() int {
	if c.MaxRetries < 1 {
		return 1
	}
	return c.MaxRetries
}

// dial создаёт клиента go-redis. Соединения открываются при первой команде.
// Встроенные повторы go-redis выключены: повторяет только Store.
func dial(cfg *Config) conn {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   -1,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}
