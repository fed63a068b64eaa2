package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"scoringAPI/internal/api/http"
	"scoringAPI/internal/infrastructure/click"
	"scoringAPI/internal/infrastructure/kafka"
	"scoringAPI/internal/infrastructure/mongo"
	"scoringAPI/internal/infrastructure/pg"
	"scoringAPI/internal/infrastructure/redis"
	"scoringAPI/internal/pkg/logger"
	"scoringAPI/internal/usecase/method"
)

const AppName = "SCORING"

// Драйверы истории вызовов.
const (
	HistoryNone  = "none"
	HistoryPG    = "pg"
	HistoryMongo = "mongo"
)

// HistoryConfig: где хранить историю вызовов. Переменная: SCORING_HISTORY_DRIVER.
type HistoryConfig struct {
	Driver string `envconfig:"DRIVER" default:"none"`
}

// Config: конфиг приложения. Заполняется через envconfig с префиксом SCORING.
type Config struct {
	Server     http.ServerConfig `envconfig:"SERVER"`
	Auth       method.AuthConfig `envconfig:"AUTH"`
	Redis      redis.Config      `envconfig:"REDIS"`
	History    HistoryConfig     `envconfig:"HISTORY"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	Log        logger.Config     `envconfig:"LOG"`
}

// Validate проверяет значения, которые envconfig не может проверить сам.
func (c *Config) Validate() error {
	switch c.History.Driver {
	case HistoryNone, HistoryPG, HistoryMongo:
	default:
		return fmt.Errorf("unknown history driver %q", c.History.Driver)
	}
	if c.Redis.MaxRetries < 1 {
		return fmt.Errorf("redis max retries must be positive, got %d", c.Redis.MaxRetries)
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Без аргументов читается .env из рабочего каталога; его отсутствие не ошибка.
// Явно переданный файл обязан загрузиться.
func LoadCfg(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	} else if err := godotenv.Load(); err != nil {
		slog.Debug("config: .env не найден, используем окружение", "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
