package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apihttp "scoringAPI/internal/api/http"
	methodctl "scoringAPI/internal/api/http/controllers/method"
	"scoringAPI/internal/api/http/controllers/system"
	"scoringAPI/internal/domain"
	"scoringAPI/internal/infrastructure/click"
	"scoringAPI/internal/infrastructure/kafka"
	"scoringAPI/internal/infrastructure/mongo"
	"scoringAPI/internal/infrastructure/pg"
	"scoringAPI/internal/infrastructure/redis"
	"scoringAPI/internal/pkg/logger"
	"scoringAPI/internal/ports"
	"scoringAPI/internal/usecase/method"
	"scoringAPI/internal/usecase/scoring"
)

// App: приложение, хранит конфиг и функции закрытия ресурсов.
type App struct {
	cfg     Config
	log     *slog.Logger
	closers []func()
}

// New создаёт приложение с конфигом. Подключения открываются в Run.
func New(cfg Config) *App {
	log := logger.New(cfg.Log)
	slog.SetDefault(log)
	return &App{cfg: cfg, log: log}
}

func (a *App) onClose(f func()) {
	a.closers = append(a.closers, f)
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Run собирает зависимости и запускает HTTP-сервер. Блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	store := redis.NewStore(&a.cfg.Redis, a.log)
	a.onClose(func() { _ = store.Close() })
	cache := redis.NewCache(store, a.log)
	scoringUC := scoring.New(cache, store, a.log)

	deps := map[string]system.Pinger{"store": store}

	calls, err := a.history(ctx)
	if err != nil {
		return err
	}
	if calls != nil {
		deps["history"] = calls
	}

	var broker ports.IProducer
	if a.cfg.Kafka.Enabled {
		p := kafka.NewProducer(&a.cfg.Kafka)
		a.onClose(func() { _ = p.Close() })
		broker = p
	}

	var analytics ports.ICallAnalytics
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		a.onClose(func() { _ = ch.Close() })
		writer := click.NewCallWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		deps["analytics"] = ch
		analytics = writer
	}

	uc := method.New(scoringUC, method.NewVerifier(a.cfg.Auth), calls, broker, analytics, a.log)

	if a.cfg.Kafka.Enabled && analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, a.log)
		a.onClose(func() { _ = consumer.Close() })
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server, a.log)
	srv.AddController(
		system.New(deps, a.log),
		methodctl.New(uc, domain.StatusTexts(), a.log),
	)

	a.log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"redis", a.cfg.Redis.Addr(),
		"history", a.cfg.History.Driver,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled,
	)
	return srv.Start(ctx)
}

// history подключает репозиторий истории по драйверу. Для "none" возвращает nil.
func (a *App) history(ctx context.Context) (ports.ICallRepository, error) {
	switch a.cfg.History.Driver {
	case HistoryPG:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		a.onClose(func() { _ = db.Close() })
		if err := pg.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewCallRepo(db, a.log), nil
	case HistoryMongo:
		client, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		a.onClose(func() { _ = client.Close(context.Background()) })
		return mongo.NewCallRepo(client, a.log), nil
	default:
		return nil, nil
	}
}

// Migrate применяет миграции PostgreSQL истории вызовов и выходит.
func (a *App) Migrate(ctx context.Context) error {
	db, err := pg.New(ctx, &a.cfg.DB)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()
	if err := pg.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	a.log.Info("migrations applied", "db", a.cfg.DB.DBName)
	return nil
}
