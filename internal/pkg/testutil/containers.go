// Package testutil поднимает инфраструктуру для интеграционных тестов в Docker (testcontainers).
package testutil

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Endpoint: адрес опубликованного порта контейнера.
type Endpoint struct {
	Host string
	Port string
}

// Addr возвращает "host:port".
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, e.Port)
}

// portNumber: то, что возвращает MappedPort.
type portNumber interface {
	Port() string
}

func newEndpoint(host string, port portNumber) Endpoint {
	return Endpoint{Host: host, Port: port.Port()}
}

// PostgresContainer: PostgreSQL с параметрами подключения.
type PostgresContainer struct {
	*postgres.PostgresContainer
	Endpoint
	User     string
	Password string
	DBName   string
}

// NewPostgresContainer поднимает PostgreSQL.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const (
		user     = "test"
		password = "test"
		dbName   = "scoring"
	)

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("postgres port: %w", err)
	}
	ep := newEndpoint(host, port)
	return &PostgresContainer{
		PostgresContainer: container,
		Endpoint:          ep,
		User:              user,
		Password:          password,
		DBName:            dbName,
	}, nil
}

// RedisContainer: Redis с адресом подключения.
type RedisContainer struct {
	*redis.RedisContainer
	Endpoint
}

// NewRedisContainer поднимает Redis.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("redis host: %w", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		return nil, fmt.Errorf("redis port: %w", err)
	}
	ep := newEndpoint(host, port)
	return &RedisContainer{RedisContainer: container, Endpoint: ep}, nil
}

// MongoContainer: MongoDB с адресом подключения.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	Endpoint
}

// NewMongoContainer поднимает MongoDB.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("mongo host: %w", err)
	}
	port, err := container.MappedPort(ctx, "27017/tcp")
	if err != nil {
		return nil, fmt.Errorf("mongo port: %w", err)
	}
	ep := newEndpoint(host, port)
	return &MongoContainer{MongoDBContainer: container, Endpoint: ep}, nil
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return "mongodb://" + c.Addr()
}

// ClickHouseContainer: ClickHouse с параметрами нативного протокола.
type ClickHouseContainer struct {
	*clickhouse.ClickHouseContainer
	Endpoint
	User     string
	Password string
	Database string
}

// NewClickHouseContainer поднимает ClickHouse.
func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	const (
		user     = "default"
		password = "test"
		database = "default"
	)

	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(user),
		clickhouse.WithPassword(password),
		clickhouse.WithDatabase(database),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("clickhouse host: %w", err)
	}
	port, err := container.MappedPort(ctx, "9000/tcp")
	if err != nil {
		return nil, fmt.Errorf("clickhouse port: %w", err)
	}
	ep := newEndpoint(host, port)
	return &ClickHouseContainer{
		ClickHouseContainer: container,
		Endpoint:            ep,
		User:                user,
		Password:            password,
		Database:            database,
	}, nil
}

// Terminate останавливает контейнеры и собирает ошибки.
func Terminate(ctx context.Context, containers ...testcontainers.Container) []error {
	var errs []error
	for _, c := range containers {
		if err := c.Terminate(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
