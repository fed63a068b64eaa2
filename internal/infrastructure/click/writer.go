package click

import (
	"context"
	"fmt"

	"scoringAPI/internal/domain"
	"scoringAPI/internal/ports"
)

const callsAnalyticsTable = "calls_analytics"

var _ ports.ICallAnalytics = (*CallWriter)(nil)

// CallWriter пишет вызовы API в ClickHouse для отчётов по методам, кодам и времени.
type CallWriter struct {
	db *Client
}

// NewCallWriter создаёт писатель вызовов.
func NewCallWriter(db *Client) *CallWriter {
	return &CallWriter{db: db}
}

// EnsureTable создаёт таблицу аналитики, если её нет. Вызывается один раз при старте.
func (w *CallWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			request_id String,
			method LowCardinality(String),
			login String,
			code UInt16,
			has Array(String),
			nclients UInt32,
			score Nullable(Float64),
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		PARTITION BY toYYYYMM(created_at)
		ORDER BY (created_at, method)`,
		callsAnalyticsTable,
	)
	if _, err := w.db.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create %s: %w", callsAnalyticsTable, err)
	}
	return nil
}

// WriteCall пишет один вызов.
func (w *CallWriter) WriteCall(ctx context.Context, call domain.Call) error {
	has := call.Has
	if has == nil {
		has = []string{}
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (request_id, method, login, code, has, nclients, score, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		callsAnalyticsTable,
	)
	_, err := w.db.db.ExecContext(ctx, query,
		call.RequestID, call.Method, call.Login, uint16(call.Code), has, uint32(call.NClients), call.Score, call.Timestamp)
	if err != nil {
		return fmt.Errorf("insert call: %w", err)
	}
	return nil
}

// CountByMethod возвращает число записанных вызовов метода.
func (w *CallWriter) CountByMethod(ctx context.Context, method string) (uint64, error) {
	var n uint64
	query := fmt.Sprintf("SELECT count() FROM %s WHERE method = ?", callsAnalyticsTable)
	if err := w.db.db.QueryRowContext(ctx, query, method).Scan(&n); err != nil {
		return 0, fmt.Errorf("count calls: %w", err)
	}
	return n, nil
}
