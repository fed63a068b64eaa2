package pg

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"

	"scoringAPI/internal/domain"
	"scoringAPI/internal/ports"
)

var _ ports.ICallRepository = (*CallRepo)(nil)

// CallRepo реализует ports.ICallRepository для PostgreSQL.
type CallRepo struct {
	db  *DB
	log *slog.Logger
}

// NewCallRepo возвращает репозиторий вызовов.
func NewCallRepo(db *DB, log *slog.Logger) *CallRepo {
	return &CallRepo{db: db, log: log}
}

// SaveCall сохраняет вызов в БД.
func (r *CallRepo) SaveCall(ctx context.Context, call domain.Call) error {
	has := call.Has
	if has == nil {
		has = []string{}
	}
	var score sql.NullFloat64
	if call.Score != nil {
		score = sql.NullFloat64{Float64: *call.Score, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calls (request_id, method, login, code, has, nclients, score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		call.RequestID, call.Method, call.Login, call.Code, pq.Array(has), call.NClients, score, call.Timestamp)
	if err != nil {
		r.log.Debug("SaveCall failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние limit вызовов (новые первыми).
func (r *CallRepo) GetHistory(ctx context.Context, limit int) ([]domain.Call, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, method, login, code, has, nclients, score, created_at
		 FROM calls ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	list := make([]domain.Call, 0)
	for rows.Next() {
		var (
			call  domain.Call
			has   []string
			score sql.NullFloat64
		)
		err := rows.Scan(&call.ID, &call.RequestID, &call.Method, &call.Login, &call.Code,
			pq.Array(&has), &call.NClients, &score, &call.Timestamp)
		if err != nil {
			return nil, err
		}
		if len(has) > 0 {
			call.Has = has
		}
		if score.Valid {
			v := score.Float64
			call.Score = &v
		}
		list = append(list, call)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *CallRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
