package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"scoringAPI/internal/domain"
	"scoringAPI/internal/ports"
)

var _ ports.ICallRepository = (*CallRepo)(nil)

// callDoc: документ коллекции calls. Числового ID нет, при чтении в домене остаётся 0.
type callDoc struct {
	RequestID string    `bson:"request_id"`
	Method    string    `bson:"method"`
	Login     string    `bson:"login"`
	Code      int       `bson:"code"`
	Has       []string  `bson:"has,omitempty"`
	NClients  int       `bson:"nclients"`
	Score     *float64  `bson:"score,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

func toDoc(call domain.Call) callDoc {
	return callDoc{
		RequestID: call.RequestID,
		Method:    call.Method,
		Login:     call.Login,
		Code:      call.Code,
		Has:       call.Has,
		NClients:  call.NClients,
		Score:     call.Score,
		CreatedAt: call.Timestamp,
	}
}

func (d callDoc) toDomain() domain.Call {
	return domain.Call{
		RequestID: d.RequestID,
		Method:    d.Method,
		Login:     d.Login,
		Code:      d.Code,
		Has:       d.Has,
		NClients:  d.NClients,
		Score:     d.Score,
		Timestamp: d.CreatedAt,
	}
}

// CallRepo реализует ports.ICallRepository для MongoDB.
type CallRepo struct {
	client *Client
	log    *slog.Logger
}

// NewCallRepo возвращает репозиторий вызовов.
func NewCallRepo(client *Client, log *slog.Logger) *CallRepo {
	return &CallRepo{client: client, log: log}
}

// SaveCall сохраняет вызов в коллекцию.
func (r *CallRepo) SaveCall(ctx context.Context, call domain.Call) error {
	if _, err := r.client.Calls().InsertOne(ctx, toDoc(call)); err != nil {
		r.log.Debug("SaveCall failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние limit вызовов (новые первыми).
func (r *CallRepo) GetHistory(ctx context.Context, limit int) ([]domain.Call, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.client.Calls().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []callDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Call, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toDomain())
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *CallRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
