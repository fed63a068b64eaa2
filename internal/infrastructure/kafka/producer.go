package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"

	"scoringAPI/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// Producer: обёртка над kafka.Writer. Ключ сообщения: request id, так события одного запроса попадают в одну партицию.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт продюсера по конфигу.
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send отправляет одно сообщение.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
