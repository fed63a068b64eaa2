package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"

	"scoringAPI/internal/domain"
	"scoringAPI/internal/ports"
)

type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer читает события вызовов и передаёт их в use case (запись в аналитику).
type Consumer struct {
	r       reader
	uc      ports.IMethodUseCase
	log     *slog.Logger
	backoff func() backoff.BackOff
}

// handleBackOff пауза между повторами обработки одного сообщения. Повторы без ограничения по времени:
// сообщение нельзя пропустить, следующий коммит сдвинул бы offset через него.
func handleBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// NewConsumer создаёт консьюмера в consumer group из конфига. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IMethodUseCase, log *slog.Logger) *Consumer {
	return &Consumer{r: New(cfg).reader(), uc: uc, log: log, backoff: handleBackOff}
}

// Run в цикле читает сообщения, декодирует domain.Call и вызывает uc.HandleCallEvent.
// Коммит только после успешной обработки; битые сообщения коммитятся и пропускаются.
// Ошибка обработки повторяется на месте, пока не пройдёт или не отменят ctx.
// Выход по отмене ctx или ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var call domain.Call
		if err := json.Unmarshal(msg.Value, &call); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.r.CommitMessages(ctx, msg)
			continue
		}

		if err := c.handle(ctx, call, msg); err != nil {
			c.log.Warn("kafka consumer stopped before commit", "error", err, "request_id", call.RequestID, "offset", msg.Offset)
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

func (c *Consumer) handle(ctx context.Context, call domain.Call, msg kafka.Message) error {
	newBackOff := c.backoff
	if newBackOff == nil {
		newBackOff = handleBackOff
	}
	return backoff.RetryNotify(func() error {
		return c.uc.HandleCallEvent(ctx, call)
	}, backoff.WithContext(newBackOff(), ctx), func(err error, wait time.Duration) {
		c.log.Warn("kafka handle error, retrying", "error", err, "request_id", call.RequestID, "offset", msg.Offset, "wait", wait)
	})
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
