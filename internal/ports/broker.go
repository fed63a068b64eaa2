package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IProducer: контракт отправки сообщений в брокер (Kafka). Топик задаётся конфигом реализации.
// Use case после обработки вызова отправляет событие; консьюмер живёт в инфраструктуре.
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}
