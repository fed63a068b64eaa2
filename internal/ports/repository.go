package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"scoringAPI/internal/domain"
)

// ICallRepository: контракт сохранения и чтения истории вызовов API.
type ICallRepository interface {
	SaveCall(ctx context.Context, call domain.Call) error
	GetHistory(ctx context.Context, limit int) ([]domain.Call, error)
	Ping(ctx context.Context) error
}
