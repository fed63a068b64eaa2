package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"scoringAPI/internal/domain"
)

// IScoringUseCase: бизнес-операции: скоринг и интересы клиента.
type IScoringUseCase interface {
	Score(ctx context.Context, args domain.ScoreArguments) float64
	Interests(ctx context.Context, clientID int64) ([]string, error)
}

// IMethodUseCase: конвейер RPC: конверт, авторизация, диспетчеризация, события.
type IMethodUseCase interface {
	Handle(ctx context.Context, req domain.Request) domain.Reply
	History(ctx context.Context, limit int) ([]domain.Call, error)
	HandleCallEvent(ctx context.Context, call domain.Call) error
}
