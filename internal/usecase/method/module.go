package method

import (
	"log/slog"

	"scoringAPI/internal/ports"
)

// HistoryLimit сколько последних вызовов отдаёт History по умолчанию.
const HistoryLimit = 100

// UseCase: конвейер RPC-метода: конверт, авторизация, диспетчеризация, запись вызова.
// calls, broker и analytics необязательны и могут быть nil.
type UseCase struct {
	scoring   ports.IScoringUseCase
	auth      *Verifier
	calls     ports.ICallRepository
	broker    ports.IProducer
	analytics ports.ICallAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс RPC-метода.
func New(scoring ports.IScoringUseCase, auth *Verifier, calls ports.ICallRepository, broker ports.IProducer, analytics ports.ICallAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{
		scoring:   scoring,
		auth:      auth,
		calls:     calls,
		broker:    broker,
		analytics: analytics,
		log:       log,
	}
}
