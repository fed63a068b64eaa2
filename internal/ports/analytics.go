package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"scoringAPI/internal/domain"
)

// ICallAnalytics: запись вызовов в хранилище для аналитики (ClickHouse).
type ICallAnalytics interface {
	WriteCall(ctx context.Context, call domain.Call) error
}
