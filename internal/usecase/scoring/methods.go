package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"scoringAPI/internal/domain"
)

// ScoreTTL время жизни закэшированного скора.
const ScoreTTL = time.Hour

// Веса вкладов в скор.
const (
	phoneWeight    = 1.5
	emailWeight    = 1.5
	birthdayWeight = 1.5
	nameWeight     = 0.5
)

// Score проверяет кэш; при промахе считает скор и пишет его в кэш на час.
// Сбой кэша не мешает ответу: значение просто считается заново.
func (u *UseCase) Score(ctx context.Context, args domain.ScoreArguments) float64 {
	key := cacheKey(args)
	if cached, found := u.cache.Get(ctx, key); found && cached > 0 {
		u.log.Debug("score cache hit", "key", key, "score", cached)
		return cached
	}

	score := 0.0
	if args.Phone != "" {
		score += phoneWeight
	}
	if args.Email != "" {
		score += emailWeight
	}
	// пол 0 (unknown) проходит валидацию, но вес не даёт
	if args.Birthday != nil && args.Gender != nil && *args.Gender != domain.GenderUnknown {
		score += birthdayWeight
	}
	if args.FirstName != "" && args.LastName != "" {
		score += nameWeight
	}

	u.cache.Set(ctx, key, score, ScoreTTL)
	u.log.Debug("score computed", "key", key, "score", score)
	return score
}

// Interests читает список интересов клиента из хранилища. Ошибки хранилища возвращаются как есть.
// Отсутствующий ключ даёт пустой список.
func (u *UseCase) Interests(ctx context.Context, clientID int64) ([]string, error) {
	key := interestsKey(clientID)
	raw, found, err := u.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}

	var interests []string
	if err := json.Unmarshal(raw, &interests); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptedRecord, key, err)
	}
	if interests == nil {
		interests = []string{}
	}
	return interests, nil
}
