package scoring

import (
	"crypto/md5"
	"encoding/hex"
	"log/slog"
	"strconv"

	"scoringAPI/internal/domain"
	"scoringAPI/internal/ports"
)

const (
	scoreKeyPrefix     = "uid:"
	interestsKeyPrefix = "i:"
)

// cacheKey формирует ключ скоринга: "uid:" + md5 от имени, фамилии, телефона и даты рождения (YYYYMMDD).
// Одинаковые нормализованные поля всегда дают одинаковый ключ.
func cacheKey(args domain.ScoreArguments) string {
	birthday := ""
	if args.Birthday != nil {
		birthday = args.Birthday.Format("20060102")
	}
	sum := md5.Sum([]byte(args.FirstName + args.LastName + args.Phone + birthday))
	return scoreKeyPrefix + hex.EncodeToString(sum[:])
}

// interestsKey формирует ключ списка интересов клиента, например "i:42".
func interestsKey(clientID int64) string {
	return interestsKeyPrefix + strconv.FormatInt(clientID, 10)
}

// UseCase: скоринг и интересы клиентов.
type UseCase struct {
	cache ports.ICache
	store ports.IStore
	log   *slog.Logger
}

// New создаёт юзкейс скоринга. cache используется только для скоринга, store только для интересов.
func New(cache ports.ICache, store ports.IStore, log *slog.Logger) *UseCase {
	return &UseCase{cache: cache, store: store, log: log}
}
