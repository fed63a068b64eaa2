package integration

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "scoringAPI/internal/api/http"
	methodctl "scoringAPI/internal/api/http/controllers/method"
	"scoringAPI/internal/api/http/controllers/system"
	"scoringAPI/internal/domain"
	"scoringAPI/internal/infrastructure/redis"
	"scoringAPI/internal/usecase/method"
	"scoringAPI/internal/usecase/scoring"
)

// startAPI собирает сервис поверх тестовых Redis и PostgreSQL и возвращает адрес HTTP-сервера.
func startAPI(t *testing.T) string {
	t.Helper()
	log := newTestLogger()

	store := setupStore(t)
	calls, _ := setupPgRepo(t)
	uc := method.New(
		scoring.New(redis.NewCache(store, log), store, log),
		method.NewVerifier(method.AuthConfig{Salt: "Otus", AdminLogin: "admin", AdminSalt: "42"}),
		calls, nil, nil, log,
	)

	srv := apihttp.NewServer(apihttp.ServerConfig{}, log)
	srv.AddController(
		system.New(map[string]system.Pinger{"store": store, "history": calls}, log),
		methodctl.New(uc, domain.StatusTexts(), log),
	)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts.URL
}

func userToken(account, login string) string {
	sum := sha512.Sum512([]byte(account + login + "Otus"))
	return hex.EncodeToString(sum[:])
}

func callMethod(t *testing.T, url string, body map[string]any) (int, map[string]any) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url+"/method", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func envelope(method string, args map[string]any) map[string]any {
	return map[string]any{
		"account":   "horns&hoofs",
		"login":     "h&f",
		"token":     userToken("horns&hoofs", "h&f"),
		"method":    method,
		"arguments": args,
	}
}

func TestAPI_OnlineScore(t *testing.T) {
	skipShort(t)
	raw := rawRedis(t)
	url := startAPI(t)
	ctx := context.Background()

	args := map[string]any{"phone": "79175002040", "email": "stupnikov@otus.ru"}
	code, out := callMethod(t, url, envelope(domain.MethodOnlineScore, args))

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"score": 3.0}, out["response"])

	keys, err := raw.Keys(ctx, "uid:*").Result()
	require.NoError(t, err)
	require.Len(t, keys, 1, "результат сохранён в кэш")

	// значение из кэша возвращается без пересчёта
	require.NoError(t, raw.Set(ctx, keys[0], "7.5", time.Hour).Err())
	_, out = callMethod(t, url, envelope(domain.MethodOnlineScore, args))
	assert.Equal(t, map[string]any{"score": 7.5}, out["response"])
}

func TestAPI_ClientsInterests(t *testing.T) {
	skipShort(t)
	raw := rawRedis(t)
	url := startAPI(t)
	ctx := context.Background()

	require.NoError(t, raw.Set(ctx, "i:1", `["cars","pets"]`, 0).Err())
	require.NoError(t, raw.Set(ctx, "i:2", `["books"]`, 0).Err())

	code, out := callMethod(t, url, envelope(domain.MethodClientsInterests, map[string]any{
		"client_ids": []int{1, 2, 3},
		"date":       "20.07.2017",
	}))

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{
		"client1": []any{"cars", "pets"},
		"client2": []any{"books"},
		"client3": []any{},
	}, out["response"])
}

func TestAPI_Errors(t *testing.T) {
	skipShort(t)
	rawRedis(t)
	url := startAPI(t)

	t.Run("плохой токен", func(t *testing.T) {
		body := envelope(domain.MethodOnlineScore, map[string]any{"phone": "79175002040", "email": "a@b.ru"})
		body["token"] = "bad"
		code, out := callMethod(t, url, body)
		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, "Forbidden", out["error"])
	})

	t.Run("неполная пара", func(t *testing.T) {
		code, out := callMethod(t, url, envelope(domain.MethodOnlineScore, map[string]any{"phone": "79175002040"}))
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.NotEmpty(t, out["error"])
	})

	t.Run("неизвестный маршрут", func(t *testing.T) {
		resp, err := http.Get(url + "/nope")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAPI_HistoryAndReadiness(t *testing.T) {
	skipShort(t)
	rawRedis(t)
	url := startAPI(t)

	callMethod(t, url, envelope(domain.MethodOnlineScore, map[string]any{"first_name": "a", "last_name": "b"}))
	callMethod(t, url, envelope("unknown", map[string]any{}))

	resp, err := http.Get(url + "/api/v1/history")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history methodctl.HistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	require.Len(t, history.Items, 2)
	assert.Equal(t, "unknown", history.Items[0].Method)
	assert.Equal(t, 422, history.Items[0].Code)
	assert.Equal(t, domain.MethodOnlineScore, history.Items[1].Method)
	assert.Equal(t, []string{"first_name", "last_name"}, history.Items[1].Has)
	assert.NotEmpty(t, history.Items[1].RequestID)

	ready, err := http.Get(url + "/readyness")
	require.NoError(t, err)
	ready.Body.Close()
	assert.Equal(t, http.StatusOK, ready.StatusCode)
}
