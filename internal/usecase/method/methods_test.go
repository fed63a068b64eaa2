package method

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scoringAPI/internal/domain"
	"scoringAPI/internal/mocks"
	"scoringAPI/internal/usecase/scoring"
)

// newTestLogger создаёт логгер для тестов (только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var fixedNow = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local)

// newUseCase собирает конвейер без истории и брокера, время проверки токена зафиксировано.
func newUseCase(sc *scoring.UseCase, mockScoring *mocks.MockIScoringUseCase) *UseCase {
	v := NewVerifier(testAuthConfig())
	v.now = func() time.Time { return fixedNow }
	if sc != nil {
		return New(sc, v, nil, nil, nil, newTestLogger())
	}
	return New(mockScoring, v, nil, nil, nil, newTestLogger())
}

// decode разбирает JSON так же, как HTTP-контроллер: числа остаются json.Number.
func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(s))
	dec.UseNumber()
	var body map[string]any
	require.NoError(t, dec.Decode(&body))
	return body
}

// setValidAuth подставляет корректный токен для логина из тела.
func setValidAuth(body map[string]any) {
	login, _ := body["login"].(string)
	account, _ := body["account"].(string)
	if login == "admin" {
		body["token"] = sha512Hex(fixedNow.Format("2006010215") + "42")
		return
	}
	body["token"] = sha512Hex(account + login + "Otus")
}

func request(t *testing.T, method, arguments string) map[string]any {
	t.Helper()
	body := decode(t, fmt.Sprintf(`{"account": "horns&hoofs", "login": "h&f", "method": %q, "arguments": %s}`, method, arguments))
	setValidAuth(body)
	return body
}

func TestHandle_EmptyRequest(t *testing.T) {
	uc := newUseCase(nil, nil)

	reply := uc.Handle(context.Background(), domain.Request{ID: "r1", Body: map[string]any{}})

	assert.Equal(t, domain.CodeInvalidRequest, reply.Code)
}

func TestHandle_BadAuth(t *testing.T) {
	cases := []string{
		`{"account": "horns&hoofs", "login": "h&f", "method": "online_score", "token": "", "arguments": {}}`,
		`{"account": "horns&hoofs", "login": "h&f", "method": "online_score", "token": "sdd", "arguments": {}}`,
		`{"account": "horns&hoofs", "login": "admin", "method": "online_score", "token": "", "arguments": {}}`,
	}
	for _, c := range cases {
		uc := newUseCase(nil, nil)
		reply := uc.Handle(context.Background(), domain.Request{Body: decode(t, c)})
		assert.Equal(t, domain.CodeForbidden, reply.Code, c)
	}
}

func TestHandle_InvalidMethodRequest(t *testing.T) {
	cases := []string{
		`{"account": "horns&hoofs", "login": "h&f", "method": "online_score"}`,
		`{"account": "horns&hoofs", "login": "h&f", "arguments": {}}`,
		`{"account": "horns&hoofs", "method": "online_score", "arguments": {}}`,
	}
	for _, c := range cases {
		body := decode(t, c)
		setValidAuth(body)
		uc := newUseCase(nil, nil)

		reply := uc.Handle(context.Background(), domain.Request{Body: body})

		assert.Equal(t, domain.CodeInvalidRequest, reply.Code, c)
		assert.NotEmpty(t, reply.Error, c)
	}
}

func TestHandle_UnsupportedMethod(t *testing.T) {
	uc := newUseCase(nil, nil)

	reply := uc.Handle(context.Background(), domain.Request{Body: request(t, "drop_tables", `{}`)})

	assert.Equal(t, domain.CodeInvalidRequest, reply.Code)
	assert.Equal(t, "Unsupported method was given", reply.Error)
}

func TestHandle_InvalidScoreRequest(t *testing.T) {
	cases := []string{
		`{}`,
		`{"phone": "79175002040"}`,
		`{"phone": "89175002040", "email": "stupnikov@otus.ru"}`,
		`{"phone": "79175002040", "email": "stupnikovotus.ru"}`,
		`{"phone": "79175002040", "email": "stupnikov@otus.ru", "gender": -1}`,
		`{"phone": "79175002040", "email": "stupnikov@otus.ru", "gender": "1"}`,
		`{"phone": "79175002040", "email": "stupnikov@otus.ru", "gender": 1, "birthday": "31.31.1890"}`,
		`{"phone": "79175002040", "email": "stupnikov@otus.ru", "gender": 1, "birthday": "XXX"}`,
		`{"phone": "79175002040", "email": "stupnikov@otus.ru", "gender": 1, "birthday": "01.01.2000", "first_name": 1}`,
		`{"phone": "79175002040", "email": "stupnikov@otus.ru", "gender": 1, "birthday": "01.01.2000", "first_name": "s", "last_name": 2}`,
		`{"phone": "79175002040", "birthday": "01.01.2000", "first_name": "s"}`,
		`{"email": "stupnikov@otus.ru", "gender": 1, "last_name": 2}`,
	}
	for _, c := range cases {
		ctrl := gomock.NewController(t)
		// скоринг не должен вызываться: у мока нет ожиданий
		uc := newUseCase(nil, mocks.NewMockIScoringUseCase(ctrl))

		reply := uc.Handle(context.Background(), domain.Request{Body: request(t, domain.MethodOnlineScore, c)})

		assert.Equal(t, domain.CodeInvalidRequest, reply.Code, c)
		assert.NotEmpty(t, reply.Error, c)
		ctrl.Finish()
	}
}

func TestHandle_OkScoreRequest(t *testing.T) {
	cases := []string{
		`{"phone": "79175002040", "email": "stupnikov@otus.ru"}`,
		`{"phone": 79175002040, "email": "stupnikov@otus.ru"}`,
		`{"gender": 1, "birthday": "01.01.2000", "first_name": "a", "last_name": "b"}`,
		`{"gender": 0, "birthday": "01.01.2000"}`,
		`{"gender": 2, "birthday": "01.01.2000"}`,
		`{"first_name": "a", "last_name": "b"}`,
		`{"phone": "79175002040", "email": "stupnikov@otus.ru", "gender": 1, "birthday": "01.01.2000", "first_name": "a", "last_name": "b"}`,
	}
	for _, c := range cases {
		ctrl := gomock.NewController(t)
		mockCache := mocks.NewMockICache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0.0, false)
		mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), scoring.ScoreTTL)
		uc := newUseCase(scoring.New(mockCache, nil, newTestLogger()), nil)

		body := request(t, domain.MethodOnlineScore, c)
		reply := uc.Handle(context.Background(), domain.Request{Body: body})

		require.Equal(t, domain.CodeOK, reply.Code, c)
		resp, ok := reply.Response.(map[string]any)
		require.True(t, ok)
		score, ok := resp["score"].(float64)
		require.True(t, ok, c)
		assert.GreaterOrEqual(t, score, 0.0, c)

		keys := make([]string, 0)
		for k := range body["arguments"].(map[string]any) {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		assert.Equal(t, keys, reply.Has, c)
		ctrl.Finish()
	}
}

func TestHandle_ScoreUnknownGender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0.0, false)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), 0.0, scoring.ScoreTTL)
	uc := newUseCase(scoring.New(mockCache, nil, newTestLogger()), nil)

	body := request(t, domain.MethodOnlineScore, `{"gender": 0, "birthday": "01.01.2000"}`)
	reply := uc.Handle(context.Background(), domain.Request{Body: body})

	require.Equal(t, domain.CodeOK, reply.Code, "пол 0 с датой рождения закрывает пару")
	assert.Equal(t, map[string]any{"score": 0.0}, reply.Response)
	assert.Equal(t, []string{"birthday", "gender"}, reply.Has)
}

func TestHandle_OkScoreAdminRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0.0, false)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), 3.0, scoring.ScoreTTL)
	uc := newUseCase(scoring.New(mockCache, nil, newTestLogger()), nil)

	body := decode(t, `{"account": "horns&hoofs", "login": "admin", "method": "online_score",
		"arguments": {"phone": "79175002040", "email": "stupnikov@otus.ru"}}`)
	setValidAuth(body)

	reply := uc.Handle(context.Background(), domain.Request{Body: body})

	require.Equal(t, domain.CodeOK, reply.Code)
	assert.Equal(t, map[string]any{"score": 3.0}, reply.Response)
}

// Недоступный кэш не ломает скоринг: скор считается напрямую.
func TestHandle_ScoreWithCacheDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	// ICache проглатывает ошибки хранилища и отдаёт промах
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0.0, false)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), 3.0, scoring.ScoreTTL)
	uc := newUseCase(scoring.New(mockCache, nil, newTestLogger()), nil)

	reply := uc.Handle(context.Background(), domain.Request{
		Body: request(t, domain.MethodOnlineScore, `{"phone": "79175002040", "email": "stupnikov@otus.ru"}`),
	})

	assert.Equal(t, domain.CodeOK, reply.Code)
	assert.Equal(t, map[string]any{"score": 3.0}, reply.Response)
}

func TestHandle_InvalidInterestsRequest(t *testing.T) {
	cases := []string{
		`{}`,
		`{"date": "20.07.2017"}`,
		`{"client_ids": [], "date": "20.07.2017"}`,
		`{"client_ids": {"1": 2}, "date": "20.07.2017"}`,
		`{"client_ids": ["1", "2"], "date": "20.07.2017"}`,
		`{"client_ids": [1, 2], "date": "XXX"}`,
	}
	for _, c := range cases {
		ctrl := gomock.NewController(t)
		uc := newUseCase(nil, mocks.NewMockIScoringUseCase(ctrl))

		reply := uc.Handle(context.Background(), domain.Request{Body: request(t, domain.MethodClientsInterests, c)})

		assert.Equal(t, domain.CodeInvalidRequest, reply.Code, c)
		assert.NotEmpty(t, reply.Error, c)
		ctrl.Finish()
	}
}

func TestHandle_OkInterestsRequest(t *testing.T) {
	cases := []string{
		fmt.Sprintf(`{"client_ids": [1, 2, 3], "date": %q}`, time.Now().Format("02.01.2006")),
		`{"client_ids": [1, 2], "date": "19.07.2017"}`,
		`{"client_ids": [0]}`,
	}
	for _, c := range cases {
		ctrl := gomock.NewController(t)
		mockStore := mocks.NewMockIStore(ctrl)
		mockStore.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte(`["value1", "value2"]`), true, nil).AnyTimes()
		uc := newUseCase(scoring.New(nil, mockStore, newTestLogger()), nil)

		body := request(t, domain.MethodClientsInterests, c)
		reply := uc.Handle(context.Background(), domain.Request{Body: body})

		require.Equal(t, domain.CodeOK, reply.Code, c)
		resp, ok := reply.Response.(map[string][]string)
		require.True(t, ok)
		n := len(body["arguments"].(map[string]any)["client_ids"].([]any))
		assert.Len(t, resp, n, c)
		for _, v := range resp {
			assert.Equal(t, []string{"value1", "value2"}, v)
		}
		assert.Equal(t, n, reply.NClients, c)
		ctrl.Finish()
	}
}

func TestHandle_InterestsKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockIStore(ctrl)
	for _, id := range []string{"1", "2", "3"} {
		mockStore.EXPECT().Get(gomock.Any(), "i:"+id).Return([]byte(`["sport`+id+`", "music`+id+`"]`), true, nil)
	}
	uc := newUseCase(scoring.New(nil, mockStore, newTestLogger()), nil)

	reply := uc.Handle(context.Background(), domain.Request{Body: request(t, domain.MethodClientsInterests, `{"client_ids": [1, 2, 3]}`)})

	require.Equal(t, domain.CodeOK, reply.Code)
	assert.Equal(t, map[string][]string{
		"client1": {"sport1", "music1"},
		"client2": {"sport2", "music2"},
		"client3": {"sport3", "music3"},
	}, reply.Response)
	assert.Equal(t, 3, reply.NClients)
}

func TestHandle_InterestsStoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockIStore(ctrl)
	mockStore.EXPECT().Get(gomock.Any(), "i:1").Return(nil, false, fmt.Errorf("%w: get i:1", domain.ErrStoreUnavailable))
	uc := newUseCase(scoring.New(nil, mockStore, newTestLogger()), nil)

	reply := uc.Handle(context.Background(), domain.Request{Body: request(t, domain.MethodClientsInterests, `{"client_ids": [1, 2]}`)})

	assert.Equal(t, domain.CodeInternalError, reply.Code)
	assert.Empty(t, reply.Error)
	assert.Nil(t, reply.Response)
}

func TestHandle_PanicRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := mocks.NewMockIScoringUseCase(ctrl)
	mockScoring.EXPECT().Score(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.ScoreArguments) float64 { panic("boom") })
	uc := newUseCase(nil, mockScoring)

	reply := uc.Handle(context.Background(), domain.Request{
		Body: request(t, domain.MethodOnlineScore, `{"first_name": "a", "last_name": "b"}`),
	})

	assert.Equal(t, domain.CodeInternalError, reply.Code)
}

// Каждый вызов пишется в историю и публикуется в брокер; их сбои не влияют на ответ.
func TestHandle_RecordsCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScoring := mocks.NewMockIScoringUseCase(ctrl)
	mockRepo := mocks.NewMockICallRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockScoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(0.5)
	gomock.InOrder(
		mockRepo.EXPECT().SaveCall(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, call domain.Call) error {
				assert.Equal(t, "req-1", call.RequestID)
				assert.Equal(t, domain.MethodOnlineScore, call.Method)
				assert.Equal(t, "h&f", call.Login)
				assert.Equal(t, domain.CodeOK, call.Code)
				assert.Equal(t, []string{"first_name", "last_name"}, call.Has)
				require.NotNil(t, call.Score)
				assert.Equal(t, 0.5, *call.Score)
				return errors.New("db down")
			}),
		mockBroker.EXPECT().Send(gomock.Any(), []byte("req-1"), gomock.Any()).Return(errors.New("kafka down")),
	)

	v := NewVerifier(testAuthConfig())
	uc := New(mockScoring, v, mockRepo, mockBroker, nil, newTestLogger())

	reply := uc.Handle(context.Background(), domain.Request{
		ID:   "req-1",
		Body: request(t, domain.MethodOnlineScore, `{"first_name": "a", "last_name": "b"}`),
	})

	assert.Equal(t, domain.CodeOK, reply.Code)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := []domain.Call{
		{ID: 2, RequestID: "b", Method: domain.MethodClientsInterests, Code: 200, NClients: 3},
		{ID: 1, RequestID: "a", Method: domain.MethodOnlineScore, Code: 403},
	}
	mockRepo := mocks.NewMockICallRepository(ctrl)
	mockRepo.EXPECT().GetHistory(gomock.Any(), HistoryLimit).Return(expected, nil)

	uc := New(nil, NewVerifier(testAuthConfig()), mockRepo, nil, nil, newTestLogger())

	result, err := uc.History(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestHistory_WithoutRepository(t *testing.T) {
	uc := New(nil, NewVerifier(testAuthConfig()), nil, nil, nil, newTestLogger())

	result, err := uc.History(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestHandleCallEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	call := domain.Call{RequestID: "a", Method: domain.MethodOnlineScore, Code: 200}
	mockAnalytics := mocks.NewMockICallAnalytics(ctrl)
	gomock.InOrder(
		mockAnalytics.EXPECT().WriteCall(gomock.Any(), call).Return(nil),
		mockAnalytics.EXPECT().WriteCall(gomock.Any(), call).Return(errors.New("click down")),
	)

	uc := New(nil, NewVerifier(testAuthConfig()), nil, nil, mockAnalytics, newTestLogger())

	assert.NoError(t, uc.HandleCallEvent(context.Background(), call))
	assert.Error(t, uc.HandleCallEvent(context.Background(), call))
}
