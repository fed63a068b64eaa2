package method

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"sort"
	"time"

	"scoringAPI/internal/domain"
	"scoringAPI/internal/validation"
)

// Handle проводит запрос по конвейеру: конверт, токен, выбор метода, аргументы метода, бизнес-операция.
// Паника внутри метода превращается в код 500, процесс продолжает работу.
func (u *UseCase) Handle(ctx context.Context, req domain.Request) (reply domain.Reply) {
	call := domain.Call{RequestID: req.ID, Timestamp: time.Now()}
	defer func() {
		if r := recover(); r != nil {
			u.log.Error("method panic", "request_id", req.ID, "panic", r, "stack", string(debug.Stack()))
			reply = domain.Reply{Code: domain.CodeInternalError}
		}
		call.Code = reply.Code
		call.Has = reply.Has
		call.NClients = reply.NClients
		u.log.Info("method handled",
			"request_id", req.ID,
			"method", call.Method,
			"code", reply.Code,
			"has", reply.Has,
			"nclients", reply.NClients,
		)
		u.record(ctx, call)
	}()

	mreq, err := validation.ParseEnvelope(req.Body)
	if err != nil {
		u.log.Warn("invalid envelope", "request_id", req.ID, "error", err)
		return domain.Reply{Code: domain.CodeInvalidRequest, Error: err.Error()}
	}
	call.Method = mreq.Method
	call.Login = mreq.Login

	if err := u.auth.Verify(u.auth.Context(mreq)); err != nil {
		u.log.Warn("auth failed", "request_id", req.ID, "error", err)
		return domain.Reply{Code: domain.CodeForbidden, Error: domain.StatusTexts()[domain.CodeForbidden]}
	}

	switch mreq.Method {
	case domain.MethodOnlineScore:
		var score float64
		reply, score = u.onlineScore(ctx, req.ID, mreq.Arguments)
		if reply.Code == domain.CodeOK {
			call.Score = &score
		}
		return reply
	case domain.MethodClientsInterests:
		return u.clientsInterests(ctx, req.ID, mreq.Arguments)
	default:
		err := fmt.Errorf("%w: %s", domain.ErrUnsupportedMethod, mreq.Method)
		u.log.Warn("invalid method", "request_id", req.ID, "error", err)
		return domain.Reply{Code: domain.CodeInvalidRequest, Error: "Unsupported method was given"}
	}
}

func (u *UseCase) onlineScore(ctx context.Context, requestID string, arguments map[string]any) (domain.Reply, float64) {
	args, err := validation.ParseScoreArguments(arguments)
	if err != nil {
		u.log.Warn("invalid arguments", "request_id", requestID, "error", err)
		return domain.Reply{Code: domain.CodeInvalidRequest, Error: err.Error()}, 0
	}
	score := u.scoring.Score(ctx, args)
	return domain.Reply{
		Code:     domain.CodeOK,
		Response: map[string]any{"score": score},
		Has:      presentKeys(arguments),
	}, score
}

func (u *UseCase) clientsInterests(ctx context.Context, requestID string, arguments map[string]any) domain.Reply {
	args, err := validation.ParseInterestsArguments(arguments)
	if err != nil {
		u.log.Warn("invalid arguments", "request_id", requestID, "error", err)
		return domain.Reply{Code: domain.CodeInvalidRequest, Error: err.Error()}
	}

	response := make(map[string][]string, len(args.ClientIDs))
	for _, id := range args.ClientIDs {
		interests, err := u.scoring.Interests(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrStoreUnavailable) {
				u.log.Error("store unavailable", "request_id", requestID, "client_id", id, "error", err)
			} else {
				u.log.Error("interests lookup failed", "request_id", requestID, "client_id", id, "error", err)
			}
			return domain.Reply{Code: domain.CodeInternalError}
		}
		response[fmt.Sprintf("client%d", id)] = interests
	}
	return domain.Reply{
		Code:     domain.CodeOK,
		Response: response,
		NClients: len(args.ClientIDs),
	}
}

// presentKeys возвращает отсортированные ключи аргументов с не-null значениями.
func presentKeys(arguments map[string]any) []string {
	has := make([]string, 0, len(arguments))
	for key, value := range arguments {
		if value != nil {
			has = append(has, key)
		}
	}
	sort.Strings(has)
	return has
}

// record сохраняет вызов в историю и публикует событие. Сбои только логируются.
func (u *UseCase) record(ctx context.Context, call domain.Call) {
	if u.calls != nil {
		if err := u.calls.SaveCall(ctx, call); err != nil {
			u.log.Warn("call save", "request_id", call.RequestID, "error", err)
		}
	}
	if u.broker == nil {
		return
	}
	value, err := json.Marshal(call)
	if err != nil {
		u.log.Warn("call marshal", "request_id", call.RequestID, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(call.RequestID), value); err != nil {
		u.log.Warn("broker send", "request_id", call.RequestID, "error", err)
	} else {
		u.log.Debug("call published", "request_id", call.RequestID, "method", call.Method)
	}
}

// History возвращает последние вызовы (обвязка над репозиторием). Без репозитория список пуст.
func (u *UseCase) History(ctx context.Context, limit int) ([]domain.Call, error) {
	if u.calls == nil {
		return []domain.Call{}, nil
	}
	if limit <= 0 {
		limit = HistoryLimit
	}
	return u.calls.GetHistory(ctx, limit)
}

// HandleCallEvent вызывается консьюмером при получении события из топика вызовов.
func (u *UseCase) HandleCallEvent(ctx context.Context, call domain.Call) error {
	if u.analytics == nil {
		return errors.New("analytics is not configured")
	}
	if err := u.analytics.WriteCall(ctx, call); err != nil {
		u.log.Warn("analytics write", "request_id", call.RequestID, "error", err)
		return err
	}
	u.log.Info("call stored to click", "request_id", call.RequestID, "method", call.Method, "code", call.Code)
	return nil
}
