package method

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scoringAPI/internal/api/http/middlewares"
	"scoringAPI/internal/domain"
	"scoringAPI/internal/ports"
)

// MaxBodySize ограничивает размер тела RPC-запроса.
const MaxBodySize = 1 << 20

var errNotObject = errors.New("request body is not a JSON object")

// Controller: маршруты RPC: POST /method и история вызовов.
type Controller struct {
	uc    ports.IMethodUseCase
	texts map[int]string
	log   *slog.Logger
}

// New создаёт контроллер. texts: таблица стандартных текстов ошибок по коду.
func New(uc ports.IMethodUseCase, texts map[int]string, log *slog.Logger) *Controller {
	return &Controller{uc: uc, texts: texts, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.POST("/method", c.method)
	r.GET("/api/v1/history", c.history)
}

// @Summary Вызов метода API
// @Description Конверт {account, login, token, method, arguments}. Методы online_score и clients_interests.
// @Tags method
// @Accept json
// @Produce json
// @Success 200 {object} OKResponse
// @Failure 400 {object} ErrorResponse "Тело не разбирается как JSON-объект"
// @Failure 403 {object} ErrorResponse "Неверный токен"
// @Failure 422 {object} ErrorResponse "Невалидный конверт или аргументы"
// @Failure 500 {object} ErrorResponse "Хранилище недоступно"
// @Router /method [post]
func (c *Controller) method(ctx *gin.Context) {
	requestID := ctx.GetString(middlewares.RequestIDKey)

	body, err := readBody(ctx.Request.Body)
	if err != nil {
		c.log.Warn("method body rejected", "request_id", requestID, "error", err)
		c.write(ctx, domain.Reply{Code: domain.CodeBadRequest})
		return
	}

	reply := c.uc.Handle(ctx.Request.Context(), domain.Request{ID: requestID, Body: body})
	c.write(ctx, reply)
}

// readBody разбирает тело как один JSON-объект. Числа остаются json.Number.
func readBody(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodySize))
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	body, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return body, nil
}

func (c *Controller) write(ctx *gin.Context, reply domain.Reply) {
	if reply.Code == domain.CodeOK {
		ctx.JSON(http.StatusOK, OKResponse{Response: reply.Response, Code: reply.Code})
		return
	}
	msg := reply.Error
	if msg == "" {
		msg = c.texts[reply.Code]
	}
	if msg == "" {
		msg = "Unknown Error"
	}
	ctx.JSON(reply.Code, ErrorResponse{Error: msg, Code: reply.Code})
}

// @Summary История вызовов
// @Description Последние вызовы API (новые первыми). limit по умолчанию 100.
// @Tags method
// @Produce json
// @Param limit query int false "Сколько записей вернуть"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit", Code: domain.CodeBadRequest})
			return
		}
		limit = n
	}

	list, err := c.uc.History(ctx.Request.Context(), limit)
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: c.texts[domain.CodeInternalError], Code: domain.CodeInternalError})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, call := range list {
		items[i] = HistoryItem{
			ID:        call.ID,
			RequestID: call.RequestID,
			Method:    call.Method,
			Login:     call.Login,
			Code:      call.Code,
			Has:       call.Has,
			NClients:  call.NClients,
			Score:     call.Score,
			Timestamp: call.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
