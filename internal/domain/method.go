package domain

import "time"

// Имена поддерживаемых методов.
const (
	MethodOnlineScore      = "online_score"
	MethodClientsInterests = "clients_interests"
)

// Коды ответа API.
const (
	CodeOK             = 200
	CodeBadRequest     = 400
	CodeForbidden      = 403
	CodeNotFound       = 404
	CodeInvalidRequest = 422
	CodeInternalError  = 500
)

// StatusTexts возвращает таблицу стандартных текстов ошибок. Каждый вызов отдаёт новую карту.
func StatusTexts() map[int]string {
	return map[int]string{
		CodeBadRequest:     "Bad Request",
		CodeForbidden:      "Forbidden",
		CodeNotFound:       "Not Found",
		CodeInvalidRequest: "Invalid Request",
		CodeInternalError:  "Internal Server Error",
	}
}

// Пол клиента.
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

// Genders: допустимые значения пола.
var Genders = map[int]string{
	GenderUnknown: "unknown",
	GenderMale:    "male",
	GenderFemale:  "female",
}

// MethodRequest: провалидированный конверт запроса.
type MethodRequest struct {
	Account   string
	Login     string
	Token     string
	Method    string
	Arguments map[string]any
}

// AuthContext: данные вызывающего, вычисляются один раз на запрос.
type AuthContext struct {
	Account string
	Login   string
	Token   string
	IsAdmin bool
}

// ScoreArguments: аргументы online_score после валидации. Пустые строки и nil означают «не передано».
type ScoreArguments struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Birthday  *time.Time
	Gender    *int
}

// InterestsArguments: аргументы clients_interests после валидации.
type InterestsArguments struct {
	ClientIDs []int64
	Date      *time.Time
}

// Request: входящий RPC-вызов. Body уже разобран из JSON, числа в нём json.Number.
type Request struct {
	ID   string
	Body map[string]any
}

// Reply: результат обработки вызова.
type Reply struct {
	Code     int
	Response any
	Error    string
	Has      []string
	NClients int
}

// Call: запись об обработанном вызове для истории и аналитики.
type Call struct {
	ID        int       `json:"id,omitempty"`
	RequestID string    `json:"request_id"`
	Method    string    `json:"method"`
	Login     string    `json:"login"`
	Code      int       `json:"code"`
	Has       []string  `json:"has,omitempty"`
	NClients  int       `json:"nclients,omitempty"`
	Score     *float64  `json:"score,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
