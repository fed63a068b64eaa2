package method

import "time"

// OKResponse: успешный ответ RPC.
type OKResponse struct {
	Response any `json:"response"`
	Code     int `json:"code"`
}

// ErrorResponse: ответ RPC с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// HistoryItem: одна запись истории вызовов (для GET /api/v1/history).
type HistoryItem struct {
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

// HistoryResponse: список вызовов.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
