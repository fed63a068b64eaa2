package middlewares

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader: заголовок с идентификатором запроса (и во входе, и в ответе).
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey: ключ gin.Context, под которым лежит идентификатор запроса.
	RequestIDKey = "request_id"
)

// RequestID берёт идентификатор из X-Request-ID или генерирует новый (uuid без дефисов)
// и возвращает его в заголовке ответа.
func RequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	c.Set(RequestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLogger логирует каждый запрос: метод, путь, статус, длительность, client IP, request id.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		clientIP := c.ClientIP()
		method := c.Request.Method

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		log.Info("request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"ip", clientIP,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(RequestIDKey),
		)
	}
}
