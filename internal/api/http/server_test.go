package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"scoringAPI/internal/api/http/middlewares"
)

type pingController struct{}

func (pingController) RegisterRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middlewares.RequestIDKey)) })
}

func newTestServer() http.Handler {
	s := NewServer(ServerConfig{AllowOrigins: []string{"http://localhost:3000"}}, slog.Default())
	s.AddController(pingController{})
	return s.Router()
}

func TestRouter_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not Found","code":404}`, w.Body.String())
}

func TestRouter_RequestID(t *testing.T) {
	h := newTestServer()

	t.Run("из заголовка", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middlewares.RequestIDHeader, "abc")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "abc", w.Header().Get(middlewares.RequestIDHeader))
		assert.Equal(t, "abc", w.Body.String())
	})

	t.Run("сгенерированный", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middlewares.RequestIDHeader)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), id)
		assert.Equal(t, id, w.Body.String())
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/method", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
