package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsRouter(t *testing.T, enabled bool, origins string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if mw := createCORSMiddleware(enabled, origins, slog.Default()); mw != nil {
		router.Use(mw)
	}
	router.POST("/v1/serials", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func TestCreateCORSMiddleware_Nil(t *testing.T) {
	assert.Nil(t, createCORSMiddleware(false, "https://app.example.com", slog.Default()))
	assert.Nil(t, createCORSMiddleware(true, "", slog.Default()))
	assert.Nil(t, createCORSMiddleware(true, " , ,", slog.Default()))
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		parseOrigins(" https://app.example.com ,,https://admin.example.com "),
	)
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := corsRouter(t, true, "https://app.example.com, https://admin.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/serials", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RejectedOrigin(t *testing.T) {
	router := corsRouter(t, true, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/serials", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	router := corsRouter(t, true, "*")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/serials", nil)
	req.Header.Set("Origin", "https://anything.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Disabled(t *testing.T) {
	router := corsRouter(t, false, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/serials", nil)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	router := corsRouter(t, true, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/serials", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
}
