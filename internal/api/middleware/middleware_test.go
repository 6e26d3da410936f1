package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sysmayal-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())

	t.Run("generates an id", func(t *testing.T) {
		recorder := serve(router, httptest.NewRequest("GET", "/ping", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, recorder.Header().Get(RequestIDHeader), 36)
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")

		recorder := serve(router, req)

		assert.Equal(t, "req-123", recorder.Header().Get(RequestIDHeader))
		assert.JSONEq(t, `{"request_id":"req-123"}`, recorder.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(RequestID(), Logger(), Recovery())

	req := httptest.NewRequest("GET", "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-panic")
	recorder := serve(router, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error","request_id":"req-panic"}`, recorder.Body.String())
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name            string
		allowed         []string
		origin          string
		wantOrigin      string
		wantCredentials string
	}{
		{"listed origin", []string{"https://portal.sysmayal.com"}, "https://portal.sysmayal.com", "https://portal.sysmayal.com", "true"},
		{"unlisted origin", []string{"https://portal.sysmayal.com"}, "https://evil.example.com", "", ""},
		{"wildcard never allows credentials", []string{"*"}, "https://any.example.com", "*", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(CORS(&config.Config{AllowedOrigins: tt.allowed}))
			req := httptest.NewRequest("GET", "/ping", nil)
			req.Header.Set("Origin", tt.origin)

			recorder := serve(router, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.wantOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, recorder.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newRouter(CORS(&config.Config{AllowedOrigins: []string{"https://portal.sysmayal.com"}}))
	router.OPTIONS("/ping", func(c *gin.Context) {
		t.Fatal("preflight must not reach the handler")
	})
	req := httptest.NewRequest("OPTIONS", "/ping", nil)
	req.Header.Set("Origin", "https://portal.sysmayal.com")

	recorder := serve(router, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
