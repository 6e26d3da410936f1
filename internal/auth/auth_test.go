package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	service, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key"})
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		config := &AuthConfig{}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("defaults applied", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "test-secret"}

		err := config.ValidateConfig()
		assert.NoError(t, err)
		assert.Equal(t, "sysmayal-backend", config.Issuer)
		assert.Equal(t, time.Hour, config.TokenTTL)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateJWT("jadams", "jennifer.adams@globalaloe.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token, "Token should not be empty")

	claims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "jadams", claims.Username)
	assert.Equal(t, "jennifer.adams@globalaloe.com", claims.Email)
	assert.Equal(t, "jadams", claims.Subject)
	assert.Equal(t, "jadams", claims.Actor())
}

func TestGenerateJWTRequiresIdentity(t *testing.T) {
	service := newTestService(t)

	_, err := service.GenerateJWT("", "")
	assert.Error(t, err)
}

func TestValidateJWTRejectsForeignTokens(t *testing.T) {
	service := newTestService(t)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "another-key"})
		require.NoError(t, err)
		token, err := other.GenerateJWT("jadams", "")
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := newTestService(t)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := expired.GenerateJWT("jadams", "")
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestActor(t *testing.T) {
	assert.Equal(t, "kweber@eurwellness.de", (&AuthClaims{Email: "kweber@eurwellness.de"}).Actor())
	assert.Equal(t, SystemUser, (&AuthClaims{}).Actor())
}

func TestUserFromContext(t *testing.T) {
	assert.Equal(t, SystemUser, UserFromContext(context.Background()))

	ctx := ContextWithUser(context.Background(), "", "robert.chen@globalaloe.com")
	assert.Equal(t, "robert.chen@globalaloe.com", UserFromContext(ctx))
	assert.Equal(t, "robert.chen@globalaloe.com", EmailFromContext(ctx))

	ctx = ContextWithUser(context.Background(), "rchen", "robert.chen@globalaloe.com")
	assert.Equal(t, "rchen", UserFromContext(ctx))
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		username, _ := GetUsername(c)
		c.JSON(http.StatusOK, gin.H{"user": username, "actor": UserFromContext(c.Request.Context())})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := service.GenerateJWT("jadams", "jennifer.adams@globalaloe.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "jadams", body["user"])
		assert.Equal(t, "jadams", body["actor"])
	})
}

func TestValidateTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	handler := NewAuthHandler(service)

	router := gin.New()
	router.POST("/api/auth/validate", handler.ValidateToken)

	token, err := service.GenerateJWT("kweber", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response AuthValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Valid)
	assert.Equal(t, "kweber", response.Claims.Username)
}
