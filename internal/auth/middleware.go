package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SystemUser is the actor recorded for work done outside a request
const SystemUser = "system"

type contextKey string

const (
	usernameKey contextKey = "username"
	emailKey    contextKey = "email"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		// Set user context
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(ContextWithUser(c.Request.Context(), claims.Username, claims.Email))

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return "", false
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return "", false
	}
	return tokenString, true
}

// ContextWithUser stores the session user on a context
func ContextWithUser(ctx context.Context, username, email string) context.Context {
	ctx = context.WithValue(ctx, usernameKey, username)
	return context.WithValue(ctx, emailKey, email)
}

// UserFromContext returns the session user: the username, else the email, else SystemUser
func UserFromContext(ctx context.Context) string {
	if ctx == nil {
		return SystemUser
	}
	if username, ok := ctx.Value(usernameKey).(string); ok && username != "" {
		return username
	}
	if email, ok := ctx.Value(emailKey).(string); ok && email != "" {
		return email
	}
	return SystemUser
}

// EmailFromContext returns the session user's email if known
func EmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
