package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/recipeshelf/backend/internal/middleware"
	"github.com/recipeshelf/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*types.TokenClaims, error) {
	return s.claims, s.err
}

func newAuthTestRouter(validator middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(validator))
	router.GET("/whoami", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID.(uuid.UUID)})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	validRouter := newAuthTestRouter(&stubValidator{claims: &types.TokenClaims{UserID: userID, Name: "alice"}})
	rejectRouter := newAuthTestRouter(&stubValidator{err: errors.New("token expired")})

	tests := []struct {
		name     string
		router   *gin.Engine
		header   string
		wantCode int
	}{
		{"valid token", validRouter, "Bearer good-token", http.StatusOK},
		{"missing header", validRouter, "", http.StatusUnauthorized},
		{"malformed header", validRouter, "good-token", http.StatusUnauthorized},
		{"wrong scheme", validRouter, "Basic good-token", http.StatusUnauthorized},
		{"rejected token", rejectRouter, "Bearer bad-token", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			tt.router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
			}
		})
	}
}
