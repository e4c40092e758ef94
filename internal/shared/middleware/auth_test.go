package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-backend/pkg/jwt"
)

func setupAuthRouter(t *testing.T, manager *jwt.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, 72*time.Hour)
	router := setupAuthRouter(t, manager)

	userID := uuid.New()
	token, err := manager.GenerateAccessToken(userID.String(), "alice@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddlewareRejections(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, 72*time.Hour)
	router := setupAuthRouter(t, manager)

	refresh, err := manager.GenerateRefreshToken(uuid.New().String())
	require.NoError(t, err)

	otherManager := jwt.NewManager("other-secret", 15*time.Minute, 72*time.Hour)
	foreign, err := otherManager.GenerateAccessToken(uuid.New().String(), "x@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc123"},
		{name: "malformed token", header: "Bearer not.a.token"},
		{name: "refresh token not accepted", header: "Bearer " + refresh},
		{name: "token signed with other secret", header: "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
