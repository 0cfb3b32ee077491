package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"team-management-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	service := auth.NewAuthService("test-secret")
	userID := uuid.New()

	t.Run("Round Trip", func(t *testing.T) {
		token, err := service.GenerateToken(userID, time.Hour)
		require.NoError(t, err)

		parsed, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := auth.NewAuthService("other-secret")
		token, err := other.GenerateToken(userID, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := service.GenerateToken(userID, -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := auth.NewAuthService("test-secret")
	middleware := auth.NewAuthMiddleware(service)
	userID := uuid.New()

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		id, ok := auth.UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "connection": auth.ConnectionID(c)})
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := service.GenerateToken(userID, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set(auth.ConnectionHeader, "device-3")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), userID.String())
		assert.Contains(t, recorder.Body.String(), "device-3")
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Not Bearer", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
