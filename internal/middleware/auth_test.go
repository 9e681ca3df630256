package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftconnect/internal/middleware"
	jwtsvc "craftconnect/internal/pkg/jwt"
)

func newAuthRouter(j *jwtsvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.Auth(j), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func TestAuth(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	r := newAuthRouter(j)

	get := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token", func(t *testing.T) {
		token, err := j.GenerateToken(7, "artisan")
		require.NoError(t, err)

		w := get("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
		assert.Contains(t, w.Body.String(), `"role":"artisan"`)
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get("").Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get("Basic abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get("Bearer not.a.token").Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwtsvc.New("other-secret", time.Hour)
		token, err := other.GenerateToken(7, "artisan")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get("Bearer "+token).Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwtsvc.New("test-secret", -time.Hour)
		token, err := expired.GenerateToken(7, "artisan")
		require.NoError(t, err)

		w := get("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})
}
