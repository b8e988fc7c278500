package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	claims map[string]interface{}
	err    error
}

func (f *fakeVerifier) Verify(ctx context.Context, raw string) (map[string]interface{}, error) {
	return f.claims, f.err
}

func TestAuthMiddleware(t *testing.T) {
	newRouter := func(v Verifier) *gin.Engine {
		r := gin.New()
		r.GET("/p", AuthMiddleware(v), func(c *gin.Context) {
			claims, _ := c.Get("claims")
			c.JSON(http.StatusOK, claims)
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		r := newRouter(&fakeVerifier{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/p", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := newRouter(&fakeVerifier{})
		req := httptest.NewRequest("GET", "/p", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		r := newRouter(&fakeVerifier{err: errors.New("expired")})
		req := httptest.NewRequest("GET", "/p", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		r := newRouter(&fakeVerifier{claims: map[string]interface{}{"sub": "admin"}})
		req := httptest.NewRequest("GET", "/p", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "admin")
	})
}
