package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := NewService(NewMemoryRepository(), Credentials{Email: "admin@leadcore.io", Password: "s3cret"}, time.Hour)
	h := NewHandler(svc, "test-jwt-secret", 15*time.Minute)
	r := gin.New()
	h.Register(r.Group("/api/auth"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginLogoutFlow(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(t, r, "/api/auth/login", `{"email":"admin@leadcore.io","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken  string `json:"accessToken"`
		SessionToken string `json:"sessionToken"`
		User         struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.SessionToken)
	require.Equal(t, "admin", resp.User.ID)
	require.Equal(t, "admin@leadcore.io", resp.User.Email)

	hdr := http.Header{"X-Session-Token": []string{resp.SessionToken}}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header = hdr.Clone()
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code)
	require.Contains(t, me.Body.String(), "admin@leadcore.io")

	ref := postJSON(t, r, "/api/auth/refresh", "", hdr)
	require.Equal(t, http.StatusOK, ref.Code)
	require.Contains(t, ref.Body.String(), "accessToken")

	out := postJSON(t, r, "/api/auth/logout", "", hdr)
	require.Equal(t, http.StatusNoContent, out.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header = hdr.Clone()
	me2 := httptest.NewRecorder()
	r.ServeHTTP(me2, req)
	require.Equal(t, http.StatusUnauthorized, me2.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(t, r, "/api/auth/login", `{"email":"admin@leadcore.io","password":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/api/auth/login", `{"email":`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeWithoutToken(t *testing.T) {
	r := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
