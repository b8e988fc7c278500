package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leadcore/cms-backend/internal/tokens"
)

// sessionHeader carries the persistent session token. The client stores it
// and replays it after a reload to get back a fresh access token.
const sessionHeader = "X-Session-Token"

// Handler exposes login/logout/session endpoints for the admin shell.
type Handler struct {
	svc       *Service
	jwtSecret string
	accessTTL time.Duration
}

func NewHandler(svc *Service, jwtSecret string, accessTTL time.Duration) *Handler {
	return &Handler{svc: svc, jwtSecret: jwtSecret, accessTTL: accessTTL}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/login", h.login)
	r.POST("/refresh", h.refresh)
	r.POST("/logout", h.logout)
	r.GET("/me", h.me)
}

func (h *Handler) issueAccessToken(c *gin.Context, sess *Session) (string, bool) {
	access, err := tokens.GenerateAccessToken(h.jwtSecret, sess.Email, h.accessTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return "", false
	}
	return access, true
}

func (h *Handler) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	access, ok := h.issueAccessToken(c, sess)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accessToken":  access,
		"sessionToken": sess.Token,
		"user":         gin.H{"id": sess.ID, "email": sess.Email},
	})
}

// refresh exchanges a stored session token for a new access token.
func (h *Handler) refresh(c *gin.Context) {
	sess, err := h.svc.Current(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	access, ok := h.issueAccessToken(c, sess)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": access})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), c.GetHeader(sessionHeader)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) me(c *gin.Context) {
	sess, err := h.svc.Current(c.Request.Context(), c.GetHeader(sessionHeader))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": sess.ID, "email": sess.Email}})
}
