package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned on a failed login. Deliberately carries
// no detail about which part of the credential pair was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the configured admin credential pair. This service is a
// single-admin placeholder; a real identity provider would replace it rather
// than extend it.
type Credentials struct {
	Email    string
	Password string
}

// Service checks the admin credential and manages persisted sessions.
type Service struct {
	repo  Repository
	creds Credentials
	ttl   time.Duration
}

func NewService(repo Repository, creds Credentials, ttl time.Duration) *Service {
	return &Service{repo: repo, creds: creds, ttl: ttl}
}

// Login validates the credential pair and stores a new session, returning it
// with a fresh opaque token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.creds.Email))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password))
	if emailOK&passOK != 1 {
		return nil, ErrInvalidCredentials
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sess := &Session{
		ID:        "admin",
		Token:     hex.EncodeToString(b),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Current resolves a token to its session, or nil when the token is unknown
// or expired.
func (s *Service) Current(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}
	return s.repo.GetByToken(ctx, token)
}

// Logout removes the stored session. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteByToken(ctx, token)
}
