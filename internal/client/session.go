package client

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/viharinalla/student-dashboard/internal/config"
	"github.com/viharinalla/student-dashboard/internal/model"
)

// LoginFailedMessage is the login error text when the server gives no reason.
const LoginFailedMessage = "Login failed"

// LoginError carries the server's rejection text.
type LoginError struct {
	StatusCode int
	Message    string
}

func (e *LoginError) Error() string { return e.Message }

// persistedSession is the document stored under config.AuthSessionKey.
type persistedSession struct {
	User  *model.User `json:"user"`
	Token *string     `json:"token"`
}

// Session is the signed-in user and token, mirrored to a Store. Store
// failures are logged and otherwise ignored; the in-memory state stays
// authoritative.
type Session struct {
	api   *API
	store Store
	log   zerolog.Logger

	mu    sync.RWMutex
	user  *model.User
	token string
}

// NewSession creates an empty session. Call Hydrate to restore a stored one.
func NewSession(api *API, store Store, log zerolog.Logger) *Session {
	return &Session{
		api:   api,
		store: store,
		log:   log.With().Str("component", "session").Logger(),
	}
}

// Hydrate loads the stored session. Missing or unreadable data leaves the
// session signed out.
func (s *Session) Hydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, config.AuthSessionKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.log.Warn().Err(err).Msg("failed to read stored session")
		}
		return
	}

	var p persistedSession
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn().Err(err).Msg("ignoring corrupt stored session")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = p.User
	s.token = ""
	if p.Token != nil {
		s.token = *p.Token
	}
}

// Login signs in through the API. On rejection the error is a *LoginError
// whose message is the response body, or LoginFailedMessage when the body is
// empty. Transport errors are returned as is.
func (s *Session) Login(ctx context.Context, email, password, name string) (*model.User, error) {
	resp, err := s.api.Login(ctx, model.LoginRequest{Email: email, Password: password, Name: name})
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			msg := se.Body
			if strings.TrimSpace(msg) == "" {
				msg = LoginFailedMessage
			}
			return nil, &LoginError{StatusCode: se.StatusCode, Message: msg}
		}
		return nil, err
	}

	user := resp.User
	s.mu.Lock()
	s.user = &user
	s.token = resp.Token
	s.mu.Unlock()

	s.persist(ctx, &user, resp.Token)
	return &user, nil
}

// Logout clears the session and removes the stored copy.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Delete(ctx, config.AuthSessionKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to remove stored session")
	}
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) persist(ctx context.Context, user *model.User, token string) {
	raw, err := json.Marshal(persistedSession{User: user, Token: &token})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode session")
		return
	}
	if err := s.store.Set(ctx, config.AuthSessionKey, raw); err != nil {
		s.log.Warn().Err(err).Msg("failed to store session")
	}
}
