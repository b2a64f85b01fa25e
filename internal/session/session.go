// Package session holds the signed-in user's token and profile, persists
// them in a kvstore, and wraps outgoing requests with the bearer credential.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	apperrors "bizdesk/internal/errors"
	"bizdesk/internal/kvstore"
	"bizdesk/internal/logger"
	"bizdesk/internal/models"
	"bizdesk/internal/requestid"
	"bizdesk/internal/validator"
)

// Keys under which the session is persisted.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// HTTPDoer sends HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Store.
type Option func(*Store)

// WithLogoutHook registers fn to run after every logout, including the
// forced logout that follows a 401.
func WithLogoutHook(fn func()) Option {
	return func(s *Store) { s.onLogout = fn }
}

// Store is the session store. It is safe for concurrent use.
type Store struct {
	baseURL  string
	http     HTTPDoer
	kv       kvstore.Store
	onLogout func()

	mu      sync.RWMutex
	current *models.Session
}

// New returns a Store talking to baseURL and restores any session persisted
// in kv. A persisted session that cannot be decoded is discarded.
func New(ctx context.Context, baseURL string, doer HTTPDoer, kv kvstore.Store, opts ...Option) (*Store, error) {
	if doer == nil {
		doer = http.DefaultClient
	}
	s := &Store{baseURL: baseURL, http: doer, kv: kv}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) restore(ctx context.Context) error {
	token, hasToken, err := s.kv.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("restore session token: %w", err)
	}
	raw, hasUser, err := s.kv.Get(ctx, UserKey)
	if err != nil {
		return fmt.Errorf("restore session user: %w", err)
	}
	if !hasToken && !hasUser {
		return nil
	}

	var profile models.Profile
	if hasToken && hasUser && token != "" {
		if err := json.Unmarshal([]byte(raw), &profile); err == nil && profile.Username != "" {
			s.current = &models.Session{Token: token, User: profile}
			return nil
		}
	}

	logger.Get().Warnw("Discarding incomplete persisted session", "has_token", hasToken, "has_user", hasUser)
	return s.kv.Delete(ctx, TokenKey, UserKey)
}

// IsAuthenticated reports whether both a token and a user profile are held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Token != "" && s.current.User.Username != ""
}

// Session returns a copy of the current session.
func (s *Store) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// Login authenticates against the collaborator and persists the session.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := validator.Struct(creds); err != nil {
		return models.Session{}, err
	}

	resp, err := s.send(ctx, http.MethodPost, "/api/auth/login", "", creds)
	if err != nil {
		return models.Session{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return models.Session{}, reclassify(apperrors.ErrInvalidCredentials, apperrors.FromResponse(resp))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Session{}, apperrors.FromResponse(resp)
	}

	var auth models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return models.Session{}, apperrors.Wrap(apperrors.ErrRequestFailed, fmt.Errorf("decode login response: %w", err))
	}
	if auth.Token == "" || auth.Username == "" {
		return models.Session{}, apperrors.WithMessage(apperrors.ErrRequestFailed, "Login response did not include a session")
	}

	sess := auth.Session()
	if err := s.persist(ctx, sess); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	logger.Get().Infow("Signed in", "username", sess.User.Username, "role", sess.User.Role)
	return sess, nil
}

// Register creates a new sign-in account. It does not sign in.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	if err := validator.Struct(req); err != nil {
		return models.AuthResponse{}, err
	}
	if req.ConfirmPassword != req.Password {
		return models.AuthResponse{}, apperrors.Validation(apperrors.FieldError{
			Field: "confirmPassword", Rule: "eqfield", Message: "Passwords do not match",
		})
	}

	resp, err := s.send(ctx, http.MethodPost, "/api/auth/register", "", req)
	if err != nil {
		return models.AuthResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.AuthResponse{}, apperrors.FromResponse(resp)
	}

	var auth models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return models.AuthResponse{}, apperrors.Wrap(apperrors.ErrRequestFailed, fmt.Errorf("decode register response: %w", err))
	}
	return auth, nil
}

// Logout clears the in-memory and persisted session. It is safe to call
// when no session is held.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	err := s.kv.Delete(ctx, TokenKey, UserKey)
	if s.onLogout != nil {
		s.onLogout()
	}
	if err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

// AuthorizedRequest sends a request carrying the bearer token. body, when
// non-nil, is encoded as JSON.
//
// Without a session it fails with UNAUTHENTICATED and sends nothing. A 401
// response logs the session out and fails with SESSION_EXPIRED. A 403
// response fails with FORBIDDEN and keeps the session. Any other response
// is returned to the caller, who must close its body.
func (s *Store) AuthorizedRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	sess, ok := s.Session()
	if !ok || sess.Token == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	resp, err := s.send(ctx, method, path, sess.Token, body)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		drain(resp)
		logger.Get().Warnw("Session rejected by server, signing out", "username", sess.User.Username, "path", path)
		if err := s.Logout(ctx); err != nil {
			logger.Get().Warnw("Failed to clear session", "error", err)
		}
		return nil, apperrors.ErrSessionExpired
	case http.StatusForbidden:
		defer resp.Body.Close()
		return nil, reclassify(apperrors.ErrForbidden, apperrors.FromResponse(resp))
	}
	return resp, nil
}

// Verify asks the collaborator who the token belongs to and refreshes the
// stored profile. Failures are returned as is; cached data is never used in
// place of a failed verification.
func (s *Store) Verify(ctx context.Context) (models.CurrentAccount, error) {
	resp, err := s.AuthorizedRequest(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return models.CurrentAccount{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.CurrentAccount{}, apperrors.FromResponse(resp)
	}

	var me models.CurrentAccount
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return models.CurrentAccount{}, apperrors.Wrap(apperrors.ErrRequestFailed, fmt.Errorf("decode profile: %w", err))
	}

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return me, nil
	}
	s.current.User = me.Profile()
	updated := *s.current
	s.mu.Unlock()

	if err := s.persist(ctx, updated); err != nil {
		return me, err
	}
	return me, nil
}

func (s *Store) persist(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.kv.Set(ctx, TokenKey, sess.Token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	if err := s.kv.Set(ctx, UserKey, string(raw)); err != nil {
		return fmt.Errorf("persist session user: %w", err)
	}
	return nil
}

// send builds and dispatches a request. Transport failures are reported as
// NETWORK_ERROR.
func (s *Store) send(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	ctx, rid := requestid.Ensure(ctx)
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.Header, rid)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		logger.Get().Debugw("Request failed", "method", method, "path", path, "request_id", rid, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrNetwork, err)
	}
	logger.Get().Debugw("Request completed", "method", method, "path", path, "status", resp.StatusCode, "request_id", rid)
	return resp, nil
}

// reclassify gives a decoded error response the code of sentinel, keeping
// the server's message when it sent one.
func reclassify(sentinel, srv *apperrors.AppError) *apperrors.AppError {
	appErr := apperrors.WithMessage(sentinel, sentinel.Message)
	appErr.ServerMessage = srv.ServerMessage
	appErr.Body = srv.Body
	if srv.ServerMessage != "" {
		appErr.Message = srv.ServerMessage
	}
	return appErr
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()
}
