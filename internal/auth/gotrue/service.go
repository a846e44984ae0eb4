// Package gotrue implements the auth service against a Supabase GoTrue
// endpoint.
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"eisenhower-matrix/internal/auth"
	"eisenhower-matrix/internal/model"
	pkgLog "eisenhower-matrix/pkg/log"
)

type implService struct {
	l          pkgLog.Logger
	baseURL    string
	anonKey    string
	httpClient *http.Client

	mu          sync.Mutex
	subscribers []chan auth.StateChange
}

// New creates the GoTrue auth service. baseURL is the project root; the
// /auth/v1 prefix is added per call.
func New(l pkgLog.Logger, baseURL, anonKey string, timeout time.Duration) auth.Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &implService{
		l:       l,
		baseURL: baseURL,
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type tokenResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         userBody `json:"user"`
}

type userBody struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"user_metadata"`
}

func (b userBody) toScope() model.Scope {
	return model.Scope{UserID: b.ID, Email: b.Email}
}

func (s *implService) GetCurrentUser(ctx context.Context, accessToken string) (model.Scope, error) {
	var body userBody
	status, err := s.do(ctx, http.MethodGet, "user", accessToken, nil, &body)
	if err != nil {
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return model.Scope{}, auth.ErrInvalidToken
		}
		s.l.Errorf(ctx, "gotrue user lookup failed: %v", err)
		return model.Scope{}, err
	}
	return body.toScope(), nil
}

func (s *implService) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	req := map[string]string{"email": email, "password": password}
	var body tokenResponse
	status, err := s.do(ctx, http.MethodPost, "token?grant_type=password", "", req, &body)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return auth.Session{}, auth.ErrInvalidCredentials
		}
		s.l.Errorf(ctx, "gotrue sign-in failed: %v", err)
		return auth.Session{}, err
	}

	session := auth.Session{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		User:         body.User.toScope(),
	}
	s.notify(auth.StateChange{SignedIn: true, User: session.User})
	return session, nil
}

func (s *implService) SignUp(ctx context.Context, email, password, name string) (auth.Session, error) {
	req := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"name": name},
	}
	var body tokenResponse
	status, err := s.do(ctx, http.MethodPost, "signup", "", req, &body)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusUnprocessableEntity {
			return auth.Session{}, auth.ErrInvalidCredentials
		}
		s.l.Errorf(ctx, "gotrue sign-up failed: %v", err)
		return auth.Session{}, err
	}

	session := auth.Session{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		User:         body.User.toScope(),
	}
	if session.AccessToken != "" {
		s.notify(auth.StateChange{SignedIn: true, User: session.User})
	}
	return session, nil
}

func (s *implService) SignOut(ctx context.Context, accessToken string) error {
	var user model.Scope
	if scope, err := s.GetCurrentUser(ctx, accessToken); err == nil {
		user = scope
	}

	if _, err := s.do(ctx, http.MethodPost, "logout", accessToken, nil, nil); err != nil {
		s.l.Errorf(ctx, "gotrue sign-out failed: %v", err)
		return err
	}
	s.notify(auth.StateChange{SignedIn: false, User: user})
	return nil
}

func (s *implService) Subscribe() <-chan auth.StateChange {
	ch := make(chan auth.StateChange, 8)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()
	return ch
}

func (s *implService) notify(change auth.StateChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- change:
		default:
		}
	}
}

// do performs a call against /auth/v1. The anon key always goes in apikey;
// the bearer token is the user token when given, the anon key otherwise.
// The HTTP status is returned alongside the error so callers can map
// auth-specific failures.
func (s *implService) do(ctx context.Context, method, path, accessToken string, body, out any) (int, error) {
	url := fmt.Sprintf("%s/auth/v1/%s", s.baseURL, path)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	httpReq.Header.Set("apikey", s.anonKey)
	bearer := accessToken
	if bearer == "" {
		bearer = s.anonKey
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", bearer))
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to call gotrue %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, fmt.Errorf("gotrue %s %s error %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode gotrue %s %s response: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}
