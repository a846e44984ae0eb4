package gotrue_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eisenhower-matrix/internal/auth"
	"eisenhower-matrix/internal/auth/gotrue"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestSignIn(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected request %s %s", r.URL.Path, r.URL.RawQuery)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "u@example.com" {
			t.Errorf("email = %q", body["email"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1","user":{"id":"user-1","email":"u@example.com"}}`))
	}))
	defer ts.Close()

	svc := gotrue.New(&mockLogger{}, ts.URL, "anon-key", 5*time.Second)
	changes := svc.Subscribe()

	session, err := svc.SignIn(context.Background(), "u@example.com", "secret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if session.AccessToken != "at-1" || session.User.UserID != "user-1" {
		t.Errorf("session = %+v", session)
	}

	select {
	case change := <-changes:
		if !change.SignedIn || change.User.UserID != "user-1" {
			t.Errorf("state change = %+v", change)
		}
	default:
		t.Error("no state change announced")
	}
}

func TestSignInBadCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	svc := gotrue.New(&mockLogger{}, ts.URL, "anon-key", 5*time.Second)
	if _, err := svc.SignIn(context.Background(), "u@example.com", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer at-1" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("apikey = %q", r.Header.Get("apikey"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-1","email":"u@example.com"}`))
	}))
	defer ts.Close()

	svc := gotrue.New(&mockLogger{}, ts.URL, "anon-key", 5*time.Second)
	scope, err := svc.GetCurrentUser(context.Background(), "at-1")
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if scope.UserID != "user-1" || scope.Email != "u@example.com" {
		t.Errorf("scope = %+v", scope)
	}
}

func TestGetCurrentUserInvalidToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	svc := gotrue.New(&mockLogger{}, ts.URL, "anon-key", 5*time.Second)
	if _, err := svc.GetCurrentUser(context.Background(), "expired"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestSignOutNotifiesSubscribers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/user":
			w.Write([]byte(`{"id":"user-1","email":"u@example.com"}`))
		case "/auth/v1/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	svc := gotrue.New(&mockLogger{}, ts.URL, "anon-key", 5*time.Second)
	changes := svc.Subscribe()

	if err := svc.SignOut(context.Background(), "at-1"); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	select {
	case change := <-changes:
		if change.SignedIn {
			t.Errorf("state change = %+v, want signed out", change)
		}
	default:
		t.Error("no state change announced")
	}
}
