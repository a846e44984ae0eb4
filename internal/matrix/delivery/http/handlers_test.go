package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"eisenhower-matrix/config"
	"eisenhower-matrix/internal/auth"
	"eisenhower-matrix/internal/matrix"
	matrixHTTP "eisenhower-matrix/internal/matrix/delivery/http"
	"eisenhower-matrix/internal/middleware"
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/pkg/response"
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

type mockAuth struct{}

func (m *mockAuth) GetCurrentUser(ctx context.Context, token string) (model.Scope, error) {
	if token != "at-1" {
		return model.Scope{}, auth.ErrInvalidToken
	}
	return model.Scope{UserID: "user-1"}, nil
}
func (m *mockAuth) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	return auth.Session{}, nil
}
func (m *mockAuth) SignUp(ctx context.Context, email, password, name string) (auth.Session, error) {
	return auth.Session{}, nil
}
func (m *mockAuth) SignOut(ctx context.Context, token string) error { return nil }
func (m *mockAuth) Subscribe() <-chan auth.StateChange              { return nil }

// mockUseCase returns canned values; only the methods the tests hit matter.
type mockUseCase struct {
	matrix.UseCase
	createErr  error
	deleteErr  error
	lastCreate matrix.CreateTaskInput
}

func (m *mockUseCase) CreateTask(ctx context.Context, sc model.Scope, input matrix.CreateTaskInput) (model.Task, error) {
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.lastCreate = input
	return model.Task{
		ID:        "t1",
		Title:     input.Title,
		Quadrant:  model.QuadrantMinimize,
		CreatedAt: time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
	}, nil
}

func (m *mockUseCase) DeleteTask(ctx context.Context, sc model.Scope, taskID string, quadrant model.Quadrant) error {
	return m.deleteErr
}

func newRouter(uc matrix.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, &mockAuth{}, config.RateLimitConfig{})
	matrixHTTP.RegisterRoutes(r.Group("/api/v1"), matrixHTTP.New(&mockLogger{}, uc), mw)
	return r
}

func doReq(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer at-1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTaskHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := doReq(r, http.MethodPost, "/api/v1/tasks", `{"title":"Buy milk"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID        string `json:"id"`
			Quadrant  string `json:"quadrant"`
			CreatedAt string `json:"created_at"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.ID != "t1" || resp.Data.Quadrant != "minimize" {
		t.Errorf("data = %+v", resp.Data)
	}
	if _, err := time.Parse(response.DateTimeFormat, resp.Data.CreatedAt); err != nil {
		t.Errorf("created_at = %q, not a %s timestamp", resp.Data.CreatedAt, response.DateTimeFormat)
	}
	if uc.lastCreate.Title != "Buy milk" {
		t.Errorf("input title = %q", uc.lastCreate.Title)
	}
}

func TestCreateTaskValidationError(t *testing.T) {
	uc := &mockUseCase{createErr: matrix.ErrEmptyTitle}
	r := newRouter(uc)

	w := doReq(r, http.MethodPost, "/api/v1/tasks", `{"title":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	uc := &mockUseCase{deleteErr: matrix.ErrTaskNotFound}
	r := newRouter(uc)

	w := doReq(r, http.MethodDelete, "/api/v1/tasks/t9?quadrant=doNow", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteTaskRequiresQuadrant(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := doReq(r, http.MethodDelete, "/api/v1/tasks/t1", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ErrorCode != http.StatusBadRequest || resp.Message != "quadrant is required" {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestRoutesRequireAuth(t *testing.T) {
	r := newRouter(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"title":"x"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
