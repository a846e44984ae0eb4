package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/matrix/repository/supabase"
	"eisenhower-matrix/internal/model"
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

func TestGetTasks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/tasks" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("apikey") == "" {
			t.Error("missing apikey header")
		}
		q := r.URL.Query()
		if q.Get("user_id") != "eq.user-1" || q.Get("date") != "eq.2026-08-30" {
			t.Errorf("unexpected filters: %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"t1","user_id":"user-1","title":"Report","description":"Q3","project":"proj-A","quadrant":"delegate","completed":false,"duration_minutes":null,"date":"2026-08-30","created_at":"2026-08-30T09:00:00Z","updated_at":"2026-08-30T09:00:00Z"},
			{"id":"t2","user_id":"user-1","title":"Buy milk","description":"","project":"","quadrant":"minimize","completed":true,"duration_minutes":10,"date":"2026-08-30","created_at":"2026-08-30T10:00:00Z","updated_at":"2026-08-30T10:05:00Z"}
		]`))
	}))
	defer ts.Close()

	client := supabase.NewClient(ts.URL, "anon-key", 5*time.Second)
	repo := supabase.NewTaskRepository(client, &mockLogger{})

	tasks, err := repo.GetTasks(context.Background(), "user-1", "2026-08-30")
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Quadrant != model.QuadrantDelegate {
		t.Errorf("expected delegate, got %s", tasks[0].Quadrant)
	}
	if tasks[1].DurationMinutes == nil || *tasks[1].DurationMinutes != 10 {
		t.Errorf("expected duration 10, got %v", tasks[1].DurationMinutes)
	}
}

func TestCreateTask(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Prefer") != "return=representation" {
			t.Error("missing Prefer header")
		}

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["title"] != "Report" || body["quadrant"] != "delegate" {
			t.Errorf("unexpected insert body: %v", body)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":"srv-1","user_id":"user-1","title":"Report","quadrant":"delegate","completed":false,"date":"2026-08-30","created_at":"2026-08-30T09:00:00Z","updated_at":"2026-08-30T09:00:00Z"}]`))
	}))
	defer ts.Close()

	client := supabase.NewClient(ts.URL, "anon-key", 5*time.Second)
	repo := supabase.NewTaskRepository(client, &mockLogger{})

	task, err := repo.CreateTask(context.Background(), "user-1", repository.CreateTaskOptions{
		Title:    "Report",
		Quadrant: model.QuadrantDelegate,
		Date:     "2026-08-30",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID != "srv-1" {
		t.Errorf("expected server-assigned id, got %q", task.ID)
	}
}

func TestUpdateTaskClearsDuration(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Query().Get("id") != "eq.t1" {
			t.Errorf("unexpected id filter: %v", r.URL.Query())
		}

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if v, ok := body["duration_minutes"]; !ok || v != nil {
			t.Errorf("expected explicit null duration_minutes, got %v", body)
		}
		if body["completed"] != false {
			t.Errorf("expected completed=false, got %v", body["completed"])
		}

		w.Write([]byte(`[{"id":"t1","title":"Buy milk","quadrant":"minimize","completed":false,"duration_minutes":null,"date":"2026-08-30","created_at":"2026-08-30T09:00:00Z","updated_at":"2026-08-30T11:00:00Z"}]`))
	}))
	defer ts.Close()

	client := supabase.NewClient(ts.URL, "anon-key", 5*time.Second)
	repo := supabase.NewTaskRepository(client, &mockLogger{})

	completed := false
	task, err := repo.UpdateTask(context.Background(), "t1", repository.UpdateTaskOptions{
		Completed:     &completed,
		ClearDuration: true,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if task.DurationMinutes != nil {
		t.Errorf("expected cleared duration, got %v", task.DurationMinutes)
	}
}

func TestDeleteTaskError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer ts.Close()

	client := supabase.NewClient(ts.URL, "anon-key", 5*time.Second)
	repo := supabase.NewTaskRepository(client, &mockLogger{})

	if err := repo.DeleteTask(context.Background(), "t1"); err == nil {
		t.Fatal("expected error from 500 response")
	}
}
