package store_test

import (
	"testing"
	"time"

	"eisenhower-matrix/internal/matrix/store"
	"eisenhower-matrix/internal/model"
)

func TestPopulateDropsUnknownQuadrants(t *testing.T) {
	s := store.New("2026-08-30")

	tasks := []model.Task{
		{ID: "t1", Title: "a", Quadrant: model.QuadrantDoNow},
		{ID: "t2", Title: "b", Quadrant: model.Quadrant("urgent")}, // legacy value
		{ID: "t3", Title: "c", Quadrant: model.QuadrantTrash},
	}

	dropped := s.Populate("2026-08-30", tasks, nil)
	if dropped != 1 {
		t.Errorf("expected 1 dropped task, got %d", dropped)
	}
	if _, ok := s.Find("t1", model.QuadrantDoNow); !ok {
		t.Error("t1 missing from doNow")
	}
	if _, _, ok := s.FindAny("t2"); ok {
		t.Error("t2 with unknown quadrant should have been dropped")
	}
}

func TestMoveKeepsInvariant(t *testing.T) {
	s := store.New("2026-08-30")
	s.Insert(model.Task{ID: "t1", Title: "a", Quadrant: model.QuadrantDoNow})

	task, ok := s.Move("t1", model.QuadrantDoNow, model.QuadrantSchedule)
	if !ok {
		t.Fatal("move failed")
	}
	if task.Quadrant != model.QuadrantSchedule {
		t.Errorf("denormalized quadrant not updated: %s", task.Quadrant)
	}
	if !s.ContainsOnce("t1") {
		t.Error("task present in more than one quadrant after move")
	}
	if _, ok := s.Find("t1", model.QuadrantDoNow); ok {
		t.Error("task still present in origin quadrant")
	}
}

func TestDisplayOrdering(t *testing.T) {
	s := store.New("2026-08-30")
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	s.Insert(model.Task{ID: "old-open", Quadrant: model.QuadrantDoNow, CreatedAt: base})
	s.Insert(model.Task{ID: "done", Quadrant: model.QuadrantDoNow, Completed: true, CreatedAt: base.Add(time.Hour)})
	s.Insert(model.Task{ID: "new-open", Quadrant: model.QuadrantDoNow, CreatedAt: base.Add(2 * time.Hour)})

	got := s.TasksForDisplay(model.QuadrantDoNow)
	wantOrder := []string{"new-open", "old-open", "done"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s (full: %v)", i, got[i].ID, id, ids(got))
		}
	}

	// Insertion order underneath must be untouched.
	if _, ok := s.Find("old-open", model.QuadrantDoNow); !ok {
		t.Error("display ordering mutated the store")
	}
}

func TestSnapshotIsDeepEnough(t *testing.T) {
	s := store.New("2026-08-30")
	s.Insert(model.Task{ID: "t1", Quadrant: model.QuadrantMinimize})

	snap := s.Snapshot()
	snap.Tasks[model.QuadrantMinimize][0].Title = "mutated"
	snap.Tasks[model.QuadrantDoNow] = append(snap.Tasks[model.QuadrantDoNow], model.Task{ID: "ghost"})

	if task, _ := s.Find("t1", model.QuadrantMinimize); task.Title == "mutated" {
		t.Error("snapshot aliases store memory")
	}
	if _, _, ok := s.FindAny("ghost"); ok {
		t.Error("snapshot append leaked into store")
	}
}

func TestResetCarriesNothingOver(t *testing.T) {
	s := store.New("2026-08-30")
	s.Insert(model.Task{ID: "t1", Quadrant: model.QuadrantDoNow})
	s.AddLink(model.CustomLink{ID: "l1", Name: "x", URL: "https://x", Type: model.LinkTypeTool})

	s.Reset("2026-08-31")
	if s.Date() != "2026-08-31" {
		t.Errorf("date not switched: %s", s.Date())
	}
	if _, _, ok := s.FindAny("t1"); ok {
		t.Error("task carried over across date switch")
	}
	if len(s.Links()) != 0 {
		t.Error("links carried over across date switch")
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}
