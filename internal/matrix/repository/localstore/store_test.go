package localstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"eisenhower-matrix/internal/matrix/repository/localstore"
	"eisenhower-matrix/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.New(dir, 8, time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	duration := 25
	day := model.NewDayData("2026-08-30")
	day.Tasks[model.QuadrantDoNow] = []model.Task{
		{ID: "t1", Title: "Report", Quadrant: model.QuadrantDoNow, Completed: true, DurationMinutes: &duration},
	}
	day.Tasks[model.QuadrantMinimize] = []model.Task{
		{ID: "t2", Title: "Buy milk", Quadrant: model.QuadrantMinimize},
	}
	day.CustomLinks = []model.CustomLink{
		{ID: "l1", Name: "Claude", URL: "https://claude.ai", Type: model.LinkTypeAI},
	}

	if err := store.Save(day.Date, day); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := store.Load(day.Date)
	if err != nil || !found {
		t.Fatalf("Load: found=%v err=%v", found, err)
	}

	// Order-insensitive per quadrant: compare by id set per quadrant.
	for _, q := range model.AllQuadrants {
		want := map[string]bool{}
		for _, task := range day.Tasks[q] {
			want[task.ID] = true
		}
		if len(got.Tasks[q]) != len(want) {
			t.Fatalf("quadrant %s: expected %d tasks, got %d", q, len(want), len(got.Tasks[q]))
		}
		for _, task := range got.Tasks[q] {
			if !want[task.ID] {
				t.Errorf("quadrant %s: unexpected task %s", q, task.ID)
			}
		}
	}

	if got.Tasks[model.QuadrantDoNow][0].DurationMinutes == nil ||
		*got.Tasks[model.QuadrantDoNow][0].DurationMinutes != 25 {
		t.Error("duration lost in round trip")
	}
	if len(got.CustomLinks) != 1 || got.CustomLinks[0].Type != model.LinkTypeAI {
		t.Errorf("links lost in round trip: %v", got.CustomLinks)
	}
}

func TestLoadMissing(t *testing.T) {
	store, err := localstore.New(t.TempDir(), 8, time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, found, err := store.Load("2026-01-01")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("expected no snapshot for unknown date")
	}
}

func TestLoadSurvivesProcessRestart(t *testing.T) {
	dir := t.TempDir()

	store1, _ := localstore.New(dir, 8, time.Minute)
	day := model.NewDayData("2026-08-29")
	day.Tasks[model.QuadrantTrash] = []model.Task{{ID: "t9", Title: "old", Quadrant: model.QuadrantTrash}}
	if err := store1.Save(day.Date, day); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Fresh store, cold cache: must read from disk.
	store2, _ := localstore.New(dir, 8, time.Minute)
	got, found, err := store2.Load("2026-08-29")
	if err != nil || !found {
		t.Fatalf("Load after restart: found=%v err=%v", found, err)
	}
	if len(got.Tasks[model.QuadrantTrash]) != 1 || got.Tasks[model.QuadrantTrash][0].ID != "t9" {
		t.Errorf("unexpected snapshot content: %+v", got.Tasks[model.QuadrantTrash])
	}

	// No stray temp files left behind.
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}
