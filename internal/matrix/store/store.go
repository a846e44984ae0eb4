// Package store holds the in-memory DayData for the currently active date.
// It is owned by the lifecycle manager, which serializes access; the store
// itself performs no locking.
package store

import (
	"sort"

	"eisenhower-matrix/internal/model"
)

// DayStore brokers between the lifecycle manager and the persistence
// collaborator for one calendar date at a time.
type DayStore struct {
	day model.DayData
}

// New returns a store initialized to an empty day.
func New(date string) *DayStore {
	return &DayStore{day: model.NewDayData(date)}
}

// Date returns the active date key.
func (s *DayStore) Date() string {
	return s.day.Date
}

// Reset discards all state and re-initializes for date. Switching dates
// carries nothing over.
func (s *DayStore) Reset(date string) {
	s.day = model.NewDayData(date)
}

// Populate partitions freshly loaded tasks into quadrant collections by their
// stored quadrant field. Tasks with an unrecognized quadrant are dropped, not
// error-raised; the count of dropped tasks is returned for logging.
func (s *DayStore) Populate(date string, tasks []model.Task, links []model.CustomLink) (dropped int) {
	s.Reset(date)
	for _, task := range tasks {
		q, err := model.ParseQuadrant(string(task.Quadrant))
		if err != nil {
			dropped++
			continue
		}
		task.Quadrant = q
		s.day.Tasks[q] = append(s.day.Tasks[q], task)
	}
	s.day.CustomLinks = append(s.day.CustomLinks, links...)
	return dropped
}

// Restore replaces the store content with a snapshot, normalizing missing
// quadrant collections.
func (s *DayStore) Restore(day model.DayData) {
	restored := model.NewDayData(day.Date)
	for _, q := range model.AllQuadrants {
		restored.Tasks[q] = append(restored.Tasks[q], day.Tasks[q]...)
	}
	restored.CustomLinks = append(restored.CustomLinks, day.CustomLinks...)
	s.day = restored
}

// Snapshot returns a deep copy of the current day, safe to hand to the
// fallback store or the delivery layer.
func (s *DayStore) Snapshot() model.DayData {
	copied := model.NewDayData(s.day.Date)
	for _, q := range model.AllQuadrants {
		copied.Tasks[q] = append(copied.Tasks[q], s.day.Tasks[q]...)
	}
	copied.CustomLinks = append(copied.CustomLinks, s.day.CustomLinks...)
	return copied
}

// Insert appends a task to the collection of its own quadrant.
func (s *DayStore) Insert(task model.Task) {
	s.day.Tasks[task.Quadrant] = append(s.day.Tasks[task.Quadrant], task)
}

// Find returns the task with id in quadrant q.
func (s *DayStore) Find(id string, q model.Quadrant) (model.Task, bool) {
	for _, task := range s.day.Tasks[q] {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

// FindAny scans every quadrant for the task with id.
func (s *DayStore) FindAny(id string) (model.Task, model.Quadrant, bool) {
	for _, q := range model.AllQuadrants {
		if task, ok := s.Find(id, q); ok {
			return task, q, true
		}
	}
	return model.Task{}, "", false
}

// Remove deletes the task with id from quadrant q and returns it.
func (s *DayStore) Remove(id string, q model.Quadrant) (model.Task, bool) {
	tasks := s.day.Tasks[q]
	for i, task := range tasks {
		if task.ID == id {
			s.day.Tasks[q] = append(tasks[:i:i], tasks[i+1:]...)
			return task, true
		}
	}
	return model.Task{}, false
}

// Replace swaps the stored task with the given one inside its quadrant
// collection, preserving position.
func (s *DayStore) Replace(task model.Task) bool {
	tasks := s.day.Tasks[task.Quadrant]
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			return true
		}
	}
	return false
}

// Move removes the task from one quadrant and appends it to another, keeping
// the denormalized quadrant field in sync with its physical location.
func (s *DayStore) Move(id string, from, to model.Quadrant) (model.Task, bool) {
	task, ok := s.Remove(id, from)
	if !ok {
		return model.Task{}, false
	}
	task.Quadrant = to
	s.Insert(task)
	return task, true
}

// TasksForDisplay returns quadrant q in presentation order: incomplete tasks
// before completed ones, newest-created first within each group. The ordering
// is recomputed on every read and never persisted.
func (s *DayStore) TasksForDisplay(q model.Quadrant) []model.Task {
	tasks := append([]model.Task(nil), s.day.Tasks[q]...)
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Completed != tasks[j].Completed {
			return !tasks[i].Completed
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}

// Links returns the custom links for the day.
func (s *DayStore) Links() []model.CustomLink {
	return append([]model.CustomLink(nil), s.day.CustomLinks...)
}

// AddLink appends a custom link.
func (s *DayStore) AddLink(link model.CustomLink) {
	s.day.CustomLinks = append(s.day.CustomLinks, link)
}

// RemoveLink deletes the link with id.
func (s *DayStore) RemoveLink(id string) bool {
	for i, link := range s.day.CustomLinks {
		if link.ID == id {
			s.day.CustomLinks = append(s.day.CustomLinks[:i:i], s.day.CustomLinks[i+1:]...)
			return true
		}
	}
	return false
}

// ContainsOnce reports whether each task id in the store appears in exactly
// one quadrant collection. Used by tests to assert the core invariant.
func (s *DayStore) ContainsOnce(id string) bool {
	count := 0
	for _, q := range model.AllQuadrants {
		for _, task := range s.day.Tasks[q] {
			if task.ID == id {
				count++
			}
		}
	}
	return count == 1
}
