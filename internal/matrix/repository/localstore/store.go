// Package localstore is the keyed-by-date fallback snapshot store. It is only
// consulted when the primary persistence collaborator is unreachable at load
// time, and written through on every successful day load/mutation.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/model"
)

type implStore struct {
	dir   string
	cache *expirable.LRU[string, model.DayData]
}

// New creates a file-backed snapshot store rooted at dir with an expiring
// read cache in front of it.
func New(dir string, cacheSize int, cacheTTL time.Duration) (repository.SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create localstore dir %s: %w", dir, err)
	}
	if cacheSize <= 0 {
		cacheSize = 64
	}
	return &implStore{
		dir:   dir,
		cache: expirable.NewLRU[string, model.DayData](cacheSize, nil, cacheTTL),
	}, nil
}

func (s *implStore) Save(date string, day model.DayData) error {
	raw, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("failed to marshal day %s: %w", date, err)
	}

	// Write-then-rename so a crash never leaves a torn snapshot.
	path := s.pathFor(date)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", date, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit snapshot %s: %w", date, err)
	}

	s.cache.Add(date, day)
	return nil
}

func (s *implStore) Load(date string) (model.DayData, bool, error) {
	if day, ok := s.cache.Get(date); ok {
		return day, true, nil
	}

	raw, err := os.ReadFile(s.pathFor(date))
	if err != nil {
		if os.IsNotExist(err) {
			return model.DayData{}, false, nil
		}
		return model.DayData{}, false, fmt.Errorf("failed to read snapshot %s: %w", date, err)
	}

	var day model.DayData
	if err := json.Unmarshal(raw, &day); err != nil {
		return model.DayData{}, false, fmt.Errorf("failed to decode snapshot %s: %w", date, err)
	}

	s.cache.Add(date, day)
	return day, true, nil
}

func (s *implStore) pathFor(date string) string {
	return filepath.Join(s.dir, date+".json")
}
