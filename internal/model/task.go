package model

import (
	"fmt"
	"time"
)

// Quadrant is one of the four Eisenhower buckets plus the trash bucket for
// soft-deleted tasks. The wire strings match the persistence schema and must
// not change.
type Quadrant string

const (
	QuadrantDoNow    Quadrant = "doNow"
	QuadrantSchedule Quadrant = "schedule"
	QuadrantDelegate Quadrant = "delegate"
	QuadrantMinimize Quadrant = "minimize"
	QuadrantTrash    Quadrant = "trash"
)

// AllQuadrants lists every quadrant in display order.
var AllQuadrants = []Quadrant{
	QuadrantDoNow,
	QuadrantSchedule,
	QuadrantDelegate,
	QuadrantMinimize,
	QuadrantTrash,
}

// ParseQuadrant validates a stored quadrant string against the closed
// enumeration. Loaded tasks carrying anything else are dropped by the day
// store, not errored on.
func ParseQuadrant(s string) (Quadrant, error) {
	switch q := Quadrant(s); q {
	case QuadrantDoNow, QuadrantSchedule, QuadrantDelegate, QuadrantMinimize, QuadrantTrash:
		return q, nil
	}
	return "", fmt.Errorf("unrecognized quadrant %q", s)
}

// Task is a single task on one day's matrix. Quadrant is denormalized onto
// the task; the lifecycle manager keeps it equal to the collection the task
// physically lives in.
type Task struct {
	ID              string
	Title           string
	Description     string
	Project         string // Project ID, weak reference
	Quadrant        Quadrant
	Completed       bool
	DurationMinutes *int   // set only through the duration-capture flow
	Date            string // ISO day key of the DayData the task belongs to
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
