// Package rules holds the named, swappable decision tables that place tasks
// into quadrants. Two classifier revisions exist in the product history and
// both stay selectable by configuration; hard-coding either one is a bug.
package rules

import (
	"fmt"

	"eisenhower-matrix/internal/model"
)

// ClassifierFunc maps task attributes to a quadrant. Pure and total: callers
// guarantee title is a non-empty trimmed string, description and project may
// be empty.
type ClassifierFunc func(title, description, project string) model.Quadrant

// Classifier table versions.
const (
	ClassifierClassic = "classic"
	ClassifierRevised = "revised"
)

var classifiers = map[string]ClassifierFunc{
	ClassifierClassic: classifyClassic,
	ClassifierRevised: classifyRevised,
}

// Classifier returns the classifier table registered under version.
func Classifier(version string) (ClassifierFunc, error) {
	fn, ok := classifiers[version]
	if !ok {
		return nil, fmt.Errorf("unknown classifier version %q", version)
	}
	return fn, nil
}

// classifyClassic is the initial rule table:
// all three fields → Delegate; title+description → DoNow;
// title+project → Schedule; title only → Minimize.
func classifyClassic(title, description, project string) model.Quadrant {
	switch {
	case title != "" && description != "" && project != "":
		return model.QuadrantDelegate
	case title != "" && description != "":
		return model.QuadrantDoNow
	case title != "" && project != "":
		return model.QuadrantSchedule
	default:
		return model.QuadrantMinimize
	}
}

// classifyRevised is the later revision: anything with a description or a
// project (but not both plus a description) plans ahead, bare titles are
// acted on immediately.
func classifyRevised(title, description, project string) model.Quadrant {
	switch {
	case title != "" && description != "" && project != "":
		return model.QuadrantDelegate
	case title != "" && description != "":
		return model.QuadrantSchedule
	case title != "" && project != "":
		return model.QuadrantSchedule
	default:
		return model.QuadrantDoNow
	}
}
