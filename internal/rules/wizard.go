package rules

import (
	"fmt"

	"eisenhower-matrix/internal/model"
)

// WizardAnswers is the boolean answer set the questionnaire collects.
type WizardAnswers struct {
	Urgent           bool
	Important        bool
	HasDetails       bool
	BelongsToProject bool
	CanDelegate      bool
}

// Recommendation is the wizard's advisory output.
type Recommendation struct {
	Quadrant model.Quadrant
	Reason   string
}

// WizardFunc maps a complete answer set to a recommendation. The wizard table
// is deliberately independent from the classifier: the wizard is advisory and
// the two are allowed to diverge.
type WizardFunc func(a WizardAnswers) Recommendation

// WizardDefault is the only wizard table version currently shipped.
const WizardDefault = "default"

var wizardTables = map[string]WizardFunc{
	WizardDefault: recommendDefault,
}

// WizardTable returns the wizard table registered under version.
func WizardTable(version string) (WizardFunc, error) {
	fn, ok := wizardTables[version]
	if !ok {
		return nil, fmt.Errorf("unknown wizard table version %q", version)
	}
	return fn, nil
}

func recommendDefault(a WizardAnswers) Recommendation {
	if a.Urgent && a.Important {
		return Recommendation{
			Quadrant: model.QuadrantDoNow,
			Reason:   "urgent and important, needs immediate attention",
		}
	}

	if !a.Urgent && a.Important {
		if a.BelongsToProject && a.HasDetails && a.CanDelegate {
			return Recommendation{
				Quadrant: model.QuadrantDelegate,
				Reason:   "important but not urgent, fully specified and delegatable",
			}
		}
		if a.BelongsToProject {
			return Recommendation{
				Quadrant: model.QuadrantSchedule,
				Reason:   "important, not urgent, and belongs to a project",
			}
		}
		return Recommendation{
			Quadrant: model.QuadrantDoNow,
			Reason:   "important and needs your personal attention",
		}
	}

	if a.Urgent && !a.Important {
		return Recommendation{
			Quadrant: model.QuadrantDelegate,
			Reason:   "urgent but not important, ideal to delegate",
		}
	}

	return Recommendation{
		Quadrant: model.QuadrantMinimize,
		Reason:   "neither urgent nor important, reconsider whether it is needed",
	}
}
