package wizard

import (
	"eisenhower-matrix/internal/rules"
)

// Step identifies one question of the flow. Steps form a fixed order but an
// individual step only appears when its applicability predicate holds for the
// answers collected so far.
type Step string

const (
	StepTitle             Step = "title"
	StepUrgency           Step = "urgency"
	StepImportance        Step = "importance"
	StepDetails           Step = "details"
	StepDescription       Step = "description"
	StepProjectMembership Step = "projectMembership"
	StepProjectSelection  Step = "projectSelection"
	StepDelegation        Step = "delegation"
	StepSummary           Step = "summary"
)

// AnswerInput carries the answer to the current step. Text steps read Text,
// yes/no steps read Yes; the other field is ignored.
type AnswerInput struct {
	Text string
	Yes  bool
}

// Draft is the task under construction.
type Draft struct {
	Title       string
	Description string
	Project     string
}

// State is the presentable session state after any transition. Recommendation
// is set only at the summary step.
type State struct {
	Step           Step
	Draft          Draft
	Answers        rules.WizardAnswers
	Recommendation *rules.Recommendation
}
