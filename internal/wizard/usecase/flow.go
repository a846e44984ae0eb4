package usecase

import (
	"context"
	"strings"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/internal/wizard"
)

// stepDef ties a step to its applicability predicate and answer handler.
// Steps run in declaration order; Next and Back scan for the nearest
// applicable step rather than doing index arithmetic.
type stepDef struct {
	step       wizard.Step
	applicable func(s *session) bool
	apply      func(s *session, in wizard.AnswerInput) error
}

func always(*session) bool { return true }

var steps = []stepDef{
	{
		step:       wizard.StepTitle,
		applicable: always,
		apply: func(s *session, in wizard.AnswerInput) error {
			title := strings.TrimSpace(in.Text)
			if title == "" {
				return wizard.ErrTitleRequired
			}
			s.draft.Title = title
			return nil
		},
	},
	{
		step:       wizard.StepUrgency,
		applicable: always,
		apply: func(s *session, in wizard.AnswerInput) error {
			s.answers.Urgent = in.Yes
			return nil
		},
	},
	{
		step:       wizard.StepImportance,
		applicable: always,
		apply: func(s *session, in wizard.AnswerInput) error {
			s.answers.Important = in.Yes
			return nil
		},
	},
	{
		step:       wizard.StepDetails,
		applicable: always,
		apply: func(s *session, in wizard.AnswerInput) error {
			s.answers.HasDetails = in.Yes
			if !in.Yes {
				s.draft.Description = ""
			}
			return nil
		},
	},
	{
		step:       wizard.StepDescription,
		applicable: func(s *session) bool { return s.answers.HasDetails },
		apply: func(s *session, in wizard.AnswerInput) error {
			s.draft.Description = strings.TrimSpace(in.Text)
			return nil
		},
	},
	{
		step:       wizard.StepProjectMembership,
		applicable: always,
		apply: func(s *session, in wizard.AnswerInput) error {
			s.answers.BelongsToProject = in.Yes
			if !in.Yes {
				s.draft.Project = ""
			}
			return nil
		},
	},
	{
		step:       wizard.StepProjectSelection,
		applicable: func(s *session) bool { return s.answers.BelongsToProject },
		apply: func(s *session, in wizard.AnswerInput) error {
			project := strings.TrimSpace(in.Text)
			if project == "" {
				return wizard.ErrProjectRequired
			}
			s.draft.Project = project
			return nil
		},
	},
	{
		step:       wizard.StepDelegation,
		applicable: delegationApplies,
		apply: func(s *session, in wizard.AnswerInput) error {
			s.answers.CanDelegate = in.Yes
			return nil
		},
	},
	{
		step:       wizard.StepSummary,
		applicable: always,
		apply:      nil, // terminal, answered via Create
	},
}

// delegationApplies holds where the answer can influence the outcome: the
// urgent-not-important track lands in Delegate, and the fully specified
// important track may.
func delegationApplies(s *session) bool {
	if s.answers.Urgent && !s.answers.Important {
		return true
	}
	return !s.answers.Urgent && s.answers.Important &&
		s.answers.BelongsToProject && s.answers.HasDetails
}

func stepIndex(step wizard.Step) int {
	for i, def := range steps {
		if def.step == step {
			return i
		}
	}
	return -1
}

// nextApplicable returns the first applicable step after idx.
func nextApplicable(s *session, idx int) wizard.Step {
	for i := idx + 1; i < len(steps); i++ {
		if steps[i].applicable(s) {
			return steps[i].step
		}
	}
	return wizard.StepSummary
}

// prevApplicable returns the nearest applicable step before idx, or "" when
// none exists.
func prevApplicable(s *session, idx int) wizard.Step {
	for i := idx - 1; i >= 0; i-- {
		if steps[i].applicable(s) {
			return steps[i].step
		}
	}
	return ""
}

func (uc *implUseCase) Start(ctx context.Context, sc model.Scope) (wizard.State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.session = &session{step: wizard.StepTitle}
	return uc.stateLocked(), nil
}

func (uc *implUseCase) State(ctx context.Context, sc model.Scope) (wizard.State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == nil {
		return wizard.State{}, wizard.ErrNotStarted
	}
	return uc.stateLocked(), nil
}

func (uc *implUseCase) Answer(ctx context.Context, sc model.Scope, input wizard.AnswerInput) (wizard.State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == nil {
		return wizard.State{}, wizard.ErrNotStarted
	}

	idx := stepIndex(uc.session.step)
	if idx < 0 || steps[idx].apply == nil {
		return wizard.State{}, wizard.ErrUnexpectedStep
	}
	if err := steps[idx].apply(uc.session, input); err != nil {
		return wizard.State{}, err
	}
	uc.session.step = nextApplicable(uc.session, idx)
	return uc.stateLocked(), nil
}

func (uc *implUseCase) Back(ctx context.Context, sc model.Scope) (wizard.State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == nil {
		return wizard.State{}, wizard.ErrNotStarted
	}

	prev := prevApplicable(uc.session, stepIndex(uc.session.step))
	if prev == "" {
		return wizard.State{}, wizard.ErrAtFirstStep
	}
	uc.session.step = prev
	return uc.stateLocked(), nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope) (model.Task, error) {
	uc.mu.Lock()
	if uc.session == nil {
		uc.mu.Unlock()
		return model.Task{}, wizard.ErrNotStarted
	}
	if uc.session.step != wizard.StepSummary {
		uc.mu.Unlock()
		return model.Task{}, wizard.ErrNotAtSummary
	}
	draft := uc.session.draft
	rec := uc.recommend(uc.session.answers)
	uc.mu.Unlock()

	task, err := uc.matrixUC.CreateTaskDirect(ctx, sc, matrix.DirectCreateInput{
		Title:       draft.Title,
		Description: draft.Description,
		Project:     draft.Project,
		Quadrant:    rec.Quadrant,
	})
	if err != nil {
		uc.l.Errorf(ctx, "wizard create failed: %v", err)
		return model.Task{}, err
	}

	uc.mu.Lock()
	uc.session = nil
	uc.mu.Unlock()
	return task, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope) error {
	uc.mu.Lock()
	uc.session = nil
	uc.mu.Unlock()
	return nil
}

func (uc *implUseCase) stateLocked() wizard.State {
	st := wizard.State{
		Step:    uc.session.step,
		Draft:   uc.session.draft,
		Answers: uc.session.answers,
	}
	if st.Step == wizard.StepSummary {
		rec := uc.recommend(uc.session.answers)
		st.Recommendation = &rec
	}
	return st
}
