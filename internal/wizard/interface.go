package wizard

import (
	"context"

	"eisenhower-matrix/internal/model"
)

// UseCase is the guided questionnaire that recommends a quadrant. It is
// advisory only: the recommendation table is independent from the classifier
// and the produced task is placed directly, bypassing classification.
type UseCase interface {
	// Start discards any in-progress session and opens a fresh one at the
	// title step.
	Start(ctx context.Context, sc model.Scope) (State, error)
	// State returns the current session state.
	State(ctx context.Context, sc model.Scope) (State, error)
	// Answer records the answer for the current step and advances to the next
	// applicable step.
	Answer(ctx context.Context, sc model.Scope, input AnswerInput) (State, error)
	// Back returns to the previous applicable step, keeping recorded answers.
	Back(ctx context.Context, sc model.Scope) (State, error)
	// Create places the drafted task into the recommended quadrant. Only valid
	// at the summary step; the session ends on success.
	Create(ctx context.Context, sc model.Scope) (model.Task, error)
	// Cancel abandons the session, if any.
	Cancel(ctx context.Context, sc model.Scope) error
}
