// Package auth is the identity collaborator. The session layer treats it as
// an oracle: tokens go in, a Scope comes out, and state changes are announced
// to subscribers.
package auth

import (
	"context"
	"errors"

	"eisenhower-matrix/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Session is an authenticated identity with its tokens.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         model.Scope
}

// StateChange announces a sign-in or sign-out to subscribers.
type StateChange struct {
	SignedIn bool
	User     model.Scope
}

// Service authenticates users and resolves tokens to scopes.
type Service interface {
	GetCurrentUser(ctx context.Context, accessToken string) (model.Scope, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignUp(ctx context.Context, email, password, name string) (Session, error)
	SignOut(ctx context.Context, accessToken string) error
	// Subscribe registers a listener for auth state changes. The channel is
	// buffered; a slow listener misses events rather than blocking sign-in.
	Subscribe() <-chan StateChange
}
