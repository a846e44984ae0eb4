package model

// Scope carries the identity of the authenticated user through every
// operation. Task and link operations are only valid with a non-empty UserID.
type Scope struct {
	UserID string
	Email  string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
