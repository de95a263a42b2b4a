// Package constants defines shared application constants.
package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Gin context keys populated by the auth middleware.
const (
	ContextKeyActorID   = "actor_id"
	ContextKeyActorRole = "actor_role"
)
