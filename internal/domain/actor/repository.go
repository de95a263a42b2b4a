package actor

import "context"

// PasswordHasher hashes and verifies actor credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type ActorRepository interface {
	Save(ctx context.Context, a *Actor) error
	GetByID(ctx context.Context, actorID uint) (*Actor, error)
	GetByEmail(ctx context.Context, email string) (*Actor, error)
	// GetDeletedPlaceholder returns the reserved placeholder actor, creating
	// it is a seed concern.
	GetDeletedPlaceholder(ctx context.Context) (*Actor, error)
}
