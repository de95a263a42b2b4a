// Package actor models the people (and one system placeholder) performing
// depot operations.
package actor

import (
	"fmt"
	"strings"
	"time"
)

// DeletedActorName is the display name of the reserved placeholder actor.
// History entries written by actors who were later removed are reassigned
// to it, and any authenticated actor may undo entries it owns.
const DeletedActorName = "deleted"

// Actor is an operator or administrator of the depot.
type Actor struct {
	id           uint
	name         string
	email        string
	passwordHash string
	isAdmin      bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewActor(name, email, passwordHash string, isAdmin bool) (*Actor, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("actor name is required")
	}

	now := time.Now()
	return &Actor{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructActor(id uint, name, email, passwordHash string, isAdmin bool, createdAt, updatedAt time.Time) (*Actor, error) {
	if id == 0 {
		return nil, fmt.Errorf("actor ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("actor name is required")
	}

	return &Actor{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Actor) ID() uint {
	return a.id
}

func (a *Actor) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("actor ID already set")
	}
	a.id = id
	return nil
}

func (a *Actor) Name() string {
	return a.name
}

func (a *Actor) Email() string {
	return a.email
}

func (a *Actor) PasswordHash() string {
	return a.passwordHash
}

func (a *Actor) IsAdmin() bool {
	return a.isAdmin
}

func (a *Actor) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Actor) UpdatedAt() time.Time {
	return a.updatedAt
}

// IsDeletedPlaceholder reports whether this is the reserved placeholder
// actor whose entries anyone may retract.
func (a *Actor) IsDeletedPlaceholder(deletedActorID uint) bool {
	return a.id == deletedActorID
}
