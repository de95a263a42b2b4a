// Package system models the physical units ("systems") tracked through the
// depot, their location catalog, and the append-only location history chain.
package system

import (
	"fmt"
	"strings"
	"time"
)

// System is a physical unit identified by its immutable service tag. Its
// current location must always equal the to-location of the newest history
// entry.
type System struct {
	id         uint
	tag        string
	issue      string
	ppid       string
	locationID *uint
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSystem(tag, issue string) (*System, error) {
	tag = strings.TrimSpace(tag)
	if len(tag) == 0 {
		return nil, fmt.Errorf("service tag is required")
	}
	if len(tag) > 64 {
		return nil, fmt.Errorf("service tag exceeds maximum length of 64 characters")
	}

	now := time.Now()
	return &System{
		tag:       tag,
		issue:     issue,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSystem(
	id uint,
	tag string,
	issue string,
	ppid string,
	locationID *uint,
	createdAt, updatedAt time.Time,
) (*System, error) {
	if id == 0 {
		return nil, fmt.Errorf("system ID cannot be zero")
	}
	if len(tag) == 0 {
		return nil, fmt.Errorf("service tag is required")
	}

	return &System{
		id:         id,
		tag:        tag,
		issue:      issue,
		ppid:       ppid,
		locationID: locationID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (s *System) ID() uint {
	return s.id
}

func (s *System) Tag() string {
	return s.tag
}

func (s *System) Issue() string {
	return s.issue
}

func (s *System) PPID() string {
	return s.ppid
}

// HasPPID reports whether the unit carries a product identifier. Every
// member must have one before its pallet can be released.
func (s *System) HasPPID() bool {
	return strings.TrimSpace(s.ppid) != ""
}

func (s *System) LocationID() *uint {
	return s.locationID
}

func (s *System) CreatedAt() time.Time {
	return s.createdAt
}

func (s *System) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *System) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("system ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("system ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *System) SetPPID(ppid string) {
	s.ppid = strings.TrimSpace(ppid)
	s.updatedAt = time.Now()
}

// MoveTo updates the unit's current location. Only the location history
// ledger may call this; it keeps the chain and the pointer in step.
func (s *System) MoveTo(locationID *uint, at time.Time) {
	s.locationID = locationID
	s.updatedAt = at
}
