package catalog

import (
	"fmt"
	"strings"
)

// PartNumber identifies the part a pallet carries.
type PartNumber struct {
	id          uint
	name        string
	description string
}

func NewPartNumber(name, description string) (*PartNumber, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("part number name is required")
	}
	return &PartNumber{name: name, description: description}, nil
}

func ReconstructPartNumber(id uint, name, description string) (*PartNumber, error) {
	if id == 0 {
		return nil, fmt.Errorf("part number ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("part number name is required")
	}
	return &PartNumber{id: id, name: name, description: description}, nil
}

func (p *PartNumber) ID() uint {
	return p.id
}

func (p *PartNumber) Name() string {
	return p.name
}

func (p *PartNumber) Description() string {
	return p.description
}
