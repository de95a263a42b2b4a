package system

import "fmt"

// Location categories. RMA locations make a unit eligible for pallet
// membership; the intake category holds a unit's first-ever location.
const (
	CategoryIntake  = "intake"
	CategoryRepair  = "repair"
	CategoryRMA     = "rma"
	CategoryShipped = "shipped"
)

// Location is one node of the small fixed location graph.
type Location struct {
	id       uint
	name     string
	category string
}

func NewLocation(name, category string) (*Location, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("location name is required")
	}
	if len(category) == 0 {
		return nil, fmt.Errorf("location category is required")
	}
	return &Location{name: name, category: category}, nil
}

func ReconstructLocation(id uint, name, category string) (*Location, error) {
	if id == 0 {
		return nil, fmt.Errorf("location ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("location name is required")
	}
	return &Location{id: id, name: name, category: category}, nil
}

func (l *Location) ID() uint {
	return l.id
}

func (l *Location) Name() string {
	return l.name
}

func (l *Location) Category() string {
	return l.category
}

// IsRMA reports whether units at this location are eligible for pallet
// membership.
func (l *Location) IsRMA() bool {
	return l.category == CategoryRMA
}
