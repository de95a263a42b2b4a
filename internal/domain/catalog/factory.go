// Package catalog holds the reference entities pallets are scoped to:
// destination factories and part numbers.
package catalog

import (
	"fmt"
	"strings"
)

// Factory is a destination facility identified by a short code used in
// pallet numbers (e.g. "AUS").
type Factory struct {
	id   uint
	code string
	name string
}

func NewFactory(code, name string) (*Factory, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == 0 {
		return nil, fmt.Errorf("factory code is required")
	}
	return &Factory{code: code, name: name}, nil
}

func ReconstructFactory(id uint, code, name string) (*Factory, error) {
	if id == 0 {
		return nil, fmt.Errorf("factory ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("factory code is required")
	}
	return &Factory{id: id, code: code, name: name}, nil
}

func (f *Factory) ID() uint {
	return f.id
}

func (f *Factory) Code() string {
	return f.code
}

func (f *Factory) Name() string {
	return f.name
}
