package table

import (
	"errors"
)

var (
	ErrInvalidNumber   = errors.New("table number must be positive")
	ErrInvalidCapacity = errors.New("table capacity must be positive")
)

// Table is a physical restaurant table. The id is assigned by the persistence
// layer; number is the user-facing identifier printed in diagnostics.
type Table struct {
	id       int64
	number   int
	capacity int
}

func NewTable(number, capacity int) (*Table, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Table{
		number:   number,
		capacity: capacity,
	}, nil
}

// ReconstructTable rehydrates a persisted row without re-validation.
func ReconstructTable(id int64, number, capacity int) *Table {
	return &Table{
		id:       id,
		number:   number,
		capacity: capacity,
	}
}

// WithID returns a copy carrying the id assigned by the store.
func (t *Table) WithID(id int64) *Table {
	return &Table{
		id:       id,
		number:   t.number,
		capacity: t.capacity,
	}
}

func (t *Table) ID() int64     { return t.id }
func (t *Table) Number() int   { return t.number }
func (t *Table) Capacity() int { return t.capacity }
