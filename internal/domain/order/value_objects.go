package order

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStay = errors.New("departure must be after installation")

// Stay is the interval a table is occupied: [installation, departure).
// A nil departure is an open-ended seating that blocks indefinitely.
type Stay struct {
	installation time.Time
	departure    *time.Time
}

func NewStay(installation time.Time, departure *time.Time) (Stay, error) {
	if departure != nil && !departure.After(installation) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{installation: installation, departure: departure}, nil
}

func (s Stay) Installation() time.Time {
	return s.installation
}

func (s Stay) Departure() *time.Time {
	return s.departure
}

func (s Stay) IsOpenEnded() bool {
	return s.departure == nil
}

// Blocks reports whether instant t conflicts with this stay. The comparison is
// open on both ends: a request exactly at installation or departure admits.
func (s Stay) Blocks(t time.Time) bool {
	if !t.After(s.installation) {
		return false
	}
	if s.departure == nil {
		return true
	}
	return t.Before(*s.departure)
}

func (s Stay) String() string {
	if s.departure == nil {
		return fmt.Sprintf("[%s,)", s.installation.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%s,%s)", s.installation.Format(time.RFC3339), s.departure.Format(time.RFC3339))
}
