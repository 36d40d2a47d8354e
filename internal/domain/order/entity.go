package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingTableID      = errors.New("table id is required")
	ErrMissingInstallation = errors.New("installation datetime is required")
)

// Order is a seated reservation of one table. Orders are created only through
// the order writer, which validates availability before the insert.
type Order struct {
	id        int64
	reference string
	tableID   int64
	stay      Stay
	createdAt time.Time
}

// NewOrder validates the candidate before any I/O happens. An empty reference
// gets a generated one; a zero createdAt is the caller's job to default from
// its clock.
func NewOrder(reference string, tableID int64, installation time.Time, departure *time.Time, createdAt time.Time) (*Order, error) {
	if tableID == 0 {
		return nil, ErrMissingTableID
	}
	if installation.IsZero() {
		return nil, ErrMissingInstallation
	}

	stay, err := NewStay(installation, departure)
	if err != nil {
		return nil, err
	}

	if reference == "" {
		reference = uuid.NewString()
	}

	return &Order{
		reference: reference,
		tableID:   tableID,
		stay:      stay,
		createdAt: createdAt,
	}, nil
}

// ReconstructOrder rehydrates a persisted row without re-validation.
func ReconstructOrder(id int64, reference string, tableID int64, installation time.Time, departure *time.Time, createdAt time.Time) *Order {
	return &Order{
		id:        id,
		reference: reference,
		tableID:   tableID,
		stay:      Stay{installation: installation, departure: departure},
		createdAt: createdAt,
	}
}

func (o *Order) ID() int64            { return o.id }
func (o *Order) Reference() string    { return o.reference }
func (o *Order) TableID() int64       { return o.tableID }
func (o *Order) Stay() Stay           { return o.stay }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
