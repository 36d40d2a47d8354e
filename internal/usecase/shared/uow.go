package shared

import (
	"context"
	"time"

	"tableside/internal/domain/order"
	"tableside/internal/domain/table"
)

// UnitOfWork owns the transaction boundary. Within runs fn inside one
// transaction: fn returning nil commits, anything else rolls back. Repository
// accessors on the UnitOfWork itself are pool-bound for reads outside a
// transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Tables() TableRepository
	Orders() OrderRepository
}

// Tx exposes transaction-bound repositories to the closure passed to Within.
type Tx interface {
	Tables() TableRepository
	Orders() OrderRepository
}

// TableRepository is the table-availability contract. Both availability
// queries must agree on one conflict predicate: an instant t conflicts with a
// stored stay when t > installation and (departure is null or t < departure).
type TableRepository interface {
	FindByID(ctx context.Context, id int64) (*table.Table, error)
	FindAll(ctx context.Context) ([]*table.Table, error)
	// Save upserts by id: a zero id takes the next sequence value, a present
	// id updates in place, so retries are idempotent.
	Save(ctx context.Context, t *table.Table) (*table.Table, error)
	IsAvailableAt(ctx context.Context, tableID int64, at time.Time) (bool, error)
	FindAvailableAt(ctx context.Context, at time.Time) ([]*table.Table, error)
	// LockForBooking serializes writers on one table for the rest of the
	// enclosing transaction. Only meaningful on a Tx-bound repository.
	LockForBooking(ctx context.Context, tableID int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (*order.Order, error)
}
