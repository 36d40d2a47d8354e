package commands

import (
	"context"
	"time"

	"tableside/internal/domain/order"
	"tableside/internal/pkg/clock"
	"tableside/internal/pkg/errs"
	"tableside/internal/usecase/queries"
	"tableside/internal/usecase/shared"
)

var (
	ErrTableNotFound    = errs.New("table not found")
	ErrTableUnavailable = errs.New("table unavailable")
	ErrSaveOrderFailed  = errs.New("failed to save order")
)

type NewOrderInput struct {
	Reference    string
	TableID      int64
	Installation time.Time
	Departure    *time.Time
	// CreatedAt is optional; the writer defaults it to the clock's now.
	CreatedAt *time.Time
}

type OrderCommands interface {
	SaveOrder(ctx context.Context, input NewOrderInput) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	uow       shared.UnitOfWork
	validator *AvailabilityValidator
	clock     clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, validator *AvailabilityValidator, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:       uow,
		validator: validator,
		clock:     clk,
	}
}

// SaveOrder persists a new order as one atomic unit: lock the table, validate
// availability, insert, commit. Every failure rolls back and surfaces as a
// single save error with the original cause message preserved; the unit of
// work logs rollback failures instead of letting them mask the cause.
func (c *orderCommandsImpl) SaveOrder(ctx context.Context, input NewOrderInput) (*queries.OrderView, error) {
	createdAt := c.clock.Now()
	if input.CreatedAt != nil {
		createdAt = *input.CreatedAt
	}

	entity, err := order.NewOrder(input.Reference, input.TableID, input.Installation, input.Departure, createdAt)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to save order"), ErrSaveOrderFailed)
	}

	var orderID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serialize writers per table inside the same transaction as the
		// availability check, closing the check-then-act race.
		if err := tx.Tables().LockForBooking(ctx, entity.TableID()); err != nil {
			return err
		}

		if err := c.validator.Validate(ctx, tx.Tables(), entity); err != nil {
			return err
		}

		id, err := tx.Orders().Create(ctx, entity)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to save order"), ErrSaveOrderFailed)
	}

	saved, err := c.uow.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read back saved order")
	}

	return queries.ToOrderView(saved), nil
}
