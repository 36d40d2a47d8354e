package commands

import (
	"context"

	"tableside/internal/domain/table"
	"tableside/internal/pkg/errs"
	"tableside/internal/usecase/queries"
	"tableside/internal/usecase/shared"
)

var ErrSaveTableFailed = errs.New("failed to save table")

type NewTableInput struct {
	// ID is optional: zero means the store assigns the next sequence value,
	// a present id upserts in place (idempotent retry).
	ID       int64
	Number   int
	Capacity int
}

type TableCommands interface {
	SaveTable(ctx context.Context, input NewTableInput) (*queries.TableView, error)
}

type tableCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewTableCommands(uow shared.UnitOfWork) TableCommands {
	return &tableCommandsImpl{uow: uow}
}

func (c *tableCommandsImpl) SaveTable(ctx context.Context, input NewTableInput) (*queries.TableView, error) {
	entity, err := table.NewTable(input.Number, input.Capacity)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to save table"), ErrSaveTableFailed)
	}
	if input.ID != 0 {
		entity = entity.WithID(input.ID)
	}

	var saved *table.Table
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, err := tx.Tables().Save(ctx, entity)
		if err != nil {
			return err
		}
		saved = result
		return nil
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to save table"), ErrSaveTableFailed)
	}

	return &queries.TableView{
		ID:       saved.ID(),
		Number:   saved.Number(),
		Capacity: saved.Capacity(),
	}, nil
}
