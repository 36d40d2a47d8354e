package queries

import (
	"context"
	"time"

	"tableside/internal/domain/table"
	"tableside/internal/usecase/shared"
)

type TableQueries interface {
	GetByID(ctx context.Context, id int64) (*TableView, error)
	List(ctx context.Context) ([]*TableView, error)
	ListAvailableAt(ctx context.Context, at time.Time) ([]*TableView, error)
}

type tableQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewTableQueries(uow shared.UnitOfWork) TableQueries {
	return &tableQueriesImpl{uow: uow}
}

func (q *tableQueriesImpl) GetByID(ctx context.Context, id int64) (*TableView, error) {
	t, err := q.uow.Tables().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTableView(t), nil
}

func (q *tableQueriesImpl) List(ctx context.Context) ([]*TableView, error) {
	rows, err := q.uow.Tables().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toTableViews(rows), nil
}

func (q *tableQueriesImpl) ListAvailableAt(ctx context.Context, at time.Time) ([]*TableView, error) {
	rows, err := q.uow.Tables().FindAvailableAt(ctx, at)
	if err != nil {
		return nil, err
	}
	return toTableViews(rows), nil
}

func toTableView(t *table.Table) *TableView {
	return &TableView{
		ID:       t.ID(),
		Number:   t.Number(),
		Capacity: t.Capacity(),
	}
}

func toTableViews(rows []*table.Table) []*TableView {
	result := make([]*TableView, len(rows))
	for i, t := range rows {
		result[i] = toTableView(t)
	}
	return result
}
