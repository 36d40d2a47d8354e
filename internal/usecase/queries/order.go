package queries

import (
	"context"

	"tableside/internal/domain/order"
	"tableside/internal/usecase/shared"
)

type OrderQueries interface {
	GetByID(ctx context.Context, id int64) (*OrderView, error)
}

type orderQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewOrderQueries(uow shared.UnitOfWork) OrderQueries {
	return &orderQueriesImpl{uow: uow}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id int64) (*OrderView, error) {
	o, err := q.uow.Orders().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderView(o), nil
}

func ToOrderView(o *order.Order) *OrderView {
	return &OrderView{
		ID:           o.ID(),
		Reference:    o.Reference(),
		TableID:      o.TableID(),
		Installation: o.Stay().Installation(),
		Departure:    o.Stay().Departure(),
		CreatedAt:    o.CreatedAt(),
	}
}
