package repository

import (
	"context"
	"time"

	"tableside/internal/domain/order"
	"tableside/internal/infra"
	"tableside/internal/infra/db"
	"tableside/internal/infra/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (int64, error) {
	const sql = `INSERT INTO "order" (reference, creation_datetime, id_table, installation_datetime, departure_datetime)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, sql,
		o.Reference(),
		o.CreatedAt(),
		o.TableID(),
		o.Stay().Installation(),
		pgconv.TimestamptzFromPtr(o.Stay().Departure()),
	).Scan(&id)
	if err != nil {
		switch {
		case pgconv.IsExclusionViolation(err):
			// The schema's stay-overlap guard caught a booking race.
			return 0, infra.WrapRepoErr("table already booked for this interval", err, infra.KindConflict)
		case pgconv.IsForeignKeyViolation(err):
			return 0, infra.WrapRepoErr("order references unknown table", err, infra.KindForeignKeyViolated)
		default:
			return 0, infra.WrapRepoErr("failed to create order", err)
		}
	}

	return id, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	const sql = `SELECT id, reference, creation_datetime, id_table, installation_datetime, departure_datetime
        FROM "order" WHERE id = $1`

	var (
		orderID      int64
		reference    string
		createdAt    time.Time
		tableID      int64
		installation time.Time
		departure    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(&orderID, &reference, &createdAt, &tableID, &installation, &departure)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by id", err)
	}

	return order.ReconstructOrder(orderID, reference, tableID, installation, pgconv.PtrFromTimestamptz(departure), createdAt), nil
}
