package repository

import (
	"context"
	"time"

	"tableside/internal/infra"
	"tableside/internal/infra/db"
	"tableside/internal/infra/pgconv"

	"github.com/jackc/pgx/v5"
)

type OrderItem struct {
	ID        int64
	OrderID   int64 `validate:"required"`
	DishID    int64 `validate:"required"`
	Quantity  int   `validate:"gt=0"`
	UnitPrice float64 `validate:"gte=0"`
	Notes     string
	CreatedAt time.Time
}

type OrderItemRepository struct {
	db db.DBTX
}

func NewOrderItemRepository(dbtx db.DBTX) *OrderItemRepository {
	return &OrderItemRepository{db: dbtx}
}

func (r *OrderItemRepository) Save(ctx context.Context, item *OrderItem) (*OrderItem, error) {
	if err := validateRecord(item, "order item"); err != nil {
		return nil, err
	}

	const sql = `INSERT INTO order_item (id_order, id_dish, quantity, unit_price, notes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	saved := *item
	err := r.db.QueryRow(ctx, sql, item.OrderID, item.DishID, item.Quantity, item.UnitPrice, item.Notes).
		Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("order item references unknown order or dish", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to save order item", err)
	}
	return &saved, nil
}

func (r *OrderItemRepository) FindByID(ctx context.Context, id int64) (*OrderItem, error) {
	const sql = `SELECT id, id_order, id_dish, quantity, unit_price, notes, created_at
        FROM order_item WHERE id = $1`

	item, err := scanOrderItem(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order item by id", err)
	}
	return item, nil
}

func (r *OrderItemRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*OrderItem, error) {
	const sql = `SELECT id, id_order, id_dish, quantity, unit_price, notes, created_at
        FROM order_item WHERE id_order = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, sql, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var result []*OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list order items", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	return result, nil
}

func scanOrderItem(row pgx.Row) (*OrderItem, error) {
	var item OrderItem
	if err := row.Scan(&item.ID, &item.OrderID, &item.DishID, &item.Quantity, &item.UnitPrice, &item.Notes, &item.CreatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}
