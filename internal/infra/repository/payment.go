package repository

import (
	"context"
	"time"

	"tableside/internal/infra"
	"tableside/internal/infra/db"
	"tableside/internal/infra/pgconv"

	"github.com/jackc/pgx/v5"
)

type Payment struct {
	ID            int64
	OrderID       int64   `validate:"required"`
	Amount        float64 `validate:"gt=0"`
	PaymentMethod string  `validate:"required"`
	PaymentDate   time.Time
	// Status defaults to "completed" when unset.
	Status string
}

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

func (r *PaymentRepository) Save(ctx context.Context, p *Payment) (*Payment, error) {
	if err := validateRecord(p, "payment"); err != nil {
		return nil, err
	}

	const sql = `INSERT INTO payment (id_order, amount, payment_method, status)
        VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'completed'))
        RETURNING id, payment_date, status`

	saved := *p
	err := r.db.QueryRow(ctx, sql, p.OrderID, p.Amount, p.PaymentMethod, p.Status).
		Scan(&saved.ID, &saved.PaymentDate, &saved.Status)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("payment references unknown order", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to save payment", err)
	}
	return &saved, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*Payment, error) {
	const sql = `SELECT id, id_order, amount, payment_method, payment_date, status
        FROM payment WHERE id = $1`

	p, err := scanPayment(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by id", err)
	}
	return p, nil
}

func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*Payment, error) {
	const sql = `SELECT id, id_order, amount, payment_method, payment_date, status
        FROM payment WHERE id_order = $1 ORDER BY payment_date DESC`

	rows, err := r.db.Query(ctx, sql, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by order", err)
	}
	defer rows.Close()

	var result []*Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list payments by order", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by order", err)
	}
	return result, nil
}

func scanPayment(row pgx.Row) (*Payment, error) {
	var p Payment
	if err := row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaymentMethod, &p.PaymentDate, &p.Status); err != nil {
		return nil, err
	}
	return &p, nil
}
