package repository

import (
	"context"
	"time"

	"tableside/internal/infra"
	"tableside/internal/infra/db"
	"tableside/internal/infra/pgconv"

	"github.com/jackc/pgx/v5"
)

type Customer struct {
	ID        int64
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"omitempty,email"`
	Phone     string
	CreatedAt time.Time
}

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(dbtx db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: dbtx}
}

func (r *CustomerRepository) Save(ctx context.Context, c *Customer) (*Customer, error) {
	if err := validateRecord(c, "customer"); err != nil {
		return nil, err
	}

	const sql = `INSERT INTO customer (first_name, last_name, email, phone)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	saved := *c
	err := r.db.QueryRow(ctx, sql, c.FirstName, c.LastName, c.Email, c.Phone).
		Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("customer email already registered", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to save customer", err)
	}
	return &saved, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*Customer, error) {
	const sql = `SELECT id, first_name, last_name, email, phone, created_at
        FROM customer WHERE id = $1`

	c, err := scanCustomer(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by id", err)
	}
	return c, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*Customer, error) {
	const sql = `SELECT id, first_name, last_name, email, phone, created_at
        FROM customer ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list customers", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	return result, nil
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
