package repository

import (
	"context"
	"time"

	"tableside/internal/infra"
	"tableside/internal/infra/db"
	"tableside/internal/infra/pgconv"

	"github.com/jackc/pgx/v5"
)

type Dish struct {
	ID          int64
	Name        string `validate:"required"`
	Description string
	Price       float64 `validate:"gte=0"`
	Category    string  `validate:"required"`
	// IsAvailable defaults to true when unset.
	IsAvailable *bool
	CreatedAt   time.Time
}

type DishRepository struct {
	db db.DBTX
}

func NewDishRepository(dbtx db.DBTX) *DishRepository {
	return &DishRepository{db: dbtx}
}

func (r *DishRepository) Save(ctx context.Context, d *Dish) (*Dish, error) {
	if err := validateRecord(d, "dish"); err != nil {
		return nil, err
	}

	const sql = `INSERT INTO dish (name, description, price, category, is_available)
        VALUES ($1, $2, $3, $4, COALESCE($5, true))
        RETURNING id, is_available, created_at`

	saved := *d
	err := r.db.QueryRow(ctx, sql, d.Name, d.Description, d.Price, d.Category, d.IsAvailable).
		Scan(&saved.ID, &saved.IsAvailable, &saved.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save dish", err)
	}
	return &saved, nil
}

func (r *DishRepository) FindByID(ctx context.Context, id int64) (*Dish, error) {
	const sql = `SELECT id, name, description, price, category, is_available, created_at
        FROM dish WHERE id = $1`

	d, err := scanDish(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dish not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dish by id", err)
	}
	return d, nil
}

func (r *DishRepository) FindAll(ctx context.Context) ([]*Dish, error) {
	const sql = `SELECT id, name, description, price, category, is_available, created_at
        FROM dish ORDER BY name`

	return r.queryDishes(ctx, sql)
}

func (r *DishRepository) FindByCategory(ctx context.Context, category string) ([]*Dish, error) {
	const sql = `SELECT id, name, description, price, category, is_available, created_at
        FROM dish WHERE category = $1 AND is_available = true ORDER BY name`

	return r.queryDishes(ctx, sql, category)
}

func (r *DishRepository) queryDishes(ctx context.Context, sql string, args ...any) ([]*Dish, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dishes", err)
	}
	defer rows.Close()

	var result []*Dish
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list dishes", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list dishes", err)
	}
	return result, nil
}

func scanDish(row pgx.Row) (*Dish, error) {
	var d Dish
	if err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.Category, &d.IsAvailable, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
