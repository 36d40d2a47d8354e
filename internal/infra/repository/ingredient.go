package repository

import (
	"context"
	"time"

	"tableside/internal/infra"
	"tableside/internal/infra/db"
	"tableside/internal/infra/pgconv"

	"github.com/jackc/pgx/v5"
)

type Ingredient struct {
	ID              int64
	Name            string `validate:"required"`
	Description     string
	QuantityInStock float64 `validate:"gte=0"`
	Unit            string  `validate:"required"`
	CreatedAt       time.Time
}

type IngredientRepository struct {
	db db.DBTX
}

func NewIngredientRepository(dbtx db.DBTX) *IngredientRepository {
	return &IngredientRepository{db: dbtx}
}

func (r *IngredientRepository) Save(ctx context.Context, ing *Ingredient) (*Ingredient, error) {
	if err := validateRecord(ing, "ingredient"); err != nil {
		return nil, err
	}

	const sql = `INSERT INTO ingredient (name, description, quantity_in_stock, unit)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	saved := *ing
	err := r.db.QueryRow(ctx, sql, ing.Name, ing.Description, ing.QuantityInStock, ing.Unit).
		Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save ingredient", err)
	}
	return &saved, nil
}

func (r *IngredientRepository) FindByID(ctx context.Context, id int64) (*Ingredient, error) {
	const sql = `SELECT id, name, description, quantity_in_stock, unit, created_at
        FROM ingredient WHERE id = $1`

	ing, err := scanIngredient(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ingredient not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ingredient by id", err)
	}
	return ing, nil
}

func (r *IngredientRepository) FindAll(ctx context.Context) ([]*Ingredient, error) {
	const sql = `SELECT id, name, description, quantity_in_stock, unit, created_at
        FROM ingredient ORDER BY name`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ingredients", err)
	}
	defer rows.Close()

	var result []*Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list ingredients", err)
		}
		result = append(result, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list ingredients", err)
	}
	return result, nil
}

func scanIngredient(row pgx.Row) (*Ingredient, error) {
	var ing Ingredient
	if err := row.Scan(&ing.ID, &ing.Name, &ing.Description, &ing.QuantityInStock, &ing.Unit, &ing.CreatedAt); err != nil {
		return nil, err
	}
	return &ing, nil
}
