package repository

import (
	"context"
	"time"

	"tableside/internal/domain/table"
	"tableside/internal/infra"
	"tableside/internal/infra/db"
	"tableside/internal/infra/pgconv"

	"github.com/jackc/pgx/v5"
)

// stayConflictSQL is the one and only overlap predicate: an instant ($1)
// conflicts with a stored stay when it falls strictly inside
// [installation, departure), where a null departure blocks indefinitely.
// Both availability queries build on this fragment so they cannot diverge.
const stayConflictSQL = `installation_datetime < $1
    AND (departure_datetime IS NULL OR departure_datetime > $1)`

type TableRepository struct {
	db db.DBTX
}

func NewTableRepository(dbtx db.DBTX) *TableRepository {
	return &TableRepository{db: dbtx}
}

func (r *TableRepository) FindByID(ctx context.Context, id int64) (*table.Table, error) {
	const sql = `SELECT id, number, capacity FROM restaurant_table WHERE id = $1`

	var (
		tableID  int64
		number   int
		capacity int
	)
	if err := r.db.QueryRow(ctx, sql, id).Scan(&tableID, &number, &capacity); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find table by id", err)
	}

	return table.ReconstructTable(tableID, number, capacity), nil
}

func (r *TableRepository) FindAll(ctx context.Context) ([]*table.Table, error) {
	const sql = `SELECT id, number, capacity FROM restaurant_table ORDER BY number`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	defer rows.Close()

	return scanTables(rows, "failed to list tables")
}

func (r *TableRepository) Save(ctx context.Context, t *table.Table) (*table.Table, error) {
	var (
		sql  string
		args []any
	)
	if t.ID() == 0 {
		sql = `INSERT INTO restaurant_table (number, capacity) VALUES ($1, $2) RETURNING id`
		args = []any{t.Number(), t.Capacity()}
	} else {
		sql = `INSERT INTO restaurant_table (id, number, capacity) VALUES ($1, $2, $3)
            ON CONFLICT (id) DO UPDATE SET number = EXCLUDED.number, capacity = EXCLUDED.capacity
            RETURNING id`
		args = []any{t.ID(), t.Number(), t.Capacity()}
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("table number already in use", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to save table", err)
	}

	return t.WithID(id), nil
}

func (r *TableRepository) IsAvailableAt(ctx context.Context, tableID int64, at time.Time) (bool, error) {
	const sql = `SELECT NOT EXISTS (
        SELECT 1 FROM "order"
        WHERE ` + stayConflictSQL + `
            AND id_table = $2
    )`

	var available bool
	if err := r.db.QueryRow(ctx, sql, at, tableID).Scan(&available); err != nil {
		return false, infra.WrapRepoErr("failed to check table availability", err)
	}
	return available, nil
}

func (r *TableRepository) FindAvailableAt(ctx context.Context, at time.Time) ([]*table.Table, error) {
	const sql = `SELECT id, number, capacity FROM restaurant_table
        WHERE id NOT IN (
            SELECT id_table FROM "order"
            WHERE ` + stayConflictSQL + `
                AND id_table IS NOT NULL
        )
        ORDER BY number`

	rows, err := r.db.Query(ctx, sql, at)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available tables", err)
	}
	defer rows.Close()

	return scanTables(rows, "failed to find available tables")
}

// LockForBooking takes a transaction-scoped advisory lock keyed by table id.
// Unlike SELECT ... FOR UPDATE it also serializes writers when no conflicting
// row exists yet; the lock releases on commit or rollback.
func (r *TableRepository) LockForBooking(ctx context.Context, tableID int64) error {
	const sql = `SELECT pg_advisory_xact_lock($1)`

	if _, err := r.db.Exec(ctx, sql, tableID); err != nil {
		return infra.WrapRepoErr("failed to lock table for booking", err)
	}
	return nil
}

func scanTables(rows pgx.Rows, failMsg string) ([]*table.Table, error) {
	var result []*table.Table
	for rows.Next() {
		var (
			id       int64
			number   int
			capacity int
		)
		if err := rows.Scan(&id, &number, &capacity); err != nil {
			return nil, infra.WrapRepoErr(failMsg, err)
		}
		result = append(result, table.ReconstructTable(id, number, capacity))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return result, nil
}
