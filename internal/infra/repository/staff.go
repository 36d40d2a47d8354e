package repository

import (
	"context"
	"time"

	"tableside/internal/infra"
	"tableside/internal/infra/db"
	"tableside/internal/infra/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Staff struct {
	ID        int64
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"omitempty,email"`
	Phone     string
	Position  string `validate:"required"`
	HireDate  *time.Time
	// IsActive defaults to true when unset.
	IsActive  *bool
	CreatedAt time.Time
}

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

func (r *StaffRepository) Save(ctx context.Context, s *Staff) (*Staff, error) {
	if err := validateRecord(s, "staff"); err != nil {
		return nil, err
	}

	const sql = `INSERT INTO staff (first_name, last_name, email, phone, position, hire_date, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, true))
        RETURNING id, is_active, created_at`

	saved := *s
	err := r.db.QueryRow(ctx, sql,
		s.FirstName, s.LastName, s.Email, s.Phone, s.Position,
		pgconv.DateFromPtr(s.HireDate), s.IsActive,
	).Scan(&saved.ID, &saved.IsActive, &saved.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save staff", err)
	}
	return &saved, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id int64) (*Staff, error) {
	const sql = `SELECT id, first_name, last_name, email, phone, position, hire_date, is_active, created_at
        FROM staff WHERE id = $1`

	s, err := scanStaff(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by id", err)
	}
	return s, nil
}

// FindAll lists active staff only, sorted by name.
func (r *StaffRepository) FindAll(ctx context.Context) ([]*Staff, error) {
	const sql = `SELECT id, first_name, last_name, email, phone, position, hire_date, is_active, created_at
        FROM staff WHERE is_active = true ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff", err)
	}
	defer rows.Close()

	var result []*Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list staff", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list staff", err)
	}
	return result, nil
}

func scanStaff(row pgx.Row) (*Staff, error) {
	var (
		s        Staff
		hireDate pgtype.Date
	)
	if err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.Position, &hireDate, &s.IsActive, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.HireDate = pgconv.PtrFromDate(hireDate)
	return &s, nil
}
