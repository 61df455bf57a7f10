package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/dberrors"
	"github.com/huskyden/backend/internal/pkg/helpers"
	"github.com/huskyden/backend/internal/pkg/logger"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// PgDepartmentRepository handles database operations for departments
type PgDepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *PgDepartmentRepository {
	return &PgDepartmentRepository{db: db}
}

func selectDepartments() squirrel.SelectBuilder {
	return psql.Select("d.id", "d.code", "d.name").From("departments d")
}

func applyDepartmentFilter(b squirrel.SelectBuilder, f DepartmentFilter) squirrel.SelectBuilder {
	if f.Search != "" {
		pat := helpers.ContainsPattern(f.Search)
		b = b.Where(squirrel.Or{squirrel.ILike{"d.code": pat}, squirrel.ILike{"d.name": pat}})
	}
	return b
}

func scanDepartment(row pgx.Row) (*models.Department, error) {
	var d models.Department
	if err := row.Scan(&d.ID, &d.Code, &d.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create creates a new department
func (r *PgDepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `INSERT INTO departments (code, name) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(ctx, query, department.Code, department.Name).Scan(&department.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "departments_code_key") {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetByID retrieves a department by ID
func (r *PgDepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return r.getOne(ctx, squirrel.Eq{"d.id": id})
}

// GetByCode retrieves a department by its unique code
func (r *PgDepartmentRepository) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	return r.getOne(ctx, squirrel.Eq{"d.code": code})
}

func (r *PgDepartmentRepository) getOne(ctx context.Context, pred squirrel.Sqlizer) (*models.Department, error) {
	query, args, err := selectDepartments().Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building department query: %w", err)
	}
	return scanDepartment(r.db.QueryRow(ctx, query, args...))
}

// List retrieves departments ordered by code
func (r *PgDepartmentRepository) List(ctx context.Context, filter DepartmentFilter, opts ListOptions) ([]*models.Department, int64, error) {
	total, err := countRows(ctx, r.db, applyDepartmentFilter(psql.Select("count(*)").From("departments d"), filter))
	if err != nil {
		return nil, 0, fmt.Errorf("error counting departments: %w", err)
	}
	if total == 0 {
		return []*models.Department{}, 0, nil
	}

	b := paginate(applyDepartmentFilter(selectDepartments(), filter).OrderBy("d.code"), opts)
	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building department list: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return departments, total, nil
}

// Delete deletes a department by ID. Courses go with it, professors are detached.
func (r *PgDepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// GetOrCreate inserts the department unless one with the same code exists
func (r *PgDepartmentRepository) GetOrCreate(ctx context.Context, department *models.Department) (bool, error) {
	query := `
		INSERT INTO departments (code, name)
		VALUES ($1, $2)
		ON CONFLICT (code) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, department.Code, department.Name).Scan(&department.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error creating department %s: %w", department.Code, err)
	}

	existing, err := r.GetByCode(ctx, department.Code)
	if err != nil {
		return false, err
	}
	*department = *existing
	logger.Debug().Str("code", department.Code).Msg("Department already exists")
	return false, nil
}

// countRows runs a prepared count(*) builder
func countRows(ctx context.Context, db *pgxpool.Pool, b squirrel.SelectBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var total int64
	if err := db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// paginate applies ListOptions to a select builder
func paginate(b squirrel.SelectBuilder, opts ListOptions) squirrel.SelectBuilder {
	if opts.Limit > 0 {
		b = b.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		b = b.Offset(opts.Offset)
	}
	return b
}
