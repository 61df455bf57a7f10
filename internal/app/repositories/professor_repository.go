package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/dberrors"
	"github.com/huskyden/backend/internal/pkg/helpers"
	"github.com/huskyden/backend/internal/pkg/slug"
)

// PgProfessorRepository handles database operations for professors
type PgProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db *pgxpool.Pool) *PgProfessorRepository {
	return &PgProfessorRepository{db: db}
}

func selectProfessors() squirrel.SelectBuilder {
	return psql.Select(
		"p.id", "p.name", "p.slug", "p.department_id", "p.created_at", "p.updated_at",
		"d.code", "d.name",
	).From("professors p").
		LeftJoin("departments d ON d.id = p.department_id")
}

func applyProfessorFilter(b squirrel.SelectBuilder, f ProfessorFilter) squirrel.SelectBuilder {
	if f.NameContains != "" {
		b = b.Where(squirrel.ILike{"p.name": helpers.ContainsPattern(f.NameContains)})
	}
	if f.DepartmentCode != "" {
		b = b.Where(squirrel.Eq{"d.code": f.DepartmentCode})
	}
	if f.DepartmentID != 0 {
		b = b.Where(squirrel.Eq{"p.department_id": f.DepartmentID})
	}
	if f.Search != "" {
		b = b.Where(squirrel.ILike{"p.name": helpers.ContainsPattern(f.Search)})
	}
	return b
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	var p models.Professor
	var deptCode, deptName *string
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.DepartmentID, &p.CreatedAt, &p.UpdatedAt, &deptCode, &deptName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, err
	}
	if p.DepartmentID != nil && deptCode != nil {
		p.Department = &models.Department{ID: *p.DepartmentID, Code: *deptCode, Name: *deptName}
	}
	return &p, nil
}

// Create inserts a professor, deriving a unique slug from the name when none is set
func (r *PgProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	if professor.Slug == "" {
		s, err := slug.Unique(ctx, slug.Make(professor.Name), r.SlugExists)
		if err != nil {
			return err
		}
		professor.Slug = s
	}
	models.Stamp(&professor.CreatedAt, &professor.UpdatedAt, time.Now())

	query, args, err := psql.Insert("professors").
		Columns("name", "slug", "department_id", "created_at", "updated_at").
		Values(professor.Name, professor.Slug, professor.DepartmentID, professor.CreatedAt, professor.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create professor SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&professor.ID); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "professors_slug_key"):
			return apperrors.ErrProfessorSlugExists
		case dberrors.IsForeignKeyError(err):
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating professor: %w", err)
	}
	return nil
}

// Update saves name and department. The slug stays as assigned at creation.
func (r *PgProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	professor.UpdatedAt = time.Now()
	query, args, err := psql.Update("professors").
		Set("name", professor.Name).
		Set("department_id", professor.DepartmentID).
		Set("updated_at", professor.UpdatedAt).
		Where(squirrel.Eq{"id": professor.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update professor SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating professor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}

// GetByID retrieves a professor by ID
func (r *PgProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	return r.getOne(ctx, squirrel.Eq{"p.id": id})
}

// GetBySlug retrieves a professor by slug
func (r *PgProfessorRepository) GetBySlug(ctx context.Context, s string) (*models.Professor, error) {
	return r.getOne(ctx, squirrel.Eq{"p.slug": s})
}

func (r *PgProfessorRepository) getOne(ctx context.Context, pred squirrel.Sqlizer) (*models.Professor, error) {
	query, args, err := selectProfessors().Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building professor query: %w", err)
	}
	return scanProfessor(r.db.QueryRow(ctx, query, args...))
}

// SlugExists checks whether a slug is already taken
func (r *PgProfessorRepository) SlugExists(ctx context.Context, s string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM professors WHERE slug = $1)`, s).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor slug: %w", err)
	}
	return exists, nil
}

// List retrieves professors ordered by name
func (r *PgProfessorRepository) List(ctx context.Context, filter ProfessorFilter, opts ListOptions) ([]*models.Professor, int64, error) {
	countBuilder := psql.Select("count(*)").From("professors p").LeftJoin("departments d ON d.id = p.department_id")
	total, err := countRows(ctx, r.db, applyProfessorFilter(countBuilder, filter))
	if err != nil {
		return nil, 0, fmt.Errorf("error counting professors: %w", err)
	}
	if total == 0 {
		return []*models.Professor{}, 0, nil
	}

	query, args, err := paginate(applyProfessorFilter(selectProfessors(), filter).OrderBy("p.name", "p.id"), opts).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building professor list: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing professors: %w", err)
	}
	defer rows.Close()

	professors := make([]*models.Professor, 0)
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, 0, err
		}
		professors = append(professors, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return professors, total, nil
}

// Delete removes a professor; their reviews stay with professor_id set to NULL
func (r *PgProfessorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM professors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting professor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}

// GetOrCreateByName returns the first professor with the given name or creates one
func (r *PgProfessorRepository) GetOrCreateByName(ctx context.Context, professor *models.Professor) (bool, error) {
	query, args, err := selectProfessors().Where(squirrel.Eq{"p.name": professor.Name}).OrderBy("p.id").Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("error building professor lookup: %w", err)
	}

	existing, err := scanProfessor(r.db.QueryRow(ctx, query, args...))
	switch {
	case err == nil:
		*professor = *existing
		return false, nil
	case !errors.Is(err, apperrors.ErrProfessorNotFound):
		return false, err
	}

	if err := r.Create(ctx, professor); err != nil {
		return false, err
	}
	return true, nil
}
