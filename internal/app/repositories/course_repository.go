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
)

// PgCourseRepository handles database operations for courses
type PgCourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *PgCourseRepository {
	return &PgCourseRepository{db: db}
}

// selectCourses joins the owning department so every course comes back with it
func selectCourses() squirrel.SelectBuilder {
	return psql.Select(
		"c.id", "c.code", "c.title", "c.department_id", "c.description", "c.created_at", "c.updated_at",
		"d.code", "d.name",
	).From("courses c").
		Join("departments d ON d.id = c.department_id")
}

func applyCourseFilter(b squirrel.SelectBuilder, f CourseFilter) squirrel.SelectBuilder {
	if f.Code != "" {
		b = b.Where(squirrel.Eq{"c.code": f.Code})
	}
	if f.CodeContains != "" {
		b = b.Where(squirrel.ILike{"c.code": helpers.ContainsPattern(f.CodeContains)})
	}
	if f.TitleContains != "" {
		b = b.Where(squirrel.ILike{"c.title": helpers.ContainsPattern(f.TitleContains)})
	}
	if f.DepartmentCode != "" {
		b = b.Where(squirrel.Eq{"d.code": f.DepartmentCode})
	}
	if f.DepartmentID != 0 {
		b = b.Where(squirrel.Eq{"c.department_id": f.DepartmentID})
	}
	if f.Search != "" {
		pat := helpers.ContainsPattern(f.Search)
		b = b.Where(squirrel.Or{squirrel.ILike{"c.code": pat}, squirrel.ILike{"c.title": pat}})
	}
	return b
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	var dept models.Department
	err := row.Scan(
		&c.ID, &c.Code, &c.Title, &c.DepartmentID, &c.Description, &c.CreatedAt, &c.UpdatedAt,
		&dept.Code, &dept.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	dept.ID = c.DepartmentID
	c.Department = &dept
	return &c, nil
}

// Create creates a new course. The department must already exist.
func (r *PgCourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now()
	models.Stamp(&course.CreatedAt, &course.UpdatedAt, now)

	query, args, err := psql.Insert("courses").
		Columns("code", "title", "department_id", "description", "created_at", "updated_at").
		Values(course.Code, course.Title, course.DepartmentID, course.Description, course.CreatedAt, course.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create course SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&course.ID); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "courses_code_key"):
			return apperrors.ErrCourseAlreadyExists
		case dberrors.IsForeignKeyError(err):
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *PgCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.getOne(ctx, squirrel.Eq{"c.id": id})
}

// GetByCode retrieves a course by its exact code
func (r *PgCourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return r.getOne(ctx, squirrel.Eq{"c.code": code})
}

func (r *PgCourseRepository) getOne(ctx context.Context, pred squirrel.Sqlizer) (*models.Course, error) {
	query, args, err := selectCourses().Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course query: %w", err)
	}
	return scanCourse(r.db.QueryRow(ctx, query, args...))
}

// List retrieves courses ordered by code
func (r *PgCourseRepository) List(ctx context.Context, filter CourseFilter, opts ListOptions) ([]*models.Course, int64, error) {
	countBuilder := psql.Select("count(*)").From("courses c").Join("departments d ON d.id = c.department_id")
	total, err := countRows(ctx, r.db, applyCourseFilter(countBuilder, filter))
	if err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}
	if total == 0 {
		return []*models.Course{}, 0, nil
	}

	query, args, err := paginate(applyCourseFilter(selectCourses(), filter).OrderBy("c.code"), opts).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building course list: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// Delete deletes a course and, through the foreign key, its reviews
func (r *PgCourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// GetOrCreate inserts the course unless one with the same code exists
func (r *PgCourseRepository) GetOrCreate(ctx context.Context, course *models.Course) (bool, error) {
	now := time.Now()
	models.Stamp(&course.CreatedAt, &course.UpdatedAt, now)

	query, args, err := psql.Insert("courses").
		Columns("code", "title", "department_id", "description", "created_at", "updated_at").
		Values(course.Code, course.Title, course.DepartmentID, course.Description, course.CreatedAt, course.UpdatedAt).
		Suffix("ON CONFLICT (code) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building get-or-create course SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&course.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error creating course %s: %w", course.Code, err)
	}

	existing, err := r.GetByCode(ctx, course.Code)
	if err != nil {
		return false, err
	}
	*course = *existing
	return false, nil
}
