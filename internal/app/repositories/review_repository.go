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
	"github.com/huskyden/backend/internal/pkg/logger"
)

// PgReviewRepository handles database operations for reviews
type PgReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *PgReviewRepository {
	return &PgReviewRepository{db: db}
}

func selectReviews() squirrel.SelectBuilder {
	return psql.Select(
		"r.id", "r.course_id", "r.professor_id", "r.rating", "r.workload", "r.difficulty", "r.comment",
		"r.created_at", "r.updated_at",
		"c.code", "c.title", "c.department_id",
		"p.name", "p.slug",
	).From("reviews r").
		Join("courses c ON c.id = r.course_id").
		LeftJoin("professors p ON p.id = r.professor_id")
}

func applyReviewFilter(b squirrel.SelectBuilder, f ReviewFilter) squirrel.SelectBuilder {
	if f.CourseCode != "" {
		b = b.Where(squirrel.Eq{"c.code": f.CourseCode})
	}
	if f.CourseID != 0 {
		b = b.Where(squirrel.Eq{"r.course_id": f.CourseID})
	}
	if f.ProfessorID != 0 {
		b = b.Where(squirrel.Eq{"r.professor_id": f.ProfessorID})
	}
	if f.Search != "" {
		pat := helpers.ContainsPattern(f.Search)
		b = b.Where(squirrel.Or{
			squirrel.ILike{"c.code": pat},
			squirrel.ILike{"c.title": pat},
			squirrel.ILike{"p.name": pat},
			squirrel.ILike{"r.comment": pat},
		})
	}
	return b
}

func scanReview(row pgx.Row) (*models.Review, error) {
	var rv models.Review
	var course models.Course
	var profName, profSlug *string
	err := row.Scan(
		&rv.ID, &rv.CourseID, &rv.ProfessorID, &rv.Rating, &rv.Workload, &rv.Difficulty, &rv.Comment,
		&rv.CreatedAt, &rv.UpdatedAt,
		&course.Code, &course.Title, &course.DepartmentID,
		&profName, &profSlug,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}
	course.ID = rv.CourseID
	rv.Course = &course
	if rv.ProfessorID != nil && profName != nil {
		rv.Professor = &models.Professor{ID: *rv.ProfessorID, Name: *profName, Slug: *profSlug}
	}
	return &rv, nil
}

// Create inserts a review in a single statement
func (r *PgReviewRepository) Create(ctx context.Context, review *models.Review) error {
	models.Stamp(&review.CreatedAt, &review.UpdatedAt, time.Now())

	query, args, err := psql.Insert("reviews").
		Columns("course_id", "professor_id", "rating", "workload", "difficulty", "comment", "created_at", "updated_at").
		Values(review.CourseID, review.ProfessorID, review.Rating, review.Workload, review.Difficulty,
			review.Comment, review.CreatedAt, review.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create review SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&review.ID); err != nil {
		switch {
		case dberrors.IsForeignKeyError(err):
			return apperrors.NewResourceNotFoundError("review references a missing course or professor")
		case dberrors.IsCheckConstraintError(err):
			return fmt.Errorf("%w: review scores must be between 1 and 5", apperrors.ErrValidationFailed)
		}
		logger.Error().Err(err).Int64("courseID", review.CourseID).Msg("Error executing create review query")
		return fmt.Errorf("error creating review: %w", err)
	}
	return nil
}

// GetByID retrieves a review by ID
func (r *PgReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	query, args, err := selectReviews().Where(squirrel.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building review query: %w", err)
	}
	return scanReview(r.db.QueryRow(ctx, query, args...))
}

// List retrieves reviews, newest first
func (r *PgReviewRepository) List(ctx context.Context, filter ReviewFilter, opts ListOptions) ([]*models.Review, int64, error) {
	countBuilder := psql.Select("count(*)").From("reviews r").
		Join("courses c ON c.id = r.course_id").
		LeftJoin("professors p ON p.id = r.professor_id")
	total, err := countRows(ctx, r.db, applyReviewFilter(countBuilder, filter))
	if err != nil {
		return nil, 0, fmt.Errorf("error counting reviews: %w", err)
	}
	if total == 0 {
		return []*models.Review{}, 0, nil
	}

	query, args, err := paginate(applyReviewFilter(selectReviews(), filter).OrderBy("r.created_at DESC", "r.id DESC"), opts).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building review list: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*models.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// Delete removes a single review
func (r *PgReviewRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// GetOrCreateForPair returns the oldest review for (course, professor) or inserts this one
func (r *PgReviewRepository) GetOrCreateForPair(ctx context.Context, review *models.Review) (bool, error) {
	pair := squirrel.And{squirrel.Eq{"r.course_id": review.CourseID}, squirrel.Eq{"r.professor_id": review.ProfessorID}}
	query, args, err := selectReviews().Where(pair).OrderBy("r.id").Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("error building review lookup: %w", err)
	}

	existing, err := scanReview(r.db.QueryRow(ctx, query, args...))
	switch {
	case err == nil:
		*review = *existing
		return false, nil
	case !errors.Is(err, apperrors.ErrReviewNotFound):
		return false, err
	}

	if err := r.Create(ctx, review); err != nil {
		return false, err
	}
	return true, nil
}
