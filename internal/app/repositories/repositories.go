package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huskyden/backend/internal/app/models"
)

// ListOptions bounds a list query. A zero Limit returns every matching row.
type ListOptions struct {
	Offset uint64
	Limit  int
}

// DepartmentFilter narrows a department listing
type DepartmentFilter struct {
	Search string // code or name, case-insensitive substring
}

// CourseFilter narrows a course listing. Empty fields are ignored.
type CourseFilter struct {
	Code           string // exact
	CodeContains   string
	TitleContains  string
	DepartmentCode string // exact
	DepartmentID   int64
	Search         string // code or title
}

// ProfessorFilter narrows a professor listing
type ProfessorFilter struct {
	NameContains   string
	DepartmentCode string // exact
	DepartmentID   int64
	Search         string // name
}

// ReviewFilter narrows a review listing
type ReviewFilter struct {
	CourseCode  string // exact
	CourseID    int64
	ProfessorID int64
	Search      string // course code/title, professor name or comment
}

// DepartmentRepository stores departments. Deleting a department removes its courses
// (and their reviews) and clears the department on its professors.
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByCode(ctx context.Context, code string) (*models.Department, error)
	List(ctx context.Context, filter DepartmentFilter, opts ListOptions) ([]*models.Department, int64, error)
	Delete(ctx context.Context, id int64) error
	// GetOrCreate looks the department up by code and inserts it when missing.
	// The argument is filled with the stored record either way.
	GetOrCreate(ctx context.Context, department *models.Department) (bool, error)
}

// CourseRepository stores courses. Deleting a course removes its reviews.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context, filter CourseFilter, opts ListOptions) ([]*models.Course, int64, error)
	Delete(ctx context.Context, id int64) error
	// GetOrCreate is keyed on the course code.
	GetOrCreate(ctx context.Context, course *models.Course) (bool, error)
}

// ProfessorRepository stores professors. Create assigns a unique slug when the
// professor has none; Update never touches the slug. Deleting a professor clears
// the professor on their reviews.
type ProfessorRepository interface {
	Create(ctx context.Context, professor *models.Professor) error
	Update(ctx context.Context, professor *models.Professor) error
	GetByID(ctx context.Context, id int64) (*models.Professor, error)
	GetBySlug(ctx context.Context, slug string) (*models.Professor, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter ProfessorFilter, opts ListOptions) ([]*models.Professor, int64, error)
	Delete(ctx context.Context, id int64) error
	// GetOrCreateByName is keyed on the professor name, the lowest id wins on duplicates.
	GetOrCreateByName(ctx context.Context, professor *models.Professor) (bool, error)
}

// ReviewRepository stores reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	List(ctx context.Context, filter ReviewFilter, opts ListOptions) ([]*models.Review, int64, error)
	Delete(ctx context.Context, id int64) error
	// GetOrCreateForPair is keyed on (course, professor); a nil professor matches
	// reviews without one.
	GetOrCreateForPair(ctx context.Context, review *models.Review) (bool, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository DepartmentRepository
	CourseRepository     CourseRepository
	ProfessorRepository  ProfessorRepository
	ReviewRepository     ReviewRepository
}

// NewRepositories initializes the PostgreSQL-backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ProfessorRepository:  NewProfessorRepository(db),
		ReviewRepository:     NewReviewRepository(db),
	}
}
