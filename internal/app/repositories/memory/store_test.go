package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/apperrors"
)

type fixture struct {
	repos *repositories.Repositories
	dept  *models.Department
	stat  *models.Course
	prof  *models.Professor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	repos := NewRepositories()

	dept := &models.Department{Code: "STAT", Name: "Statistics"}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, dept))

	course := &models.Course{Code: "STAT 311", Title: "Elements of Statistical Methods", DepartmentID: dept.ID}
	require.NoError(t, repos.CourseRepository.Create(ctx, course))

	prof := &models.Professor{Name: "Daniela Witten", DepartmentID: &dept.ID}
	require.NoError(t, repos.ProfessorRepository.Create(ctx, prof))

	return fixture{repos: repos, dept: dept, stat: course, prof: prof}
}

func TestDepartmentRepository_UniqueCode(t *testing.T) {
	f := newFixture(t)
	err := f.repos.DepartmentRepository.Create(context.Background(), &models.Department{Code: "STAT", Name: "Again"})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
}

func TestDepartmentRepository_GetOrCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	dept := &models.Department{Code: "STAT", Name: "ignored"}
	created, err := f.repos.DepartmentRepository.GetOrCreate(ctx, dept)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, f.dept.ID, dept.ID)
	assert.Equal(t, "Statistics", dept.Name)

	math := &models.Department{Code: "MATH", Name: "Mathematics"}
	created, err = f.repos.DepartmentRepository.GetOrCreate(ctx, math)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, math.ID)
}

func TestCourseRepository_ListOrderAndFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, c := range []models.Course{
		{Code: "STAT 220", Title: "Principles of Statistical Reasoning"},
		{Code: "STAT 502", Title: "Design and Analysis of Experiments"},
	} {
		c := c
		c.DepartmentID = f.dept.ID
		require.NoError(t, f.repos.CourseRepository.Create(ctx, &c))
	}

	courses, total, err := f.repos.CourseRepository.List(ctx, repositories.CourseFilter{}, repositories.ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, courses, 3)
	assert.Equal(t, []string{"STAT 220", "STAT 311", "STAT 502"}, []string{courses[0].Code, courses[1].Code, courses[2].Code})
	require.NotNil(t, courses[0].Department)
	assert.Equal(t, "STAT", courses[0].Department.Code)

	courses, total, err = f.repos.CourseRepository.List(ctx, repositories.CourseFilter{TitleContains: "statistical"}, repositories.ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, courses, 2)

	courses, total, err = f.repos.CourseRepository.List(ctx, repositories.CourseFilter{}, repositories.ListOptions{Offset: 1, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, courses, 1)
	assert.Equal(t, "STAT 311", courses[0].Code)

	courses, _, err = f.repos.CourseRepository.List(ctx, repositories.CourseFilter{DepartmentCode: "MATH"}, repositories.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCourseRepository_UnknownDepartment(t *testing.T) {
	f := newFixture(t)
	err := f.repos.CourseRepository.Create(context.Background(), &models.Course{Code: "X 1", Title: "x", DepartmentID: 999})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestProfessorRepository_SlugAssignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	assert.Equal(t, "daniela-witten", f.prof.Slug)

	second := &models.Professor{Name: "Daniela Witten"}
	require.NoError(t, f.repos.ProfessorRepository.Create(ctx, second))
	assert.Equal(t, "daniela-witten-1", second.Slug)

	third := &models.Professor{Name: "Daniela  Witten!"}
	require.NoError(t, f.repos.ProfessorRepository.Create(ctx, third))
	assert.Equal(t, "daniela-witten-2", third.Slug)

	f.prof.Name = "Daniela M. Witten"
	require.NoError(t, f.repos.ProfessorRepository.Update(ctx, f.prof))
	got, err := f.repos.ProfessorRepository.GetBySlug(ctx, "daniela-witten")
	require.NoError(t, err)
	assert.Equal(t, "Daniela M. Witten", got.Name)
}

func TestProfessorRepository_ExplicitSlugConflict(t *testing.T) {
	f := newFixture(t)
	err := f.repos.ProfessorRepository.Create(context.Background(), &models.Professor{Name: "Someone", Slug: "daniela-witten"})
	assert.ErrorIs(t, err, apperrors.ErrProfessorSlugExists)
}

func TestReviewRepository_OrderNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, f.repos.ReviewRepository.Create(ctx, &models.Review{
			CourseID: f.stat.ID, ProfessorID: &f.prof.ID, Rating: i, Workload: 3, Difficulty: 3,
		}))
	}

	reviews, total, err := f.repos.ReviewRepository.List(ctx, repositories.ReviewFilter{CourseCode: "STAT 311"}, repositories.ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, reviews, 3)
	assert.Equal(t, 3, reviews[0].Rating)
	assert.Equal(t, 1, reviews[2].Rating)
	require.NotNil(t, reviews[0].Professor)
	assert.Equal(t, "Daniela Witten", reviews[0].Professor.Name)
	assert.Equal(t, "STAT 311", reviews[0].Course.Code)
}

func TestReviewRepository_GetOrCreateForPair(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := &models.Review{CourseID: f.stat.ID, ProfessorID: &f.prof.ID, Rating: 4, Workload: 3, Difficulty: 2}
	created, err := f.repos.ReviewRepository.GetOrCreateForPair(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	dup := &models.Review{CourseID: f.stat.ID, ProfessorID: &f.prof.ID, Rating: 1, Workload: 1, Difficulty: 1}
	created, err = f.repos.ReviewRepository.GetOrCreateForPair(ctx, dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, dup.ID)
	assert.Equal(t, 4, dup.Rating)

	anon := &models.Review{CourseID: f.stat.ID, Rating: 2, Workload: 2, Difficulty: 2}
	created, err = f.repos.ReviewRepository.GetOrCreateForPair(ctx, anon)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	review := &models.Review{CourseID: f.stat.ID, ProfessorID: &f.prof.ID, Rating: 5, Workload: 2, Difficulty: 2}
	require.NoError(t, f.repos.ReviewRepository.Create(ctx, review))

	require.NoError(t, f.repos.ProfessorRepository.Delete(ctx, f.prof.ID))
	got, err := f.repos.ReviewRepository.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ProfessorID)
	assert.Nil(t, got.Professor)

	other := &models.Professor{Name: "Emily Fox", DepartmentID: &f.dept.ID}
	require.NoError(t, f.repos.ProfessorRepository.Create(ctx, other))

	require.NoError(t, f.repos.DepartmentRepository.Delete(ctx, f.dept.ID))

	_, err = f.repos.CourseRepository.GetByID(ctx, f.stat.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	_, err = f.repos.ReviewRepository.GetByID(ctx, review.ID)
	assert.ErrorIs(t, err, apperrors.ErrReviewNotFound)

	prof, err := f.repos.ProfessorRepository.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Nil(t, prof.DepartmentID)
	assert.Nil(t, prof.Department)
}

func TestDeleteMissing(t *testing.T) {
	repos := NewRepositories()
	ctx := context.Background()
	assert.ErrorIs(t, repos.DepartmentRepository.Delete(ctx, 1), apperrors.ErrDepartmentNotFound)
	assert.ErrorIs(t, repos.CourseRepository.Delete(ctx, 1), apperrors.ErrCourseNotFound)
	assert.ErrorIs(t, repos.ProfessorRepository.Delete(ctx, 1), apperrors.ErrProfessorNotFound)
	assert.ErrorIs(t, repos.ReviewRepository.Delete(ctx, 1), apperrors.ErrReviewNotFound)
}
