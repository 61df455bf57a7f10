package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/repositories/memory"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	require.Len(t, catalog.Departments, 1)
	assert.Equal(t, "STAT", catalog.Departments[0].Code)
	assert.Len(t, catalog.Courses, 45)
	assert.Len(t, catalog.Professors, 6)
	assert.Len(t, catalog.Reviews, 35)
	for _, c := range catalog.Courses {
		assert.Equal(t, "STAT", c.Department, c.Code)
		assert.NotEmpty(t, c.Title, c.Code)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	first, err := Run(ctx, repos, catalog)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Departments)
	assert.Equal(t, 45, first.Courses)
	assert.Equal(t, 6, first.Professors)
	// STAT 416, 538 and 544 are not in the catalog; five entries repeat a (course, professor) pair
	assert.Equal(t, 7, first.Skipped)
	assert.Equal(t, 23, first.Reviews)

	second, err := Run(ctx, repos, catalog)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 7}, second)

	_, total, err := repos.ReviewRepository.List(ctx, repositories.ReviewFilter{}, repositories.ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 23, total)

	_, total, err = repos.CourseRepository.List(ctx, repositories.CourseFilter{DepartmentCode: "STAT"}, repositories.ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 45, total)

	witten, err := repos.ProfessorRepository.GetBySlug(ctx, "daniela-witten")
	require.NoError(t, err)
	assert.Equal(t, "Daniela Witten", witten.Name)
}

func TestRunKeepsFirstReviewForPair(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	catalog, err := ParseCatalog([]byte(`
departments:
  - {code: STAT, name: Statistics}
courses:
  - {code: "STAT 311", department: STAT, title: "Elements of Statistical Methods"}
professors:
  - {name: Michael Perlman, department: STAT}
reviews:
  - {course: "STAT 311", professor: Michael Perlman, rating: 4, workload: 3, difficulty: 3, comment: first}
  - {course: "STAT 311", professor: Michael Perlman, rating: 1, workload: 1, difficulty: 1, comment: second}
  - {course: "STAT 311", rating: 5, workload: 2, difficulty: 2, comment: anonymous}
  - {course: "STAT 311", professor: Nobody, rating: 5, workload: 2, difficulty: 2}
`))
	require.NoError(t, err)

	res, err := Run(ctx, repos, catalog)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Reviews)
	assert.Equal(t, 1, res.Skipped)

	reviews, _, err := repos.ReviewRepository.List(ctx, repositories.ReviewFilter{CourseCode: "STAT 311"}, repositories.ListOptions{})
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	comments := []string{*reviews[0].Comment, *reviews[1].Comment}
	assert.ElementsMatch(t, []string{"first", "anonymous"}, comments)
}

func TestRunReportsUnknownDepartment(t *testing.T) {
	catalog := &Catalog{Courses: []CourseEntry{{Code: "MATH 124", Department: "MATH", Title: "Calculus"}}}
	res, err := Run(context.Background(), memory.NewRepositories(), catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown department MATH")
	assert.Zero(t, res.Courses)
}
