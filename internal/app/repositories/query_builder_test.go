package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseFilterSQL(t *testing.T) {
	b := applyCourseFilter(selectCourses(), CourseFilter{
		CodeContains:   "stat",
		DepartmentCode: "STAT",
	}).OrderBy("c.code")
	query, args, err := paginate(b, ListOptions{Offset: 20, Limit: 10}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "JOIN departments d ON d.id = c.department_id")
	assert.Contains(t, query, "c.code ILIKE $1")
	assert.Contains(t, query, "d.code = $2")
	assert.Contains(t, query, "ORDER BY c.code LIMIT 10 OFFSET 20")
	assert.Equal(t, []interface{}{"%stat%", "STAT"}, args)
}

func TestProfessorFilterSQL(t *testing.T) {
	query, args, err := applyProfessorFilter(selectProfessors(), ProfessorFilter{NameContains: "50%"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "LEFT JOIN departments d")
	assert.Contains(t, query, "p.name ILIKE $1")
	assert.Equal(t, []interface{}{`%50\%%`}, args)
}

func TestReviewFilterSQL(t *testing.T) {
	query, args, err := applyReviewFilter(selectReviews(), ReviewFilter{CourseCode: "STAT 311", ProfessorID: 7}).
		OrderBy("r.created_at DESC", "r.id DESC").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "c.code = $1")
	assert.Contains(t, query, "r.professor_id = $2")
	assert.Contains(t, query, "ORDER BY r.created_at DESC, r.id DESC")
	assert.Equal(t, []interface{}{"STAT 311", int64(7)}, args)
}

func TestDepartmentSearchSQL(t *testing.T) {
	query, args, err := applyDepartmentFilter(selectDepartments(), DepartmentFilter{Search: "stat"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "(d.code ILIKE $1 OR d.name ILIKE $2)")
	assert.Len(t, args, 2)
}

func TestPaginateWithoutLimit(t *testing.T) {
	query, _, err := paginate(selectDepartments(), ListOptions{}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "OFFSET")
}
