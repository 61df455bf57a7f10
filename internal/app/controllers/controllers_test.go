package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/repositories/memory"
	"github.com/huskyden/backend/internal/app/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	repos  *repositories.Repositories
	prof   *models.Professor
	course *models.Course
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewRepositories()

	dept := &models.Department{Code: "STAT", Name: "Statistics"}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, dept))
	course := &models.Course{Code: "STAT 311", Title: "Elements of Statistical Methods", DepartmentID: dept.ID}
	require.NoError(t, repos.CourseRepository.Create(ctx, course))
	require.NoError(t, repos.CourseRepository.Create(ctx, &models.Course{
		Code: "STAT 220", Title: "Principles of Statistical Reasoning", DepartmentID: dept.ID,
	}))
	prof := &models.Professor{Name: "Jon Wellner", DepartmentID: &dept.ID}
	require.NoError(t, repos.ProfessorRepository.Create(ctx, prof))

	c := NewControllers(services.NewServices(repos))
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/departments", c.DepartmentController.GetAllDepartments)
	v1.GET("/departments/:code", c.DepartmentController.GetDepartmentByCode)
	v1.DELETE("/departments/:code", c.DepartmentController.DeleteDepartment)
	v1.GET("/courses", c.CourseController.GetAllCourses)
	v1.GET("/courses/:code", c.CourseController.GetCourseByCode)
	v1.DELETE("/courses/:code", c.CourseController.DeleteCourse)
	v1.GET("/professors", c.ProfessorController.GetAllProfessors)
	v1.GET("/professors/:idOrSlug", c.ProfessorController.GetProfessor)
	v1.DELETE("/professors/:id", c.ProfessorController.DeleteProfessor)
	v1.GET("/reviews", c.ReviewController.GetAllReviews)
	v1.POST("/reviews", c.ReviewController.CreateReview)
	v1.GET("/reviews/:id", c.ReviewController.GetReviewByID)
	v1.DELETE("/reviews/:id", c.ReviewController.DeleteReview)

	return testEnv{router: router, repos: repos, prof: prof, course: course}
}

func (e testEnv) request(t *testing.T, method, target string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func (e testEnv) addReview(t *testing.T, rating int) {
	t.Helper()
	comment := "seeded"
	require.NoError(t, e.repos.ReviewRepository.Create(context.Background(), &models.Review{
		CourseID: e.course.ID, ProfessorID: &e.prof.ID,
		Rating: rating, Workload: 3, Difficulty: 2, Comment: &comment,
	}))
}

func TestCreateReview(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.request(t, http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"courseCode":  "STAT 311",
		"professorId": env.prof.ID,
		"rating":      5,
		"workload":    2,
		"difficulty":  2,
		"comment":     "Excellent professor!",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, body["errors"])
	review := body["review"].(map[string]interface{})
	assert.Equal(t, float64(env.course.ID), review["courseId"])
	assert.Equal(t, "Excellent professor!", review["comment"])

	reviews, total, err := env.repos.ReviewRepository.List(context.Background(), repositories.ReviewFilter{}, repositories.ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestCreateReviewValidation(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]interface{}
		status int
		errors []interface{}
	}{
		{
			name:   "unknown course",
			body:   map[string]interface{}{"courseCode": "STAT 999", "rating": 3, "workload": 3, "difficulty": 3},
			status: http.StatusUnprocessableEntity,
			errors: []interface{}{"Course STAT 999 not found"},
		},
		{
			name:   "unknown professor",
			body:   map[string]interface{}{"courseCode": "STAT 311", "professorId": 404, "rating": 3, "workload": 3, "difficulty": 3},
			status: http.StatusUnprocessableEntity,
			errors: []interface{}{"Professor with id 404 not found"},
		},
		{
			name:   "scores out of range",
			body:   map[string]interface{}{"courseCode": "STAT 311", "rating": 0, "workload": 6, "difficulty": 3},
			status: http.StatusUnprocessableEntity,
			errors: []interface{}{"Rating must be between 1 and 5", "Workload must be between 1 and 5"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			w, body := env.request(t, http.MethodPost, "/api/v1/reviews", tt.body)
			require.Equal(t, tt.status, w.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.errors, body["errors"])
			assert.Nil(t, body["review"])

			_, total, err := env.repos.ReviewRepository.List(context.Background(), repositories.ReviewFilter{}, repositories.ListOptions{})
			require.NoError(t, err)
			assert.Zero(t, total)
		})
	}
}

func TestCreateReviewMissingFields(t *testing.T) {
	env := setupTestEnv(t)
	w, body := env.request(t, http.MethodPost, "/api/v1/reviews", map[string]interface{}{"courseCode": "STAT 311"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestGetAllCourses(t *testing.T) {
	env := setupTestEnv(t)
	env.addReview(t, 4)
	env.addReview(t, 5)

	w, body := env.request(t, http.MethodGet, "/api/v1/courses?size=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	// ordered by code
	first := items[0].(map[string]interface{})
	assert.Equal(t, "STAT 220", first["code"])
	assert.Nil(t, first["avgRating"])

	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["totalItems"])
	assert.Equal(t, float64(2), pagination["totalPages"])

	w, body = env.request(t, http.MethodGet, "/api/v1/courses?titleContains=elements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items = body["data"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 1)
	course := items[0].(map[string]interface{})
	assert.Equal(t, "STAT 311", course["code"])
	assert.Equal(t, 4.5, course["avgRating"])
	assert.Equal(t, float64(2), course["reviewCount"])
}

func TestGetCourseByCode(t *testing.T) {
	env := setupTestEnv(t)
	env.addReview(t, 3)

	w, body := env.request(t, http.MethodGet, "/api/v1/courses/"+url.PathEscape("STAT 311"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Elements of Statistical Methods", data["title"])
	assert.Len(t, data["reviews"], 1)

	w, _ = env.request(t, http.MethodGet, "/api/v1/courses/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfessor(t *testing.T) {
	env := setupTestEnv(t)
	env.addReview(t, 4)

	for _, key := range []string{"jon-wellner", "1"} {
		w, body := env.request(t, http.MethodGet, "/api/v1/professors/"+key, nil)
		require.Equal(t, http.StatusOK, w.Code, key)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Jon Wellner", data["name"])
		assert.Equal(t, 4.0, data["avgRating"])
		assert.Len(t, data["reviews"], 1)
	}

	w, _ := env.request(t, http.MethodGet, "/api/v1/professors/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDepartmentByCode(t *testing.T) {
	env := setupTestEnv(t)

	w, body := env.request(t, http.MethodGet, "/api/v1/departments/STAT", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Statistics", data["name"])
	assert.Len(t, data["courses"], 2)
	assert.Len(t, data["professors"], 1)

	w, body = env.request(t, http.MethodGet, "/api/v1/departments?search=stat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].(map[string]interface{})["items"], 1)
}

func TestReviewsListAndDelete(t *testing.T) {
	env := setupTestEnv(t)
	env.addReview(t, 2)

	w, body := env.request(t, http.MethodGet, "/api/v1/reviews?courseCode="+url.QueryEscape("STAT 311"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 1)
	id := int64(items[0].(map[string]interface{})["id"].(float64))

	w, _ = env.request(t, http.MethodGet, "/api/v1/reviews/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.request(t, http.MethodDelete, "/api/v1/reviews/"+jsonNumber(id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = env.request(t, http.MethodGet, "/api/v1/reviews/"+jsonNumber(id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = env.request(t, http.MethodDelete, "/api/v1/reviews/"+jsonNumber(id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCascades(t *testing.T) {
	env := setupTestEnv(t)
	env.addReview(t, 5)

	w, _ := env.request(t, http.MethodDelete, "/api/v1/professors/"+jsonNumber(env.prof.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	_, body := env.request(t, http.MethodGet, "/api/v1/reviews", nil)
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Nil(t, items[0].(map[string]interface{})["professorId"])

	w, _ = env.request(t, http.MethodDelete, "/api/v1/departments/STAT", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	_, body = env.request(t, http.MethodGet, "/api/v1/courses", nil)
	assert.Empty(t, body["data"].(map[string]interface{})["items"])
	_, body = env.request(t, http.MethodGet, "/api/v1/reviews", nil)
	assert.Empty(t, body["data"].(map[string]interface{})["items"])

	w, _ = env.request(t, http.MethodDelete, "/api/v1/departments/STAT", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func jsonNumber(id int64) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
