package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/repositories/memory"
	"github.com/huskyden/backend/internal/app/services"
	"github.com/huskyden/backend/internal/pkg/helpers"
)

type fixture struct {
	repos  *repositories.Repositories
	schema graphql.Schema
	prof   *models.Professor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewRepositories()

	dept := &models.Department{Code: "STAT", Name: "Statistics"}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, dept))
	for _, c := range []models.Course{
		{Code: "STAT 311", Title: "Elements of Statistical Methods"},
		{Code: "STAT 220", Title: "Principles of Statistical Reasoning"},
		{Code: "STAT 302", Title: "Statistical Software and Its Applications"},
	} {
		c := c
		c.DepartmentID = dept.ID
		require.NoError(t, repos.CourseRepository.Create(ctx, &c))
	}
	prof := &models.Professor{Name: "Daniela Witten", DepartmentID: &dept.ID}
	require.NoError(t, repos.ProfessorRepository.Create(ctx, prof))

	schema, err := NewSchema(services.NewServices(repos))
	require.NoError(t, err)
	return fixture{repos: repos, schema: schema, prof: prof}
}

func (f fixture) do(t *testing.T, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:         f.schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        context.Background(),
	})
	require.Empty(t, result.Errors)

	// round-trip through JSON so assertions see plain maps and float64 numbers
	raw, err := json.Marshal(result.Data)
	require.NoError(t, err)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &data))
	return data
}

const createReview = `
mutation Create($input: CreateReviewInput!) {
  createReview(input: $input) {
    success
    errors
    review { id rating comment professor { name slug } course { code } }
  }
}`

func TestCreateReviewMutation(t *testing.T) {
	f := newFixture(t)

	data := f.do(t, createReview, map[string]interface{}{
		"input": map[string]interface{}{
			"courseCode": "STAT 311", "professorId": f.prof.ID, "rating": 4, "workload": 3, "difficulty": 2,
		},
	})
	payload := data["createReview"].(map[string]interface{})
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, []interface{}{}, payload["errors"])
	review := payload["review"].(map[string]interface{})
	assert.Equal(t, "", review["comment"])
	assert.Equal(t, "daniela-witten", review["professor"].(map[string]interface{})["slug"])
	assert.Equal(t, "STAT 311", review["course"].(map[string]interface{})["code"])
}

func TestCreateReviewMutation_Errors(t *testing.T) {
	f := newFixture(t)

	data := f.do(t, createReview, map[string]interface{}{
		"input": map[string]interface{}{"courseCode": "STAT 311", "rating": 0, "workload": 6, "difficulty": 3},
	})
	payload := data["createReview"].(map[string]interface{})
	assert.Equal(t, false, payload["success"])
	assert.Nil(t, payload["review"])
	assert.Equal(t, []interface{}{"Rating must be between 1 and 5", "Workload must be between 1 and 5"}, payload["errors"])

	data = f.do(t, createReview, map[string]interface{}{
		"input": map[string]interface{}{"courseCode": "CSE 142", "rating": 3, "workload": 3, "difficulty": 3},
	})
	payload = data["createReview"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Course CSE 142 not found"}, payload["errors"])
}

func TestCourseQuery(t *testing.T) {
	f := newFixture(t)
	for _, rating := range []int{4, 5, 4} {
		f.do(t, createReview, map[string]interface{}{
			"input": map[string]interface{}{"courseCode": "STAT 311", "rating": rating, "workload": 3, "difficulty": 2},
		})
	}

	data := f.do(t, `query($code: String!) {
	  course(code: $code) { code department { code name } avgRating avgWorkload avgDifficulty reviewCount reviews { rating } }
	}`, map[string]interface{}{"code": "STAT 311"})
	course := data["course"].(map[string]interface{})
	assert.Equal(t, 4.3, course["avgRating"])
	assert.Equal(t, 3.0, course["avgWorkload"])
	assert.Equal(t, 2.0, course["avgDifficulty"])
	assert.Equal(t, 3.0, course["reviewCount"])
	assert.Len(t, course["reviews"], 3)
	assert.Equal(t, "Statistics", course["department"].(map[string]interface{})["name"])

	data = f.do(t, `{ course(code: "STAT 220") { avgRating reviews { id } } }`, nil)
	course = data["course"].(map[string]interface{})
	assert.Nil(t, course["avgRating"])
	assert.Equal(t, []interface{}{}, course["reviews"])

	data = f.do(t, `{ course(code: "NOPE 1") { code } }`, nil)
	assert.Nil(t, data["course"])
}

func TestCoursesConnection(t *testing.T) {
	f := newFixture(t)

	data := f.do(t, `{ courses(first: 2) {
	  totalCount
	  pageInfo { hasNextPage hasPreviousPage endCursor }
	  edges { cursor node { code } }
	} }`, nil)
	conn := data["courses"].(map[string]interface{})
	assert.Equal(t, 3.0, conn["totalCount"])
	edges := conn["edges"].([]interface{})
	require.Len(t, edges, 2)
	assert.Equal(t, "STAT 220", edges[0].(map[string]interface{})["node"].(map[string]interface{})["code"])
	pi := conn["pageInfo"].(map[string]interface{})
	assert.Equal(t, true, pi["hasNextPage"])
	assert.Equal(t, false, pi["hasPreviousPage"])
	assert.Equal(t, helpers.OffsetToCursor(1), pi["endCursor"])

	data = f.do(t, `query($after: String) { courses(first: 2, after: $after) { edges { node { code } } pageInfo { hasNextPage hasPreviousPage } } }`,
		map[string]interface{}{"after": pi["endCursor"]})
	conn = data["courses"].(map[string]interface{})
	edges = conn["edges"].([]interface{})
	require.Len(t, edges, 1)
	assert.Equal(t, "STAT 311", edges[0].(map[string]interface{})["node"].(map[string]interface{})["code"])
	assert.Equal(t, false, conn["pageInfo"].(map[string]interface{})["hasNextPage"])
	assert.Equal(t, false, conn["pageInfo"].(map[string]interface{})["hasPreviousPage"])
}

func TestCoursesFilters(t *testing.T) {
	f := newFixture(t)

	data := f.do(t, `{ courses(title_Icontains: "software") { edges { node { code } } } }`, nil)
	edges := data["courses"].(map[string]interface{})["edges"].([]interface{})
	require.Len(t, edges, 1)
	assert.Equal(t, "STAT 302", edges[0].(map[string]interface{})["node"].(map[string]interface{})["code"])

	data = f.do(t, `{ courses(department_Code: "MATH") { totalCount } }`, nil)
	assert.Equal(t, 0.0, data["courses"].(map[string]interface{})["totalCount"])
}

func TestProfessorQuery(t *testing.T) {
	f := newFixture(t)

	data := f.do(t, `{ professor(slug: "daniela-witten") { name avgRating department { code } } }`, nil)
	prof := data["professor"].(map[string]interface{})
	assert.Equal(t, "Daniela Witten", prof["name"])
	assert.Nil(t, prof["avgRating"])

	data = f.do(t, `query($id: Int) { professor(id: $id) { slug } }`, map[string]interface{}{"id": f.prof.ID})
	assert.Equal(t, "daniela-witten", data["professor"].(map[string]interface{})["slug"])

	data = f.do(t, `{ professor { name } }`, nil)
	assert.Nil(t, data["professor"])
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	router := gin.New()
	router.POST("/graphql", Handler(f.schema))
	router.GET("/graphql", Handler(f.schema))

	body, _ := json.Marshal(Request{Query: `{ departments { edges { node { code } } } }`})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"STAT"`)

	w = httptest.NewRecorder()
	q := url.Values{"query": {`{ professors(name_Icontains: "witten") { totalCount } }`}}
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCount":1`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader([]byte(`{}`))))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewsAndNestedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	course, err := f.repos.CourseRepository.GetByCode(ctx, "STAT 311")
	require.NoError(t, err)
	require.NoError(t, f.repos.ReviewRepository.Create(ctx, &models.Review{
		CourseID: course.ID, ProfessorID: &f.prof.ID, Rating: 5, Workload: 3, Difficulty: 3,
	}))
	require.NoError(t, f.repos.ReviewRepository.Create(ctx, &models.Review{
		CourseID: course.ID, Rating: 2, Workload: 4, Difficulty: 4,
	}))

	data := f.do(t, `{ reviews(course_Code: "STAT 311") {
	  totalCount
	  edges { node { rating course { code } professor { name } } }
	} }`, nil)
	conn := data["reviews"].(map[string]interface{})
	assert.EqualValues(t, 2, conn["totalCount"])
	var withProfessor int
	for _, e := range conn["edges"].([]interface{}) {
		node := e.(map[string]interface{})["node"].(map[string]interface{})
		assert.Equal(t, "STAT 311", node["course"].(map[string]interface{})["code"])
		if node["professor"] != nil {
			withProfessor++
			assert.Equal(t, "Daniela Witten", node["professor"].(map[string]interface{})["name"])
		}
	}
	assert.Equal(t, 1, withProfessor)

	data = f.do(t, `query($id: Int) { reviews(professor_Id: $id) { totalCount } }`, map[string]interface{}{"id": f.prof.ID})
	assert.EqualValues(t, 1, data["reviews"].(map[string]interface{})["totalCount"])

	data = f.do(t, `{ department(code: "STAT") { courses { code } professors { name } } }`, nil)
	dept := data["department"].(map[string]interface{})
	assert.Len(t, dept["courses"], 3)
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "Daniela Witten"}}, dept["professors"])
}
