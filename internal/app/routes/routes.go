package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"github.com/huskyden/backend/internal/app/controllers"
	"github.com/huskyden/backend/internal/app/graph"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *controllers.Controllers, schema graphql.Schema) {
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	// GraphQL endpoint, queries and the createReview mutation
	graphqlHandler := graph.Handler(schema)
	router.POST("/graphql", graphqlHandler)
	router.GET("/graphql", graphqlHandler)

	// API version group
	v1 := router.Group("/api/v1")

	departments := v1.Group("/departments")
	{
		departments.GET("", c.DepartmentController.GetAllDepartments)
		departments.GET("/:code", c.DepartmentController.GetDepartmentByCode)
		departments.DELETE("/:code", c.DepartmentController.DeleteDepartment)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.CourseController.GetAllCourses)
		courses.GET("/:code", c.CourseController.GetCourseByCode)
		courses.DELETE("/:code", c.CourseController.DeleteCourse)
	}

	professors := v1.Group("/professors")
	{
		professors.GET("", c.ProfessorController.GetAllProfessors)
		professors.GET("/:idOrSlug", c.ProfessorController.GetProfessor)
		professors.DELETE("/:id", c.ProfessorController.DeleteProfessor)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.GET("", c.ReviewController.GetAllReviews)
		reviews.POST("", c.ReviewController.CreateReview)
		reviews.GET("/:id", c.ReviewController.GetReviewByID)
		reviews.DELETE("/:id", c.ReviewController.DeleteReview)
	}
}
