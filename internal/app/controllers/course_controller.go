package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huskyden/backend/internal/app/models/dto"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/services"
	"github.com/huskyden/backend/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetAllCourses lists courses with their review averages
// @Summary List courses
// @Description Lists courses ordered by code, each with live rating, workload and difficulty averages.
// @Tags courses
// @Produce json
// @Param code query string false "Exact course code"
// @Param codeContains query string false "Case-insensitive match on code"
// @Param titleContains query string false "Case-insensitive match on title"
// @Param departmentCode query string false "Exact department code"
// @Param search query string false "Case-insensitive match on code or title"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.CourseResponse}}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	var req dto.CourseFilterRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}
	opts, page, size := pageOptions(ctx)

	filter := repositories.CourseFilter{
		Code:           req.Code,
		CodeContains:   req.CodeContains,
		TitleContains:  req.TitleContains,
		DepartmentCode: req.DepartmentCode,
		Search:         req.Search,
	}
	courses, total, err := c.courseService.ListCourses(ctx, filter, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		reviews, err := c.courseService.CourseReviews(ctx, course.ID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		items = append(items, dto.FromCourse(course, reviews))
	}
	ctx.JSON(http.StatusOK, paginated(items, total, page, size))
}

// GetCourseByCode retrieves a course with its reviews
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param code path string true "Course code" example(STAT 311)
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if course == nil {
		notFound(ctx, "Course not found")
		return
	}

	reviews, err := c.courseService.CourseReviews(ctx, course.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CourseDetailResponse{
		CourseResponse: dto.FromCourse(course, reviews),
		Reviews:        dto.FromReviews(reviews),
	}))
}

// DeleteCourse removes a course and its reviews
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 204 "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{code} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
