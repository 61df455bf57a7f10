package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huskyden/backend/internal/app/models/dto"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/services"
	"github.com/huskyden/backend/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
	courseService     services.CourseService
	professorService  services.ProfessorService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService, courseService services.CourseService, professorService services.ProfessorService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		courseService:     courseService,
		professorService:  professorService,
	}
}

// DepartmentDetailResponse is a department with its courses and professors
type DepartmentDetailResponse struct {
	dto.DepartmentResponse
	Courses    []dto.DepartmentCourse    `json:"courses"`
	Professors []dto.DepartmentProfessor `json:"professors"`
}

// GetAllDepartments lists departments
// @Summary List departments
// @Description Lists departments ordered by code. search matches code or name.
// @Tags departments
// @Produce json
// @Param search query string false "Case-insensitive match on code or name"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.DepartmentResponse}}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	var req dto.DepartmentFilterRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}
	opts, page, size := pageOptions(ctx)

	departments, total, err := c.departmentService.ListDepartments(ctx, repositories.DepartmentFilter{Search: req.Search}, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]*dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		items = append(items, dto.FromDepartment(d))
	}
	ctx.JSON(http.StatusOK, paginated(items, total, page, size))
}

// GetDepartmentByCode retrieves a department with its courses and professors
// @Summary Get department details
// @Tags departments
// @Produce json
// @Param code path string true "Department code" example(STAT)
// @Success 200 {object} dto.APIResponse{data=DepartmentDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{code} [get]
func (c *DepartmentController) GetDepartmentByCode(ctx *gin.Context) {
	department, err := c.departmentService.GetDepartmentByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if department == nil {
		notFound(ctx, "Department not found")
		return
	}

	courses, _, err := c.courseService.ListCourses(ctx, repositories.CourseFilter{DepartmentID: department.ID}, repositories.ListOptions{})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	professors, _, err := c.professorService.ListProfessors(ctx, repositories.ProfessorFilter{DepartmentID: department.ID}, repositories.ListOptions{})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := DepartmentDetailResponse{
		DepartmentResponse: *dto.FromDepartment(department),
		Courses:            make([]dto.DepartmentCourse, 0, len(courses)),
		Professors:         make([]dto.DepartmentProfessor, 0, len(professors)),
	}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.DepartmentCourse{Code: course.Code, Title: course.Title})
	}
	for _, p := range professors {
		resp.Professors = append(resp.Professors, dto.DepartmentProfessor{ID: p.ID, Name: p.Name, Slug: p.Slug})
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteDepartment removes a department with its courses and their reviews
// @Summary Delete a department
// @Description Deletes the department, its courses and their reviews. Professors are kept without a department.
// @Tags departments
// @Produce json
// @Param code path string true "Department code"
// @Success 204 "Department deleted"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{code} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	if err := c.departmentService.DeleteDepartment(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
