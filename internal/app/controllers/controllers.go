// Package controllers exposes the course review services over REST.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huskyden/backend/internal/app/models/dto"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/services"
	"github.com/huskyden/backend/internal/pkg/helpers"
)

// Controllers holds every REST controller
type Controllers struct {
	DepartmentController *DepartmentController
	CourseController     *CourseController
	ProfessorController  *ProfessorController
	ReviewController     *ReviewController
}

// NewControllers wires the controllers over the services
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		DepartmentController: NewDepartmentController(svc.DepartmentService, svc.CourseService, svc.ProfessorService),
		CourseController:     NewCourseController(svc.CourseService),
		ProfessorController:  NewProfessorController(svc.ProfessorService),
		ReviewController:     NewReviewController(svc.ReviewService),
	}
}

// pageOptions reads page/size and returns both the store window and the echo values
func pageOptions(ctx *gin.Context) (repositories.ListOptions, int, int) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return repositories.ListOptions{Offset: offset, Limit: limit}, page, size
}

func paginated(items interface{}, total int64, page, size int) dto.APIResponse {
	return dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	})
}

func notFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))
}

func parseID(ctx *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
			WithField(param).
			WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
