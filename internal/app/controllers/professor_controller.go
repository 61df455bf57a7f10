package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huskyden/backend/internal/app/models/dto"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/services"
	"github.com/huskyden/backend/internal/middleware"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{professorService: professorService}
}

// GetAllProfessors lists professors with their average rating
// @Summary List professors
// @Tags professors
// @Produce json
// @Param nameContains query string false "Case-insensitive match on name"
// @Param departmentCode query string false "Exact department code"
// @Param search query string false "Case-insensitive match on name"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.ProfessorResponse}}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	var req dto.ProfessorFilterRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}
	opts, page, size := pageOptions(ctx)

	filter := repositories.ProfessorFilter{
		NameContains:   req.NameContains,
		DepartmentCode: req.DepartmentCode,
		Search:         req.Search,
	}
	professors, total, err := c.professorService.ListProfessors(ctx, filter, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ProfessorResponse, 0, len(professors))
	for _, p := range professors {
		reviews, err := c.professorService.ProfessorReviews(ctx, p.ID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		items = append(items, dto.FromProfessor(p, reviews))
	}
	ctx.JSON(http.StatusOK, paginated(items, total, page, size))
}

// GetProfessor retrieves a professor by numeric id or by slug
// @Summary Get professor details
// @Description A numeric path value is treated as the professor id, anything else as the slug.
// @Tags professors
// @Produce json
// @Param idOrSlug path string true "Professor id or slug" example(daniela-witten)
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{idOrSlug} [get]
func (c *ProfessorController) GetProfessor(ctx *gin.Context) {
	key := ctx.Param("idOrSlug")
	var (
		id   int64
		slug string
	)
	if n, err := strconv.ParseInt(key, 10, 64); err == nil {
		id = n
	} else {
		slug = key
	}

	professor, err := c.professorService.GetProfessor(ctx, id, slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if professor == nil {
		notFound(ctx, "Professor not found")
		return
	}

	reviews, err := c.professorService.ProfessorReviews(ctx, professor.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ProfessorDetailResponse{
		ProfessorResponse: dto.FromProfessor(professor, reviews),
		Reviews:           dto.FromReviews(reviews),
	}))
}

// DeleteProfessor removes a professor; their reviews are kept without one
// @Summary Delete a professor
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID" Format(int64) minimum(1)
// @Success 204 "Professor deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.professorService.DeleteProfessor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
