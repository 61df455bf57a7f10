package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huskyden/backend/internal/app/models/dto"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/services"
	"github.com/huskyden/backend/internal/middleware"
)

// ReviewController handles review-related operations
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetAllReviews lists reviews, newest first
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param courseCode query string false "Exact course code"
// @Param professorId query int false "Professor ID" minimum(1)
// @Param search query string false "Case-insensitive match on course code, course title, professor name or comment"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.ReviewResponse}}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [get]
func (c *ReviewController) GetAllReviews(ctx *gin.Context) {
	var req dto.ReviewFilterRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}
	opts, page, size := pageOptions(ctx)

	filter := repositories.ReviewFilter{
		CourseCode:  req.CourseCode,
		ProfessorID: req.ProfessorID,
		Search:      req.Search,
	}
	reviews, total, err := c.reviewService.ListReviews(ctx, filter, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, paginated(dto.FromReviews(reviews), total, page, size))
}

// GetReviewByID retrieves a single review
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ReviewResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid review ID"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [get]
func (c *ReviewController) GetReviewByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	review, err := c.reviewService.GetReviewByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if review == nil {
		notFound(ctx, "Review not found")
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromReview(review)))
}

// CreateReview submits a review
// @Summary Submit a review
// @Description Validates and stores a review. Validation failures answer 422 with the list of messages.
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.CreateReviewResponse "Review created"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 422 {object} dto.CreateReviewResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	input := services.CreateReviewInput{
		CourseCode: req.CourseCode,
		Rating:     *req.Rating,
		Workload:   *req.Workload,
		Difficulty: *req.Difficulty,
		Comment:    req.Comment,
	}
	if req.ProfessorID != nil {
		input.ProfessorID = *req.ProfessorID
	}

	result, err := c.reviewService.CreateReview(ctx, input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CreateReviewResponse{Success: result.Success, Errors: result.Errors, Review: dto.FromReview(result.Review)}
	if !result.Success {
		ctx.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// DeleteReview removes a single review
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Success 204 "Review deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid review ID"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.reviewService.DeleteReview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
