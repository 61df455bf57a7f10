package dto

import (
	"time"

	"github.com/huskyden/backend/internal/app/models"
)

// ReviewResponse represents a single review
type ReviewResponse struct {
	ID            int64     `json:"id" example:"12"`
	CourseID      int64     `json:"courseId" example:"4"`
	CourseCode    string    `json:"courseCode,omitempty" example:"STAT 311"`
	ProfessorID   *int64    `json:"professorId" example:"2"`
	ProfessorName string    `json:"professorName,omitempty" example:"Jon Wellner"`
	Rating        int       `json:"rating" example:"5"`
	Workload      int       `json:"workload" example:"2"`
	Difficulty    int       `json:"difficulty" example:"2"`
	Comment       string    `json:"comment" example:"Excellent professor!"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateReviewRequest is the body of POST /reviews. Scores are pointers so that a
// present-but-out-of-range value (such as 0) reaches the range checks.
type CreateReviewRequest struct {
	CourseCode  string  `json:"courseCode" binding:"required"`
	ProfessorID *int64  `json:"professorId"`
	Rating      *int    `json:"rating" binding:"required"`
	Workload    *int    `json:"workload" binding:"required"`
	Difficulty  *int    `json:"difficulty" binding:"required"`
	Comment     *string `json:"comment"`
}

// CreateReviewResponse mirrors the createReview mutation payload
type CreateReviewResponse struct {
	Success bool            `json:"success" example:"false"`
	Errors  []string        `json:"errors"`
	Review  *ReviewResponse `json:"review"`
}

// ReviewFilterRequest holds the optional list filters for reviews
type ReviewFilterRequest struct {
	CourseCode  string `form:"courseCode"`
	ProfessorID int64  `form:"professorId" binding:"omitempty,gt=0"`
	Search      string `form:"search"`
}

// FromReview converts a review model to its response form
func FromReview(r *models.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	resp := &ReviewResponse{
		ID:          r.ID,
		CourseID:    r.CourseID,
		ProfessorID: r.ProfessorID,
		Rating:      r.Rating,
		Workload:    r.Workload,
		Difficulty:  r.Difficulty,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Comment != nil {
		resp.Comment = *r.Comment
	}
	if r.Course != nil {
		resp.CourseCode = r.Course.Code
	}
	if r.Professor != nil {
		resp.ProfessorName = r.Professor.Name
	}
	return resp
}

// FromReviews converts a slice of reviews
func FromReviews(reviews []*models.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}
