package dto

import (
	"time"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/stats"
)

// ProfessorResponse is a professor with the live average rating of their reviews
type ProfessorResponse struct {
	ID          int64               `json:"id" example:"1"`
	Name        string              `json:"name" example:"Daniela Witten"`
	Slug        string              `json:"slug" example:"daniela-witten"`
	Department  *DepartmentResponse `json:"department,omitempty"`
	AvgRating   *float64            `json:"avgRating" example:"4.7"`
	ReviewCount int                 `json:"reviewCount" example:"6"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ProfessorFilterRequest holds the optional list filters for professors
type ProfessorFilterRequest struct {
	NameContains   string `form:"nameContains"`
	DepartmentCode string `form:"departmentCode"`
	Search         string `form:"search"`
}

// FromProfessor converts a professor and its reviews into a response
func FromProfessor(p *models.Professor, reviews []*models.Review) ProfessorResponse {
	avg := stats.ReviewAverages(reviews)
	return ProfessorResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Department:  FromDepartment(p.Department),
		AvgRating:   avg.Rating,
		ReviewCount: avg.Count,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProfessorDetailResponse is a professor together with their reviews, newest first
type ProfessorDetailResponse struct {
	ProfessorResponse
	Reviews []*ReviewResponse `json:"reviews"`
}
