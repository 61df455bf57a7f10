package dto

import (
	"time"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/stats"
)

// CourseResponse is a course with its live review averages
type CourseResponse struct {
	ID            int64               `json:"id" example:"1"`
	Code          string              `json:"code" example:"STAT 311"`
	Title         string              `json:"title" example:"Elements of Statistical Methods"`
	Description   *string             `json:"description,omitempty"`
	Department    *DepartmentResponse `json:"department,omitempty"`
	AvgRating     *float64            `json:"avgRating" example:"4.3"`
	AvgWorkload   *float64            `json:"avgWorkload" example:"3.0"`
	AvgDifficulty *float64            `json:"avgDifficulty" example:"2.8"`
	ReviewCount   int                 `json:"reviewCount" example:"4"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// CourseFilterRequest holds the optional list filters for courses
type CourseFilterRequest struct {
	Code           string `form:"code"`
	CodeContains   string `form:"codeContains"`
	TitleContains  string `form:"titleContains"`
	DepartmentCode string `form:"departmentCode"`
	Search         string `form:"search"`
}

// FromCourse converts a course and its reviews into a response
func FromCourse(c *models.Course, reviews []*models.Review) CourseResponse {
	avg := stats.ReviewAverages(reviews)
	return CourseResponse{
		ID:            c.ID,
		Code:          c.Code,
		Title:         c.Title,
		Description:   c.Description,
		Department:    FromDepartment(c.Department),
		AvgRating:     avg.Rating,
		AvgWorkload:   avg.Workload,
		AvgDifficulty: avg.Difficulty,
		ReviewCount:   avg.Count,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CourseDetailResponse is a course together with its reviews, newest first
type CourseDetailResponse struct {
	CourseResponse
	Reviews []*ReviewResponse `json:"reviews"`
}
