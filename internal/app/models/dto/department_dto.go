package dto

import "github.com/huskyden/backend/internal/app/models"

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID   int64  `json:"id" example:"1"`
	Code string `json:"code" example:"STAT"`
	Name string `json:"name" example:"Statistics"`
}

// DepartmentFilterRequest holds the optional list filters for departments
type DepartmentFilterRequest struct {
	Search string `form:"search"`
}

// FromDepartment converts a model to its response form; nil stays nil.
func FromDepartment(d *models.Department) *DepartmentResponse {
	if d == nil {
		return nil
	}
	return &DepartmentResponse{ID: d.ID, Code: d.Code, Name: d.Name}
}

// DepartmentCourse is a course entry in a department listing
type DepartmentCourse struct {
	Code  string `json:"code" example:"STAT 311"`
	Title string `json:"title" example:"Elements of Statistical Methods"`
}

// DepartmentProfessor is a professor entry in a department listing
type DepartmentProfessor struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"Adrian Raftery"`
	Slug string `json:"slug" example:"adrian-raftery"`
}
