package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Code         string    `json:"code" db:"code"`
	Title        string    `json:"title" db:"title"`
	DepartmentID int64     `json:"departmentId" db:"department_id"`
	Description  *string   `json:"description,omitempty" db:"description"` // Nullable
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
