package models

import "time"

// Professor represents an instructor who can be attached to reviews.
// Slug is assigned once at creation and kept across renames.
type Professor struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"` // Nullable, cleared when the department is deleted
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	Department *Department `json:"department,omitempty"`
}
