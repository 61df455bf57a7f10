package models

import "time"

// Review is a single rating of a course, optionally tied to the professor who taught it.
type Review struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	ProfessorID *int64    `json:"professorId,omitempty" db:"professor_id"` // Nullable, cleared when the professor is deleted
	Rating      int       `json:"rating" db:"rating"`
	Workload    int       `json:"workload" db:"workload"`
	Difficulty  int       `json:"difficulty" db:"difficulty"`
	Comment     *string   `json:"comment" db:"comment"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	Course    *Course    `json:"course,omitempty"`
	Professor *Professor `json:"professor,omitempty"`
}
