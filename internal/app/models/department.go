package models

// Department represents an academic department, e.g. STAT - Statistics
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}
