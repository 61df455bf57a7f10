// Package models holds the four record types: Department, Course, Professor and Review.
package models

import "time"

// Stamp sets updatedAt to now, and createdAt as well when it has not been set yet.
func Stamp(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
