// Package stats computes review aggregates on demand. Nothing here is cached: callers pass
// the current review set and get a fresh result.
package stats

import (
	"strconv"

	"github.com/huskyden/backend/internal/app/models"
)

// Mean returns the arithmetic mean of values rounded to one decimal place, or nil when
// values is empty. Zero is never used as a stand-in for "no data".
func Mean(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	m := Round1(float64(sum) / float64(len(values)))
	return &m
}

// Round1 rounds the exact binary value of x to one decimal place, ties to even.
// 4.25 becomes 4.2 and 4.05, stored as 4.04999..., becomes 4.
func Round1(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return v
}

// Averages bundles the three per-review means plus the sample size.
type Averages struct {
	Rating     *float64
	Workload   *float64
	Difficulty *float64
	Count      int
}

// Field selects one score out of a review.
type Field func(*models.Review) int

var (
	RatingField     Field = func(r *models.Review) int { return r.Rating }
	WorkloadField   Field = func(r *models.Review) int { return r.Workload }
	DifficultyField Field = func(r *models.Review) int { return r.Difficulty }
)

// MeanOf averages one field across reviews.
func MeanOf(reviews []*models.Review, field Field) *float64 {
	values := make([]int, 0, len(reviews))
	for _, r := range reviews {
		values = append(values, field(r))
	}
	return Mean(values)
}

// ReviewAverages computes rating, workload and difficulty means in one call.
func ReviewAverages(reviews []*models.Review) Averages {
	return Averages{
		Rating:     MeanOf(reviews, RatingField),
		Workload:   MeanOf(reviews, WorkloadField),
		Difficulty: MeanOf(reviews, DifficultyField),
		Count:      len(reviews),
	}
}
