// Package listing turns loaded manager/house graphs into ranked and
// formatted listings. Everything here is pure: callers load the data and
// decide how fresh it must be.
package listing

import "github.com/banit/househunt-backend/internal/models"

// AverageRating is the mean rating of reviews, or 0 when there are none.
func AverageRating(reviews []models.Review) float64 {
	sum, count := RatingSum(reviews)
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// RatingSum returns the sum of raw ratings and the number of reviews.
func RatingSum(reviews []models.Review) (sum int, count int) {
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum, len(reviews)
}
