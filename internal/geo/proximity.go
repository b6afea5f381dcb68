package geo

import (
	"fmt"
	"math"
	"sort"
)

// Located pairs an item with its distance from the reference point.
type Located[T any] struct {
	Item       T
	DistanceKm float64
}

// ValidateRadius rejects negative or non-finite radii.
func ValidateRadius(radiusKm float64) error {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return fmt.Errorf("%w: radius must be a finite non-negative number of kilometers", ErrInvalidRadius)
	}
	return nil
}

// WithinRadius keeps the items strictly closer than radiusKm to ref.
// Input order is preserved unless sortByDistance is set, in which case the
// result is ordered nearest first (ties keep input order).
func WithinRadius[T any](ref Point, radiusKm float64, items []T, locate func(T) Point, sortByDistance bool) ([]Located[T], error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateRadius(radiusKm); err != nil {
		return nil, err
	}

	result := make([]Located[T], 0)
	for _, item := range items {
		d := Distance(ref, locate(item))
		if d < radiusKm {
			result = append(result, Located[T]{Item: item, DistanceKm: d})
		}
	}

	if sortByDistance {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DistanceKm < result[j].DistanceKm
		})
	}

	return result, nil
}
