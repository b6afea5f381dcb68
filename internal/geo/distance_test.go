package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
		tol  float64
	}{
		{"same point", Point{-1.286389, 36.817223}, Point{-1.286389, 36.817223}, 0, 1e-12},
		{"one degree of longitude on the equator", Point{0, 0}, Point{0, 1}, 111.19492664455873, 1e-9},
		{"nairobi to mombasa", Point{-1.286389, 36.817223}, Point{-4.043477, 39.668206}, 440.0, 5.0},
		{"pole to pole", Point{90, 0}, Point{-90, 0}, math.Pi * EarthRadiusKm, 1e-6},
		{"antipodal on equator", Point{0, 0}, Point{0, 180}, math.Pi * EarthRadiusKm, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tt.tol)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Point{Lat: 51.5074, Lon: -0.1278}
	b := Point{Lat: 40.7128, Lon: -74.0060}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestPointValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Point
		wantErr bool
	}{
		{"origin", Point{0, 0}, false},
		{"bounds", Point{90, -180}, false},
		{"latitude too large", Point{90.1, 0}, true},
		{"longitude too small", Point{0, -180.5}, true},
		{"nan", Point{math.NaN(), 0}, true},
		{"infinite", Point{0, math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCoordinates)
				return
			}
			require.NoError(t, err)
		})
	}
}
