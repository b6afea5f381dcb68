package utils

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name            string
		page, perPage   int
		wantPage, wantN int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"negative page", -3, 5, 1, 5},
		{"capped size", 2, 500, 2, MaxPageSize},
		{"untouched", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := NormalizePage(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantN, perPage)
		})
	}
}

func TestPageWindow(t *testing.T) {
	start, end := PageWindow(25, 3, 10)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = PageWindow(25, 9, 10)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, LastPage(0, 10))
	assert.Equal(t, 1, LastPage(10, 10))
	assert.Equal(t, 2, LastPage(11, 10))
	assert.Equal(t, 3, LastPage(25, 10))
}

func TestSample(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Sample(items, 6, rand.New(rand.NewSource(42)))
	require.Len(t, got, 6)

	seen := map[int]bool{}
	for _, v := range got {
		assert.Contains(t, items, v)
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}

	again := Sample(items, 6, rand.New(rand.NewSource(42)))
	assert.Equal(t, got, again, "same seed must give the same sample")

	assert.Len(t, Sample(items[:3], 6, rand.New(rand.NewSource(1))), 3)
	assert.Empty(t, Sample(items, 0, rand.New(rand.NewSource(1))))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, items, "input must not be reordered")
}

func TestShuffle(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	first := Shuffle(items, rand.New(rand.NewSource(7)))
	second := Shuffle(items, rand.New(rand.NewSource(7)))

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, items, first)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
}

func TestLegacyKeyPlausible(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"", false},
		{"abc123", true},
		{"abc-123", false},
		{"key with space", false},
		// 'z' is 122; nine of them sum to 1098.
		{"zzzzzzzzz", false},
		// eight 'z' plus "0" is 976 + 48 = 1024.
		{"zzzzzzzz0", false},
		// eight 'z' sum to 976.
		{"zzzzzzzz", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, LegacyKeyPlausible(tt.token))
		})
	}
}

func TestSessionToken(t *testing.T) {
	token, expires, err := GenerateSessionToken(42, "test-secret", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := ValidateSessionToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.ID)

	_, err = ValidateSessionToken(token, "other-secret")
	assert.Error(t, err)

	other, _, err := GenerateSessionToken(42, "test-secret", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, token, other, "tokens carry a unique id")
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidEmail("tenant@example.com"))
	assert.False(t, IsValidEmail("tenant@"))
	assert.True(t, IsValidPassword("longenough"))
	assert.False(t, IsValidPassword("short"))
	assert.True(t, IsValidPhone("+254 712 345678"))
	assert.False(t, IsValidPhone("call me"))
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
	assert.Equal(t, "x", SanitizeString("  x \n"))
}
