package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("  Breakfast ")
	assert.True(t, ok)
	assert.Equal(t, CategoryBreakfast, c)

	_, ok = ParseCategory("brunch")
	assert.False(t, ok)
}

func TestMacrosInvalid(t *testing.T) {
	assert.Empty(t, Macros{Calories: 100, Protein: 1.5}.Invalid())

	bad := Macros{Calories: -1, Fat: math.NaN(), Sugar: math.Inf(1), Fiber: -0.1}.Invalid()
	assert.ElementsMatch(t, []string{"calories", "fat", "sugar", "fiber"}, bad)
}

func TestValidQuantity(t *testing.T) {
	tests := []struct {
		q    float64
		want bool
	}{
		{0.5, true},
		{1, true},
		{2.5, true},
		{0, false},
		{0.25, false},
		{1.2, false},
		{-1, false},
		{100, true},
		{100.5, false},
		{1e17, false},
		{1e20, false},
		{1e308, false},
		{math.Inf(1), false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidQuantity(tt.q), "quantity %v", tt.q)
	}
}

func TestRecipeHasTag(t *testing.T) {
	r := Recipe{Tags: []string{"protein", "quick"}}
	assert.True(t, r.HasTag("protein"))
	assert.False(t, r.HasTag("healthy"))
}
