package nutrition

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/nutrilog/backend/internal/model"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   float64
	}{
		{3.45, 1, 3.5},
		{3.44, 1, 3.4},
		{2.25, 1, 2.3}, // half-even would give 2.2
		{9.095, 1, 9.1},
		{0.5, 0, 1},
		{2.5, 0, 3}, // half-even would give 2
		{226.5, 0, 227},
		{226.49, 0, 226},
		{0, 1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp(tt.in, tt.places), "RoundHalfUp(%v, %d)", tt.in, tt.places)
	}
}

func TestMacroSumEstimate(t *testing.T) {
	sum := NewMacroSum()
	sum.Add(model.Macros{Calories: 350, Protein: 9, Carbs: 60, Fat: 8, Fiber: 2, Sugar: 12}, decimal.NewFromInt(1))
	sum.Add(model.Macros{Calories: 24, Protein: 0.5, Carbs: 5.8, Fat: 0.2, Fiber: 1.5, Sugar: 3.7}, decimal.RequireFromString("0.5"))

	assert.Equal(t, model.NutritionEstimate{
		Calories: 362, Protein: 9, Carbs: 63, Fat: 8, Fiber: 3, Sugar: 14,
	}, sum.Estimate(1))

	assert.Equal(t, model.NutritionEstimate{
		Calories: 181, Protein: 5, Carbs: 31, Fat: 4, Fiber: 1, Sugar: 7,
	}, sum.Estimate(2))

	assert.Equal(t, sum.Estimate(1), sum.Estimate(0), "servings below one act as one")
}
