package nutrition

import (
	"github.com/shopspring/decimal"

	"github.com/pageza/nutrilog/backend/internal/model"
)

// MacroSum accumulates macros in exact decimal arithmetic.
type MacroSum struct {
	calories decimal.Decimal
	protein  decimal.Decimal
	carbs    decimal.Decimal
	fat      decimal.Decimal
	fiber    decimal.Decimal
	sugar    decimal.Decimal
}

func newMacroSum(base model.Macros) *MacroSum {
	s := &MacroSum{
		calories: decimal.Zero,
		protein:  decimal.Zero,
		carbs:    decimal.Zero,
		fat:      decimal.Zero,
		fiber:    decimal.Zero,
		sugar:    decimal.Zero,
	}
	s.add(base, decimal.NewFromInt(1))
	return s
}

// NewMacroSum returns an empty accumulator.
func NewMacroSum() *MacroSum {
	return newMacroSum(model.Macros{})
}

// Add adds weight times m to the sum.
func (s *MacroSum) Add(m model.Macros, weight decimal.Decimal) {
	s.add(m, weight)
}

func (s *MacroSum) add(m model.Macros, weight decimal.Decimal) {
	s.calories = s.calories.Add(decimal.NewFromInt(int64(m.Calories)).Mul(weight))
	s.protein = s.protein.Add(decimal.NewFromFloat(m.Protein).Mul(weight))
	s.carbs = s.carbs.Add(decimal.NewFromFloat(m.Carbs).Mul(weight))
	s.fat = s.fat.Add(decimal.NewFromFloat(m.Fat).Mul(weight))
	s.fiber = s.fiber.Add(decimal.NewFromFloat(m.Fiber).Mul(weight))
	s.sugar = s.sugar.Add(decimal.NewFromFloat(m.Sugar).Mul(weight))
}

// Estimate divides the sum by servings and rounds every field half-up to a
// whole number. Servings below 1 are treated as 1.
func (s *MacroSum) Estimate(servings int) model.NutritionEstimate {
	if servings < 1 {
		servings = 1
	}
	d := decimal.NewFromInt(int64(servings))
	whole := func(v decimal.Decimal) int {
		return int(v.Div(d).Round(0).IntPart())
	}
	return model.NutritionEstimate{
		Calories: whole(s.calories),
		Protein:  whole(s.protein),
		Carbs:    whole(s.carbs),
		Fat:      whole(s.fat),
		Fiber:    whole(s.fiber),
		Sugar:    whole(s.sugar),
	}
}
