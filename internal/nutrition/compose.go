// Package nutrition aggregates food and add-on macros into rounded totals.
package nutrition

import (
	"github.com/shopspring/decimal"

	"github.com/pageza/nutrilog/backend/internal/model"
)

// AddonSource resolves add-on ids.
type AddonSource interface {
	AddonByID(id string) (model.AddOn, bool)
}

// Calculator composes nutrition totals against one catalog snapshot.
type Calculator struct {
	addons AddonSource
}

// NewCalculator returns a Calculator resolving add-ons through addons.
func NewCalculator(addons AddonSource) *Calculator {
	return &Calculator{addons: addons}
}

// Compose returns the nutrition for quantity servings of food topped with the
// given add-ons.
//
// Unknown add-on ids are skipped and a repeated id counts once. The add-ons are
// scaled by quantity along with the food. Totals are rounded once, after
// scaling: calories to a whole number, every other field to one decimal.
//
// Compose does not validate quantity; callers are expected to pass a value
// accepted by model.ValidQuantity.
func (c *Calculator) Compose(food model.FoodItem, addonIDs []string, quantity float64) model.ComposedNutrition {
	total := newMacroSum(food.BaseMacros)

	applied := []string{}
	seen := make(map[string]bool, len(addonIDs))
	for _, id := range addonIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		addon, ok := c.addons.AddonByID(id)
		if !ok {
			continue
		}
		total.add(addon.Macros, decimal.NewFromInt(1))
		applied = append(applied, id)
	}

	q := decimal.NewFromFloat(quantity)
	return model.ComposedNutrition{
		Calories: int(total.calories.Mul(q).Round(0).IntPart()),
		Protein:  roundTenth(total.protein.Mul(q)),
		Carbs:    roundTenth(total.carbs.Mul(q)),
		Fat:      roundTenth(total.fat.Mul(q)),
		Fiber:    roundTenth(total.fiber.Mul(q)),
		Sugar:    roundTenth(total.sugar.Mul(q)),
		AddonIDs: applied,
		Quantity: quantity,
	}
}

func roundTenth(d decimal.Decimal) float64 {
	f, _ := d.Round(1).Float64()
	return f
}
