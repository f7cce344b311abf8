package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageza/nutrilog/backend/internal/catalog"
	"github.com/pageza/nutrilog/backend/internal/model"
)

// CatalogData returns a small but complete catalog used across package tests.
// Each call returns fresh slices so tests may mutate the result.
func CatalogData() catalog.Data {
	return catalog.Data{
		Foods: []model.FoodItem{
			{
				ID: "oatmeal_plain", Name: "Plain Oatmeal", Category: model.CategoryBreakfast,
				ServingSize: "100g", Description: "Rolled oats cooked in water",
				Tags:                    []string{"whole grain", "warm"},
				BaseMacros:              model.Macros{Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Fiber: 10.6, Sugar: 0.99},
				Keywords:                []string{"oats", "oatmeal", "porridge"},
				EligibleAddonCategories: []string{"sweetener", "fruit"},
			},
			{
				ID: "breakfast_pancakes", Name: "Pancakes", Category: model.CategoryBreakfast,
				ServingSize:     "3 pancakes",
				BaseMacros:      model.Macros{Calories: 350, Protein: 9, Carbs: 60, Fat: 8, Fiber: 2, Sugar: 12},
				Keywords:        []string{"pancake", "flapjack"},
				PopularAddonIDs: []string{"strawberries", "honey"},
			},
			{
				ID: "greek_yogurt", Name: "Greek Yogurt", Category: model.CategoryBreakfast,
				ServingSize:             "170g",
				Tags:                    []string{"high protein"},
				BaseMacros:              model.Macros{Calories: 100, Protein: 10, Carbs: 3.6, Fat: 0.4, Fiber: 0, Sugar: 3.2},
				Keywords:                []string{"yogurt", "yoghurt"},
				EligibleAddonCategories: []string{"fruit"},
			},
			{
				ID: "almonds_raw", Name: "Raw Almonds", Category: model.CategorySnacks,
				ServingSize: "28g",
				Tags:        []string{"healthy fats"},
				BaseMacros:  model.Macros{Calories: 164, Protein: 6, Carbs: 6.1, Fat: 14.2, Fiber: 3.5, Sugar: 1.2},
				Keywords:    []string{"almonds", "nuts"},
			},
			{
				ID: "chicken_salad", Name: "Grilled Chicken Salad", Category: model.CategoryLunch,
				ServingSize:             "1 bowl",
				BaseMacros:              model.Macros{Calories: 320, Protein: 35, Carbs: 12, Fat: 14, Fiber: 4, Sugar: 5},
				Keywords:                []string{"chicken", "salad"},
				EligibleAddonCategories: []string{"cheese"},
			},
			{
				ID: "chicken_wrap", Name: "Chicken Wrap", Category: model.CategoryLunch,
				ServingSize: "1 wrap",
				BaseMacros:  model.Macros{Calories: 410, Protein: 28, Carbs: 38, Fat: 15, Fiber: 3, Sugar: 4},
				Keywords:    []string{"chicken", "wrap"},
			},
			{
				ID: "salmon_fillet", Name: "Baked Salmon", Category: model.CategoryDinner,
				ServingSize: "150g",
				BaseMacros:  model.Macros{Calories: 367, Protein: 39, Carbs: 0, Fat: 22, Fiber: 0, Sugar: 0},
				Keywords:    []string{"salmon", "fish"},
			},
			{
				ID: "apple", Name: "Apple", Category: model.CategorySnacks,
				ServingSize: "1 medium",
				BaseMacros:  model.Macros{Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4, Sugar: 19},
				Keywords:    []string{"fruit"},
			},
		},
		Addons: []model.AddOn{
			{ID: "honey", Name: "Honey", Category: "sweetener", ServingSize: "1 tbsp",
				Macros: model.Macros{Calories: 64, Protein: 0.1, Carbs: 17.3, Fat: 0, Fiber: 0, Sugar: 17.2}},
			{ID: "maple_syrup", Name: "Maple Syrup", Category: "sweetener", ServingSize: "1 tbsp",
				Macros: model.Macros{Calories: 52, Protein: 0, Carbs: 13.4, Fat: 0, Fiber: 0, Sugar: 12.1}},
			{ID: "strawberries", Name: "Strawberries", Category: "fruit", ServingSize: "1/2 cup",
				Macros: model.Macros{Calories: 24, Protein: 0.5, Carbs: 5.8, Fat: 0.2, Fiber: 1.5, Sugar: 3.7}},
			{ID: "blueberries", Name: "Blueberries", Category: "fruit", ServingSize: "1/2 cup",
				Macros: model.Macros{Calories: 42, Protein: 0.5, Carbs: 10.7, Fat: 0.2, Fiber: 1.8, Sugar: 7.4}},
			{ID: "feta", Name: "Feta", Category: "cheese", ServingSize: "28g",
				Macros: model.Macros{Calories: 75, Protein: 4, Carbs: 1.2, Fat: 6, Fiber: 0, Sugar: 1.1}},
		},
		Recipes: []model.Recipe{
			{ID: "recipe_overnight_oats", Name: "Overnight Oats",
				RequiredIngredientIDs: []string{"oatmeal_plain", "greek_yogurt"},
				SuggestedAddonIDs:     []string{"honey", "strawberries"},
				Servings:              2, Tags: []string{"breakfast", "healthy"}},
			{ID: "recipe_protein_pancakes", Name: "Protein Pancakes",
				RequiredIngredientIDs: []string{"breakfast_pancakes"},
				SuggestedAddonIDs:     []string{"strawberries"},
				Servings:              1, Tags: []string{"protein"}},
			{ID: "recipe_trail_mix", Name: "Trail Mix",
				RequiredIngredientIDs: []string{"almonds_raw"},
				Tags:                  []string{"snack"}},
			{ID: "recipe_chicken_bowl", Name: "Chicken Feta Bowl",
				RequiredIngredientIDs: []string{"chicken_salad"},
				SuggestedAddonIDs:     []string{"feta"},
				Servings:              1, Tags: []string{"lunch"}},
			{ID: "recipe_salmon_dinner", Name: "Salmon Dinner",
				RequiredIngredientIDs: []string{"salmon_fillet"},
				Tags:                  []string{"Protein"}},
			{ID: "recipe_fruit_bowl", Name: "Yogurt Fruit Bowl",
				RequiredIngredientIDs: []string{"greek_yogurt", "apple"},
				SuggestedAddonIDs:     []string{"blueberries"},
				Tags:                  []string{"healthy"}},
			{ID: "recipe_chicken_wrap", Name: "Chicken Wrap Lunch",
				RequiredIngredientIDs: []string{"chicken_wrap"},
				Tags:                  []string{"quick"}},
		},
	}
}

// NewTestCatalog builds a Store from CatalogData.
func NewTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.New(CatalogData())
	require.NoError(t, err)
	return store
}
