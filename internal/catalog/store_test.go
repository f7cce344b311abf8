package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutrilog/backend/internal/model"
)

func testData() Data {
	return Data{
		Foods: []model.FoodItem{
			{ID: "toast", Name: "Toast", Category: model.CategoryBreakfast, Keywords: []string{" Bread ", ""},
				EligibleAddonCategories: []string{"spread", "fruit"}},
			{ID: "bagel", Name: "Bagel", Category: model.CategoryBreakfast, PopularAddonIDs: []string{"jam", "butter"}},
			{ID: "soup", Name: "Tomato Soup", Category: model.CategoryLunch},
			{ID: "stew", Name: "Beef Stew", Category: "Dinner"},
		},
		Addons: []model.AddOn{
			{ID: "butter", Name: "Butter", Category: "spread"},
			{ID: "banana", Name: "Banana", Category: "fruit"},
			{ID: "jam", Name: "Jam", Category: "spread"},
			{ID: "apple", Name: "Apple", Category: "fruit"},
		},
		Recipes: []model.Recipe{
			{ID: "r1", Name: "Toast Breakfast", RequiredIngredientIDs: []string{"toast"}, Tags: []string{"Healthy"}},
		},
	}
}

func TestNewAndLookups(t *testing.T) {
	s, err := New(testData())
	require.NoError(t, err)

	f, ok := s.FoodByID("toast")
	assert.True(t, ok)
	assert.Equal(t, []string{"bread"}, f.Keywords)

	_, ok = s.FoodByID("missing")
	assert.False(t, ok)

	a, ok := s.AddonByID("jam")
	assert.True(t, ok)
	assert.Equal(t, "Jam", a.Name)

	r, ok := s.RecipeByID("r1")
	assert.True(t, ok)
	assert.Equal(t, 1, r.Servings, "servings default to 1")
	assert.Equal(t, []string{"healthy"}, r.Tags)

	assert.Equal(t, Counts{Foods: 4, Addons: 4, Recipes: 1}, s.Counts())
}

func TestAddonsForFoodByCategory(t *testing.T) {
	s, err := New(testData())
	require.NoError(t, err)

	var ids []string
	for _, a := range s.AddonsForFood("toast") {
		ids = append(ids, a.ID)
	}
	// spread first (declared order), catalog order inside each category
	assert.Equal(t, []string{"butter", "jam", "banana", "apple"}, ids)
}

func TestAddonsForFoodByExplicitIDs(t *testing.T) {
	s, err := New(testData())
	require.NoError(t, err)

	var ids []string
	for _, a := range s.AddonsForFood("bagel") {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"jam", "butter"}, ids)
}

func TestAddonsForFoodWithoutMapping(t *testing.T) {
	s, err := New(testData())
	require.NoError(t, err)

	assert.Empty(t, s.AddonsForFood("soup"))
	assert.NotNil(t, s.AddonsForFood("soup"))
	assert.Empty(t, s.AddonsForFood("nope"))
}

func TestAllFoods(t *testing.T) {
	s, err := New(testData())
	require.NoError(t, err)

	assert.Len(t, s.AllFoods(""), 4)

	breakfast := s.AllFoods("breakfast")
	require.Len(t, breakfast, 2)
	assert.Equal(t, "toast", breakfast[0].ID)
	assert.Equal(t, "bagel", breakfast[1].ID)

	dinner := s.AllFoods("DINNER")
	require.Len(t, dinner, 1, "category is normalized at load and lookup")

	assert.Empty(t, s.AllFoods("brunch"))
}

func TestAllFoodsReturnsCopy(t *testing.T) {
	s, err := New(testData())
	require.NoError(t, err)

	foods := s.AllFoods("")
	foods[0].Name = "changed"

	f, _ := s.FoodByID("toast")
	assert.Equal(t, "Toast", f.Name)
}

func TestLegacyCategoryTableIsFolded(t *testing.T) {
	tests := []struct {
		name  string
		table map[string][]string
	}{
		{"plain key", map[string][]string{"soup": {"Fruit"}}},
		{"padded key", map[string][]string{" soup ": {"Fruit"}}},
		{"repeated category", map[string][]string{"soup": {"fruit", " Fruit"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testData()
			data.AddonCategoriesByFood = tt.table

			s, err := New(data)
			require.NoError(t, err)

			var ids []string
			for _, a := range s.AddonsForFood("soup") {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, []string{"banana", "apple"}, ids)
		})
	}
}

func TestDuplicateEligibleCategoriesListAddonsOnce(t *testing.T) {
	data := testData()
	data.Foods[0].EligibleAddonCategories = []string{"fruit", "Fruit ", "spread"}

	s, err := New(data)
	require.NoError(t, err)

	food, ok := s.FoodByID("toast")
	require.True(t, ok)
	assert.Equal(t, []string{"fruit", "spread"}, food.EligibleAddonCategories)

	var ids []string
	for _, a := range s.AddonsForFood("toast") {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"banana", "apple", "butter", "jam"}, ids)
}

func TestNewRejectsCorruptData(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Data)
		message string
	}{
		{
			name:    "duplicate food id",
			mutate:  func(d *Data) { d.Foods = append(d.Foods, model.FoodItem{ID: "toast", Name: "Toast 2", Category: "lunch"}) },
			message: `food "toast": duplicate id`,
		},
		{
			name:    "duplicate addon id",
			mutate:  func(d *Data) { d.Addons = append(d.Addons, model.AddOn{ID: "jam"}) },
			message: `addon "jam": duplicate id`,
		},
		{
			name: "dangling recipe ingredient",
			mutate: func(d *Data) {
				d.Recipes = append(d.Recipes, model.Recipe{ID: "r2", RequiredIngredientIDs: []string{"ghost"}})
			},
			message: `recipe "r2": required ingredient "ghost" does not exist`,
		},
		{
			name:    "recipe without ingredients",
			mutate:  func(d *Data) { d.Recipes = append(d.Recipes, model.Recipe{ID: "r3"}) },
			message: `recipe "r3": at least one required ingredient is needed`,
		},
		{
			name:    "negative macro",
			mutate:  func(d *Data) { d.Foods[0].BaseMacros.Protein = -1 },
			message: `food "toast": macro protein must be a non-negative number`,
		},
		{
			name:    "nan macro",
			mutate:  func(d *Data) { d.Addons[0].Macros.Fat = math.NaN() },
			message: `addon "butter": macro fat must be a non-negative number`,
		},
		{
			name:    "unknown category",
			mutate:  func(d *Data) { d.Foods[2].Category = "brunch" },
			message: `food "soup": unknown category "brunch"`,
		},
		{
			name:    "dangling popular addon",
			mutate:  func(d *Data) { d.Foods[1].PopularAddonIDs = []string{"caviar"} },
			message: `food "bagel": popular add-on "caviar" does not exist`,
		},
		{
			name:    "both addon shapes",
			mutate:  func(d *Data) { d.Foods[0].PopularAddonIDs = []string{"jam"} },
			message: `food "toast": declares both eligible add-on categories and popular add-on ids`,
		},
		{
			name:    "legacy table for unknown food",
			mutate:  func(d *Data) { d.AddonCategoriesByFood = map[string][]string{"ghost": {"fruit"}} },
			message: `addon_categories_by_food "ghost": food does not exist`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testData()
			tt.mutate(&data)

			s, err := New(data)
			assert.Nil(t, s)
			require.Error(t, err)

			var integrity *IntegrityError
			require.True(t, errors.As(err, &integrity))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNewReportsAllViolations(t *testing.T) {
	data := testData()
	data.Foods[0].BaseMacros.Calories = -5
	data.Recipes[0].RequiredIngredientIDs = []string{"ghost"}

	_, err := New(data)
	var integrity *IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Len(t, integrity.Violations, 2)
}
