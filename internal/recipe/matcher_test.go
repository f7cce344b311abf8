package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutrilog/backend/internal/model"
	"github.com/pageza/nutrilog/backend/internal/recipe"
	"github.com/pageza/nutrilog/backend/internal/testhelpers"
)

func recipeIDs(suggestions []recipe.Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Recipe.ID
	}
	return out
}

func TestSuggestWithoutHistory(t *testing.T) {
	matcher := recipe.NewMatcher(testhelpers.NewTestCatalog(t))

	got := matcher.Suggest(nil, 0)
	assert.Equal(t, []string{"recipe_overnight_oats", "recipe_protein_pancakes", "recipe_trail_mix"}, recipeIDs(got))
	for _, s := range got {
		assert.False(t, s.Matched)
	}

	assert.Equal(t, recipeIDs(got), recipeIDs(matcher.Suggest([]string{}, 10)))
	assert.Equal(t, []string{"recipe_overnight_oats", "recipe_protein_pancakes"}, recipeIDs(matcher.Suggest(nil, 2)))
}

func TestSuggestMatchingBeforeFallback(t *testing.T) {
	matcher := recipe.NewMatcher(testhelpers.NewTestCatalog(t))

	got := matcher.Suggest([]string{"breakfast_pancakes"}, 0)
	require.Equal(t, []string{
		"recipe_protein_pancakes",
		"recipe_overnight_oats",
		"recipe_salmon_dinner",
		"recipe_fruit_bowl",
	}, recipeIDs(got))
	assert.True(t, got[0].Matched)
	assert.False(t, got[1].Matched)
}

func TestSuggestDeduplicatesKeepingFirstPosition(t *testing.T) {
	matcher := recipe.NewMatcher(testhelpers.NewTestCatalog(t))

	got := matcher.Suggest([]string{"chicken_wrap", "greek_yogurt"}, 0)
	assert.Equal(t, []string{
		"recipe_overnight_oats",
		"recipe_fruit_bowl",
		"recipe_chicken_wrap",
		"recipe_protein_pancakes",
		"recipe_salmon_dinner",
	}, recipeIDs(got))
	assert.True(t, got[0].Matched, "a matching recipe keeps its matched position even though it is also tagged healthy")
	assert.True(t, got[2].Matched)
	assert.False(t, got[3].Matched)
}

func TestSuggestRespectsLimit(t *testing.T) {
	matcher := recipe.NewMatcher(testhelpers.NewTestCatalog(t))

	got := matcher.Suggest([]string{"chicken_wrap", "greek_yogurt"}, 2)
	assert.Equal(t, []string{"recipe_overnight_oats", "recipe_fruit_bowl"}, recipeIDs(got))

	for limit := 1; limit <= 8; limit++ {
		got := matcher.Suggest([]string{"apple", "salmon_fillet"}, limit)
		assert.LessOrEqual(t, len(got), limit)
		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s.Recipe.ID], "duplicate %s", s.Recipe.ID)
			seen[s.Recipe.ID] = true
		}
	}
}

func TestSuggestUnknownHistoryFallsBack(t *testing.T) {
	matcher := recipe.NewMatcher(testhelpers.NewTestCatalog(t))

	got := matcher.Suggest([]string{"ghost"}, 0)
	assert.Equal(t, []string{
		"recipe_overnight_oats",
		"recipe_protein_pancakes",
		"recipe_salmon_dinner",
		"recipe_fruit_bowl",
	}, recipeIDs(got))
}

func TestEstimate(t *testing.T) {
	store := testhelpers.NewTestCatalog(t)
	matcher := recipe.NewMatcher(store)

	tests := []struct {
		id   string
		want model.NutritionEstimate
	}{
		{
			// pancakes plus half a serving of strawberries
			id:   "recipe_protein_pancakes",
			want: model.NutritionEstimate{Calories: 362, Protein: 9, Carbs: 63, Fat: 8, Fiber: 3, Sugar: 14},
		},
		{
			// oatmeal and yogurt plus half honey and strawberries, over two servings
			id:   "recipe_overnight_oats",
			want: model.NutritionEstimate{Calories: 267, Protein: 14, Carbs: 41, Fat: 4, Fiber: 6, Sugar: 7},
		},
		{
			id:   "recipe_trail_mix",
			want: model.NutritionEstimate{Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Fiber: 4, Sugar: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, ok := store.RecipeByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, matcher.Estimate(r))
		})
	}
}

func TestEstimateIgnoresUnresolvedIDs(t *testing.T) {
	matcher := recipe.NewMatcher(testhelpers.NewTestCatalog(t))

	got := matcher.Estimate(model.Recipe{
		ID:                    "adhoc",
		RequiredIngredientIDs: []string{"ghost", "apple"},
		SuggestedAddonIDs:     []string{"gone"},
		Servings:              1,
	})
	assert.Equal(t, model.NutritionEstimate{Calories: 95, Protein: 1, Carbs: 25, Fat: 0, Fiber: 4, Sugar: 19}, got)
}

func TestSuggestionCarriesEstimate(t *testing.T) {
	matcher := recipe.NewMatcher(testhelpers.NewTestCatalog(t))

	got := matcher.Suggest([]string{"breakfast_pancakes"}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, matcher.Estimate(got[0].Recipe), got[0].Estimate)
}
