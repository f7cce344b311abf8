package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutrilog/backend/internal/catalog"
	"github.com/pageza/nutrilog/backend/internal/mocks"
	"github.com/pageza/nutrilog/backend/internal/model"
	"github.com/pageza/nutrilog/backend/internal/service"
	"github.com/pageza/nutrilog/backend/internal/testhelpers"
	"github.com/pageza/nutrilog/backend/internal/types"
)

func setupCatalogRouter(t *testing.T, limiter *mocks.MockLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testhelpers.QuietLogger()
	holder := catalog.NewHolder(testhelpers.NewTestCatalog(t))
	deps := Dependencies{
		Catalog: service.NewCatalogService(holder, log),
		Log:     log,
	}
	if limiter != nil {
		deps.SearchLimiter = limiter
	}

	router := gin.New()
	RegisterRoutes(router, deps)
	return router
}

func newJSONRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doJSON(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, newJSONRequest(method, path, body))
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Status   string         `json:"status"`
		Database string         `json:"database"`
		Catalog  catalog.Counts `json:"catalog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "unconfigured", response.Database)
	assert.Equal(t, catalog.Counts{Foods: 8, Addons: 5, Recipes: 7}, response.Catalog)
}

func TestListFoods(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{"all foods", "/api/v1/foods", 8},
		{"category", "/api/v1/foods?category=lunch", 2},
		{"unknown category", "/api/v1/foods?category=brunch", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var response struct {
				Foods []model.FoodItem `json:"foods"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Len(t, response.Foods, tt.expected)
		})
	}
}

func TestGetFood(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/foods/greek_yogurt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var food model.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &food))
	assert.Equal(t, "greek_yogurt", food.ID)

	w = doJSON(router, http.MethodGet, "/api/v1/foods/pizza", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "food not found")
}

func TestGetFoodAddons(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/foods/breakfast_pancakes/addons", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Addons []model.AddOn `json:"addons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Addons, 2)
	assert.Equal(t, "strawberries", response.Addons[0].ID)
	assert.Equal(t, "honey", response.Addons[1].ID)

	w = doJSON(router, http.MethodGet, "/api/v1/foods/pizza/addons", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAndGetAddons(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/addons", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Addons []model.AddOn `json:"addons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Addons, 5)
	assert.Equal(t, "honey", list.Addons[0].ID)

	w = doJSON(router, http.MethodGet, "/api/v1/addons/honey", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"honey"`)

	w = doJSON(router, http.MethodGet, "/api/v1/addons/gravy", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearch(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantIDs    []string
		wantHint   string
	}{
		{
			name:       "ranked",
			path:       "/api/v1/search?q=chicken",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"chicken_salad", "chicken_wrap"},
		},
		{
			name:       "short query",
			path:       "/api/v1/search?q=c",
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name:       "did you mean",
			path:       "/api/v1/search?q=slamon",
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
			wantHint:   "salmon",
		},
		{
			name:       "browse by category",
			path:       "/api/v1/search?mode=browse&category=snacks",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"almonds_raw", "apple"},
		},
		{
			name:       "invalid mode",
			path:       "/api/v1/search?q=oat&mode=semantic",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var response types.SearchResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			ids := []string{}
			for _, food := range response.Results {
				ids = append(ids, food.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantHint, response.DidYouMean)
		})
	}
}

func TestSearchRateLimited(t *testing.T) {
	limiter := &mocks.MockLimiter{}
	limiter.On("IsAllowed", mock.Anything, mock.Anything).
		Return(false, 0, time.Now().Add(time.Minute), nil)
	limiter.On("Limit").Return(1)
	limiter.On("Window").Return(time.Minute)

	router := setupCatalogRouter(t, limiter)

	w := doJSON(router, http.MethodGet, "/api/v1/search?q=oat", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other catalog routes are not limited.
	w = doJSON(router, http.MethodGet, "/api/v1/foods", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	limiter.AssertNumberOfCalls(t, "IsAllowed", 1)
}

func TestCompose(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		want       *model.ComposedNutrition
	}{
		{
			name: "oatmeal with honey",
			body: types.ComposeRequest{
				FoodID:   "oatmeal_plain",
				AddonIDs: []string{"honey", "gravy"},
				Quantity: 1,
			},
			wantStatus: http.StatusOK,
			want: &model.ComposedNutrition{
				Calories: 453, Protein: 17.0, Carbs: 83.6, Fat: 6.9, Fiber: 10.6, Sugar: 18.2,
				AddonIDs: []string{"honey"}, Quantity: 1,
			},
		},
		{
			name:       "invalid quantity",
			body:       types.ComposeRequest{FoodID: "oatmeal_plain", Quantity: 0.75},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "quantity above the maximum",
			body:       types.ComposeRequest{FoodID: "oatmeal_plain", AddonIDs: []string{"honey"}, Quantity: 1e20},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown food",
			body:       types.ComposeRequest{FoodID: "pizza", Quantity: 1},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing food id",
			body:       map[string]interface{}{"quantity": 1},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/v1/compose", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.want == nil {
				return
			}

			var got model.ComposedNutrition
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, *tt.want, got)
		})
	}
}

func TestRecipes(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Recipes []types.RecipeDetail `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Recipes, 7)
	assert.Equal(t, "overnight_oats", list.Recipes[0].ID)

	w = doJSON(router, http.MethodGet, "/api/v1/recipes/overnight_oats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail types.RecipeDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, model.NutritionEstimate{Calories: 267, Protein: 14, Carbs: 41, Fat: 4, Fiber: 6, Sugar: 7}, detail.Estimate)

	w = doJSON(router, http.MethodGet, "/api/v1/recipes/lasagna", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestRecipes(t *testing.T) {
	router := setupCatalogRouter(t, nil)

	var response struct {
		Suggestions []struct {
			Recipe  model.Recipe `json:"recipe"`
			Matched bool         `json:"matched"`
		} `json:"suggestions"`
	}

	w := doJSON(router, http.MethodPost, "/api/v1/recipes/suggestions", types.SuggestRecipesRequest{
		RecentFoodIDs: []string{"breakfast_pancakes"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Suggestions, 4)
	assert.Equal(t, "protein_pancakes", response.Suggestions[0].Recipe.ID)
	assert.True(t, response.Suggestions[0].Matched)
	assert.False(t, response.Suggestions[1].Matched)

	w = doJSON(router, http.MethodPost, "/api/v1/recipes/suggestions", types.SuggestRecipesRequest{Limit: 2})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Suggestions, 2)
}
