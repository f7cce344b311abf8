package service

import (
	"github.com/sirupsen/logrus"

	"github.com/pageza/nutrilog/backend/internal/catalog"
	"github.com/pageza/nutrilog/backend/internal/model"
	"github.com/pageza/nutrilog/backend/internal/nutrition"
	"github.com/pageza/nutrilog/backend/internal/recipe"
	"github.com/pageza/nutrilog/backend/internal/search"
	"github.com/pageza/nutrilog/backend/internal/types"
)

const (
	SearchModeRanked = "ranked"
	SearchModeBrowse = "browse"
)

// CatalogService serves catalog reads from the current snapshot. Every call
// loads the snapshot once, so a reload never mixes two catalogs in one answer.
type CatalogService struct {
	holder *catalog.Holder
	log    logrus.FieldLogger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(holder *catalog.Holder, log logrus.FieldLogger) *CatalogService {
	return &CatalogService{holder: holder, log: log}
}

func (s *CatalogService) Foods(category string) []model.FoodItem {
	return s.holder.Load().AllFoods(category)
}

func (s *CatalogService) Food(id string) (model.FoodItem, error) {
	food, ok := s.holder.Load().FoodByID(id)
	if !ok {
		return model.FoodItem{}, ErrFoodNotFound
	}
	return food, nil
}

func (s *CatalogService) AddonsForFood(foodID string) ([]model.AddOn, error) {
	store := s.holder.Load()
	if _, ok := store.FoodByID(foodID); !ok {
		return nil, ErrFoodNotFound
	}
	return store.AddonsForFood(foodID), nil
}

// Addons lists every add-on in catalog order.
func (s *CatalogService) Addons() []model.AddOn {
	return s.holder.Load().AllAddons()
}

func (s *CatalogService) Addon(id string) (model.AddOn, error) {
	addon, ok := s.holder.Load().AddonByID(id)
	if !ok {
		return model.AddOn{}, ErrAddonNotFound
	}
	return addon, nil
}

// Search runs a ranked or browse search. An empty mode means ranked. A ranked
// search with no results carries a did-you-mean hint when one is close enough.
func (s *CatalogService) Search(query, category, mode string) (*types.SearchResponse, error) {
	engine := search.New(s.holder.Load())
	resp := &types.SearchResponse{Query: query, Mode: mode}

	switch mode {
	case "", SearchModeRanked:
		resp.Mode = SearchModeRanked
		resp.Results = engine.Search(query, category)
		if len(resp.Results) == 0 {
			if hint, ok := engine.DidYouMean(query); ok {
				resp.DidYouMean = hint
			}
		}
	case SearchModeBrowse:
		resp.Results = engine.Browse(query, category)
	default:
		return nil, ErrInvalidMode
	}

	s.log.WithFields(logrus.Fields{
		"query":    query,
		"category": category,
		"mode":     resp.Mode,
		"results":  len(resp.Results),
	}).Debug("search")
	return resp, nil
}

// Compose checks the quantity precondition the calculator relies on, then
// composes the requested food.
func (s *CatalogService) Compose(req *types.ComposeRequest) (*model.ComposedNutrition, error) {
	_, composed, err := s.ComposeFood(req)
	return composed, err
}

// ComposeFood is Compose that also returns the food it composed. Both come
// from the same catalog snapshot.
func (s *CatalogService) ComposeFood(req *types.ComposeRequest) (model.FoodItem, *model.ComposedNutrition, error) {
	if !model.ValidQuantity(req.Quantity) {
		return model.FoodItem{}, nil, ErrInvalidQuantity
	}
	store := s.holder.Load()
	food, ok := store.FoodByID(req.FoodID)
	if !ok {
		return model.FoodItem{}, nil, ErrFoodNotFound
	}
	composed := nutrition.NewCalculator(store).Compose(food, req.AddonIDs, req.Quantity)
	return food, &composed, nil
}

func (s *CatalogService) Recipes() []types.RecipeDetail {
	store := s.holder.Load()
	matcher := recipe.NewMatcher(store)
	recipes := store.Recipes()
	out := make([]types.RecipeDetail, len(recipes))
	for i, r := range recipes {
		out[i] = types.RecipeDetail{Recipe: r, Estimate: matcher.Estimate(r)}
	}
	return out
}

func (s *CatalogService) Recipe(id string) (*types.RecipeDetail, error) {
	store := s.holder.Load()
	r, ok := store.RecipeByID(id)
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return &types.RecipeDetail{Recipe: r, Estimate: recipe.NewMatcher(store).Estimate(r)}, nil
}

func (s *CatalogService) SuggestRecipes(recentFoodIDs []string, limit int) []recipe.Suggestion {
	return recipe.NewMatcher(s.holder.Load()).Suggest(recentFoodIDs, limit)
}

func (s *CatalogService) Counts() catalog.Counts {
	return s.holder.Load().Counts()
}
