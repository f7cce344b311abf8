package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/nutrilog/backend/internal/service"
	"github.com/pageza/nutrilog/backend/internal/types"
)

// CatalogHandler serves catalog browsing, search, composition and recipes.
type CatalogHandler struct {
	catalog     service.ICatalogService
	searchLimit gin.HandlerFunc
	log         logrus.FieldLogger
}

// NewCatalogHandler creates a CatalogHandler. searchLimit may be nil.
func NewCatalogHandler(catalog service.ICatalogService, searchLimit gin.HandlerFunc, log logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, searchLimit: searchLimit, log: log}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/:id", h.GetFood)
		foods.GET("/:id/addons", h.GetFoodAddons)
	}

	addons := router.Group("/addons")
	{
		addons.GET("", h.ListAddons)
		addons.GET("/:id", h.GetAddon)
	}

	searchHandlers := []gin.HandlerFunc{h.Search}
	if h.searchLimit != nil {
		searchHandlers = append([]gin.HandlerFunc{h.searchLimit}, searchHandlers...)
	}
	router.GET("/search", searchHandlers...)

	router.POST("/compose", h.Compose)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/suggestions", h.SuggestRecipes)
	}
}

func (h *CatalogHandler) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"foods": h.catalog.Foods(c.Query("category")),
	})
}

func (h *CatalogHandler) GetFood(c *gin.Context) {
	food, err := h.catalog.Food(c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *CatalogHandler) GetFoodAddons(c *gin.Context) {
	addons, err := h.catalog.AddonsForFood(c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addons": addons})
}

func (h *CatalogHandler) ListAddons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"addons": h.catalog.Addons()})
}

func (h *CatalogHandler) GetAddon(c *gin.Context) {
	addon, err := h.catalog.Addon(c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, addon)
}

func (h *CatalogHandler) Search(c *gin.Context) {
	resp, err := h.catalog.Search(c.Query("q"), c.Query("category"), c.Query("mode"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) Compose(c *gin.Context) {
	var req types.ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	composed, err := h.catalog.Compose(&req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, composed)
}

func (h *CatalogHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recipes": h.catalog.Recipes()})
}

func (h *CatalogHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.catalog.Recipe(c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *CatalogHandler) SuggestRecipes(c *gin.Context) {
	var req types.SuggestRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"suggestions": h.catalog.SuggestRecipes(req.RecentFoodIDs, req.Limit),
	})
}
