package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/service"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// IngredientRequest links one food to a recipe with a quantity.
type IngredientRequest struct {
	FoodID   uint   `json:"food_id" validate:"required"`
	Quantity string `json:"quantity"`
}

// CreateRecipeRequest represents a recipe creation request.
type CreateRecipeRequest struct {
	Name         string              `json:"name" validate:"required"`
	Description  string              `json:"description"`
	ImageURL     string              `json:"image_url"`
	CookingTime  int                 `json:"cooking_time" validate:"gte=0"`
	Servings     int                 `json:"servings" validate:"gte=0"`
	Instructions string              `json:"instructions"`
	Ingredients  []IngredientRequest `json:"ingredients" validate:"dive"`
}

// UpdateRecipeRequest represents a partial recipe update. Absent fields
// are left unchanged; a non-nil ingredients replaces the ingredient rows.
type UpdateRecipeRequest struct {
	Name         *string              `json:"name" validate:"omitempty,min=1"`
	Description  *string              `json:"description"`
	ImageURL     *string              `json:"image_url"`
	CookingTime  *int                 `json:"cooking_time" validate:"omitempty,gte=0"`
	Servings     *int                 `json:"servings" validate:"omitempty,gte=0"`
	Instructions *string              `json:"instructions"`
	Ingredients  *[]IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
}

func toIngredientInputs(reqs []IngredientRequest) []service.IngredientInput {
	inputs := make([]service.IngredientInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, service.IngredientInput{FoodID: r.FoodID, Quantity: r.Quantity})
	}
	return inputs
}

// List godoc
// @Summary List the recipe catalog
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Recipe
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.recipeService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipes)
}

// Get godoc
// @Summary Get a recipe with its aggregated allergens
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} service.RecipeDetail
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	detail, err := h.recipeService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, detail)
}

// Recommended godoc
// @Summary Rank recipes by how much of them current stock covers
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.RecipeMatch
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipes/recommended [get]
func (h *RecipeHandler) Recommended(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	matches, err := h.recipeService.Recommended(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, matches)
}

// Create godoc
// @Summary Create a recipe
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRecipeRequest true "Recipe"
// @Success 201 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipe, err := h.recipeService.Create(c.Request().Context(), service.RecipeInput{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
		Instructions: req.Instructions,
		Ingredients:  toIngredientInputs(req.Ingredients),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, recipe)
}

// Update godoc
// @Summary Update a recipe
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param request body UpdateRecipeRequest true "Recipe fields"
// @Success 200 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := service.RecipeUpdate{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
		Instructions: req.Instructions,
	}
	if req.Ingredients != nil {
		inputs := toIngredientInputs(*req.Ingredients)
		patch.Ingredients = &inputs
	}

	recipe, err := h.recipeService.Update(c.Request().Context(), id, patch)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recipe)
}

// Delete godoc
// @Summary Delete a recipe and its ingredient links
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.recipeService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "recipe deleted"})
}
