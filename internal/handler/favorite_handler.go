package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/service"
)

// FavoriteHandler handles recipe favorite endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddFavoriteRequest represents a favorite create request.
type AddFavoriteRequest struct {
	RecipeID uint `json:"recipe_id" validate:"required"`
}

// List godoc
// @Summary List own favorite recipes
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Favorite
// @Failure 401 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	favorites, err := h.favoriteService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, favorites)
}

// Add godoc
// @Summary Mark a recipe as favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Recipe"
// @Success 201 {object} model.Favorite
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	favorite, err := h.favoriteService.Add(c.Request().Context(), claims.UserID, req.RecipeID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, favorite)
}

// Remove godoc
// @Summary Remove a recipe from favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	recipeID, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.favoriteService.Remove(c.Request().Context(), claims.UserID, recipeID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "favorite removed"})
}
