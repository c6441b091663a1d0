package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/service"
)

// AllergenHandler handles allergen endpoints.
type AllergenHandler struct {
	allergenService service.AllergenService
}

// NewAllergenHandler creates a new allergen handler.
func NewAllergenHandler(allergenService service.AllergenService) *AllergenHandler {
	return &AllergenHandler{allergenService: allergenService}
}

// AllergenRequest represents an allergen create or rename request.
type AllergenRequest struct {
	Name string `json:"name" validate:"required"`
}

// List godoc
// @Summary List allergens
// @Tags allergens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Allergen
// @Failure 401 {object} errors.ErrorResponse
// @Router /allergens [get]
func (h *AllergenHandler) List(c echo.Context) error {
	allergens, err := h.allergenService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, allergens)
}

// Create godoc
// @Summary Create an allergen
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AllergenRequest true "Allergen"
// @Success 201 {object} model.Allergen
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/allergens [post]
func (h *AllergenHandler) Create(c echo.Context) error {
	var req AllergenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	allergen, err := h.allergenService.Create(c.Request().Context(), req.Name)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, allergen)
}

// Update godoc
// @Summary Rename an allergen
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Allergen ID"
// @Param request body AllergenRequest true "Allergen"
// @Success 200 {object} model.Allergen
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/allergens/{id} [put]
func (h *AllergenHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req AllergenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	allergen, err := h.allergenService.Rename(c.Request().Context(), id, req.Name)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, allergen)
}

// Delete godoc
// @Summary Delete an allergen
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Allergen ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/allergens/{id} [delete]
func (h *AllergenHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.allergenService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "allergen deleted"})
}
