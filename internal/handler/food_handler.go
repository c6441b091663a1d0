package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/auth"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/service"
)

// FoodHandler handles food catalog endpoints.
type FoodHandler struct {
	foodService service.FoodService
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(foodService service.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// CreateFoodRequest represents a food creation request. Dates are
// YYYY-MM-DD strings.
type CreateFoodRequest struct {
	CategoryID   uint    `json:"category_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	BestBefore   string  `json:"best_before"`
	UseBy        string  `json:"use_by"`
	Memo         string  `json:"memo"`
	Calories     float64 `json:"calories" validate:"gte=0"`
	Protein      float64 `json:"protein" validate:"gte=0"`
	Fat          float64 `json:"fat" validate:"gte=0"`
	Carbohydrate float64 `json:"carbohydrate" validate:"gte=0"`
	AllergenIDs  []uint  `json:"allergen_ids"`
}

// UpdateFoodRequest represents a partial food update. Absent fields are
// left unchanged; an empty date string clears the date; a non-nil
// allergen_ids replaces the links.
type UpdateFoodRequest struct {
	CategoryID   *uint    `json:"category_id"`
	Name         *string  `json:"name" validate:"omitempty,min=1"`
	BestBefore   *string  `json:"best_before"`
	UseBy        *string  `json:"use_by"`
	Memo         *string  `json:"memo"`
	Calories     *float64 `json:"calories" validate:"omitempty,gte=0"`
	Protein      *float64 `json:"protein" validate:"omitempty,gte=0"`
	Fat          *float64 `json:"fat" validate:"omitempty,gte=0"`
	Carbohydrate *float64 `json:"carbohydrate" validate:"omitempty,gte=0"`
	AllergenIDs  *[]uint  `json:"allergen_ids"`
}

func (r *CreateFoodRequest) toInput() (service.FoodInput, error) {
	input := service.FoodInput{
		CategoryID:   r.CategoryID,
		Name:         r.Name,
		Memo:         r.Memo,
		Calories:     r.Calories,
		Protein:      r.Protein,
		Fat:          r.Fat,
		Carbohydrate: r.Carbohydrate,
		AllergenIDs:  r.AllergenIDs,
	}
	if r.BestBefore != "" {
		d, err := parseDate(r.BestBefore)
		if err != nil {
			return input, errors.ErrInvalidDate
		}
		input.BestBefore = &d
	}
	if r.UseBy != "" {
		d, err := parseDate(r.UseBy)
		if err != nil {
			return input, errors.ErrInvalidDate
		}
		input.UseBy = &d
	}
	return input, nil
}

func (r *UpdateFoodRequest) toPatch() (service.FoodUpdate, error) {
	patch := service.FoodUpdate{
		CategoryID:   r.CategoryID,
		Name:         r.Name,
		Memo:         r.Memo,
		Calories:     r.Calories,
		Protein:      r.Protein,
		Fat:          r.Fat,
		Carbohydrate: r.Carbohydrate,
		AllergenIDs:  r.AllergenIDs,
	}
	if r.BestBefore != nil {
		var d *time.Time
		if *r.BestBefore != "" {
			parsed, err := parseDate(*r.BestBefore)
			if err != nil {
				return patch, errors.ErrInvalidDate
			}
			d = &parsed
		}
		patch.BestBefore = &d
	}
	if r.UseBy != nil {
		var d *time.Time
		if *r.UseBy != "" {
			parsed, err := parseDate(*r.UseBy)
			if err != nil {
				return patch, errors.ErrInvalidDate
			}
			d = &parsed
		}
		patch.UseBy = &d
	}
	return patch, nil
}

// List godoc
// @Summary List foods visible to the caller (master plus own)
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Food
// @Failure 401 {object} errors.ErrorResponse
// @Router /foods [get]
func (h *FoodHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	foods, err := h.foodService.ListForUser(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, foods)
}

// Get godoc
// @Summary Get a food visible to the caller
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food ID"
// @Success 200 {object} model.Food
// @Failure 404 {object} errors.ErrorResponse
// @Router /foods/{id} [get]
func (h *FoodHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	food, err := h.foodService.Get(c.Request().Context(), id, claims.UserID, claims.Role == auth.RoleAdmin)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, food)
}

// Create godoc
// @Summary Create a private food
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFoodRequest true "Food"
// @Success 201 {object} model.Food
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /foods [post]
func (h *FoodHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	ownerID := claims.UserID
	food, err := h.foodService.Create(c.Request().Context(), &ownerID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, food)
}

// Update godoc
// @Summary Update a food owned by the caller
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food ID"
// @Param request body UpdateFoodRequest true "Food fields"
// @Success 200 {object} model.Food
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /foods/{id} [put]
func (h *FoodHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch, err := req.toPatch()
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	food, err := h.foodService.Update(c.Request().Context(), id, claims.UserID, claims.Role == auth.RoleAdmin, patch)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, food)
}

// Delete godoc
// @Summary Delete a food owned by the caller
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /foods/{id} [delete]
func (h *FoodHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.foodService.Delete(c.Request().Context(), id, claims.UserID, claims.Role == auth.RoleAdmin); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "food deleted"})
}

// ListMaster godoc
// @Summary List the master food catalog
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Food
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/foods [get]
func (h *FoodHandler) ListMaster(c echo.Context) error {
	foods, err := h.foodService.ListMaster(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, foods)
}

// CreateMaster godoc
// @Summary Create a master food
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFoodRequest true "Food"
// @Success 201 {object} model.Food
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/foods [post]
func (h *FoodHandler) CreateMaster(c echo.Context) error {
	var req CreateFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	food, err := h.foodService.Create(c.Request().Context(), nil, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, food)
}
