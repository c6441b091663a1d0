package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/service"
)

// ShoppingListHandler handles shopping list endpoints.
type ShoppingListHandler struct {
	shoppingService service.ShoppingListService
}

// NewShoppingListHandler creates a new shopping list handler.
func NewShoppingListHandler(shoppingService service.ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingService: shoppingService}
}

// CreateShoppingItemRequest represents a shopping list item create request.
type CreateShoppingItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo"`
}

// UpdateShoppingItemRequest represents a partial shopping list item update.
type UpdateShoppingItemRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Quantity *string `json:"quantity"`
	Checked  *bool   `json:"checked"`
	Memo     *string `json:"memo"`
}

// List godoc
// @Summary List own shopping list, unchecked items first
// @Tags shopping-list
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ShoppingListItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /shopping-list [get]
func (h *ShoppingListHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	items, err := h.shoppingService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Add an item to the shopping list
// @Tags shopping-list
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateShoppingItemRequest true "Item"
// @Success 201 {object} model.ShoppingListItem
// @Failure 400 {object} errors.ErrorResponse
// @Router /shopping-list [post]
func (h *ShoppingListHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateShoppingItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.shoppingService.Create(c.Request().Context(), claims.UserID, req.Name, req.Quantity, req.Memo)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update an own shopping list item
// @Tags shopping-list
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body UpdateShoppingItemRequest true "Item fields"
// @Success 200 {object} model.ShoppingListItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /shopping-list/{id} [put]
func (h *ShoppingListHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateShoppingItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.shoppingService.Update(c.Request().Context(), id, claims.UserID, service.ShoppingItemUpdate{
		Name:     req.Name,
		Quantity: req.Quantity,
		Checked:  req.Checked,
		Memo:     req.Memo,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// ToggleChecked godoc
// @Summary Flip the checked state of an own shopping list item
// @Tags shopping-list
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} model.ShoppingListItem
// @Failure 404 {object} errors.ErrorResponse
// @Router /shopping-list/{id}/toggle [post]
func (h *ShoppingListHandler) ToggleChecked(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := h.shoppingService.ToggleChecked(c.Request().Context(), id, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete an own shopping list item
// @Tags shopping-list
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /shopping-list/{id} [delete]
func (h *ShoppingListHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.shoppingService.Delete(c.Request().Context(), id, claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "shopping list item deleted"})
}

// ClearChecked godoc
// @Summary Remove all checked items from the shopping list
// @Tags shopping-list
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 401 {object} errors.ErrorResponse
// @Router /shopping-list/checked [delete]
func (h *ShoppingListHandler) ClearChecked(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	removed, err := h.shoppingService.ClearChecked(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]int64{"removed": removed})
}
