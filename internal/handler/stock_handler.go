package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/service"
)

// StockHandler handles stock endpoints.
type StockHandler struct {
	stockService service.StockService
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// CreateStockRequest represents a stock creation request.
type CreateStockRequest struct {
	FoodID      uint   `json:"food_id" validate:"required"`
	ExpiryDate  string `json:"expiry_date"`
	StorageType string `json:"storage_type" validate:"required,oneof=refrigerator freezer pantry"`
	Quantity    string `json:"quantity"`
	Memo        string `json:"memo"`
}

// UpdateStockRequest represents a partial stock update. Absent fields are
// left unchanged; an empty expiry_date string clears the date.
type UpdateStockRequest struct {
	ExpiryDate  *string `json:"expiry_date"`
	StorageType *string `json:"storage_type" validate:"omitempty,oneof=refrigerator freezer pantry"`
	Quantity    *string `json:"quantity"`
	Memo        *string `json:"memo"`
}

// List godoc
// @Summary List own stock ordered by expiry
// @Tags stocks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Stock
// @Failure 401 {object} errors.ErrorResponse
// @Router /stocks [get]
func (h *StockHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	stocks, err := h.stockService.List(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stocks)
}

// Get godoc
// @Summary Get one own stock item
// @Tags stocks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock ID"
// @Success 200 {object} model.Stock
// @Failure 404 {object} errors.ErrorResponse
// @Router /stocks/{id} [get]
func (h *StockHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	stock, err := h.stockService.Get(c.Request().Context(), id, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stock)
}

// Create godoc
// @Summary Add a stock item
// @Tags stocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStockRequest true "Stock"
// @Success 201 {object} model.Stock
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /stocks [post]
func (h *StockHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.StockInput{
		FoodID:      req.FoodID,
		StorageType: model.StorageType(req.StorageType),
		Quantity:    req.Quantity,
		Memo:        req.Memo,
	}
	if req.ExpiryDate != "" {
		d, err := parseDate(req.ExpiryDate)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(errors.ErrInvalidDate)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		input.ExpiryDate = &d
	}

	stock, err := h.stockService.Create(c.Request().Context(), claims.UserID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, stock)
}

// Update godoc
// @Summary Update an own stock item
// @Tags stocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock ID"
// @Param request body UpdateStockRequest true "Stock fields"
// @Success 200 {object} model.Stock
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /stocks/{id} [put]
func (h *StockHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := service.StockUpdate{
		Quantity: req.Quantity,
		Memo:     req.Memo,
	}
	if req.StorageType != nil {
		st := model.StorageType(*req.StorageType)
		patch.StorageType = &st
	}
	if req.ExpiryDate != nil {
		var d *time.Time
		if *req.ExpiryDate != "" {
			parsed, err := parseDate(*req.ExpiryDate)
			if err != nil {
				httpErr := errors.MapErrorToHTTP(errors.ErrInvalidDate)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			d = &parsed
		}
		patch.ExpiryDate = &d
	}

	stock, err := h.stockService.Update(c.Request().Context(), id, claims.UserID, patch)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stock)
}

// Delete godoc
// @Summary Remove an own stock item
// @Tags stocks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Stock ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /stocks/{id} [delete]
func (h *StockHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.stockService.Delete(c.Request().Context(), id, claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "stock deleted"})
}
