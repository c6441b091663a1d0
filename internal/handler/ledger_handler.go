package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/service"
)

// LedgerHandler handles ledger transaction, ledger category, totals and
// food budget endpoints.
type LedgerHandler struct {
	ledgerService service.LedgerService
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// CreateTransactionRequest represents a ledger entry creation request.
type CreateTransactionRequest struct {
	CategoryID      *uint           `json:"category_id"`
	Type            string          `json:"type" validate:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transaction_date" validate:"required"`
}

// UpdateTransactionRequest represents a partial ledger entry update.
// Absent fields are left unchanged; clear_category removes the category.
type UpdateTransactionRequest struct {
	CategoryID      *uint            `json:"category_id"`
	ClearCategory   bool             `json:"clear_category"`
	Type            *string          `json:"type" validate:"omitempty,oneof=income expense"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description"`
	TransactionDate *string          `json:"transaction_date"`
}

// TransactionCategoryRequest represents a ledger category create request.
type TransactionCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// UpdateTransactionCategoryRequest represents a ledger category update.
type UpdateTransactionCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Color *string `json:"color"`
}

// ListTransactions godoc
// @Summary List own ledger entries newest first
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param type query string false "income or expense"
// @Success 200 {array} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	filter, err := h.parseFilter(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	txns, err := h.ledgerService.ListTransactions(c.Request().Context(), claims.UserID, filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, txns)
}

// GetTransaction godoc
// @Summary Get one own ledger entry
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} errors.ErrorResponse
// @Router /transactions/{id} [get]
func (h *LedgerHandler) GetTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	txn, err := h.ledgerService.GetTransaction(c.Request().Context(), id, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, txn)
}

// CreateTransaction godoc
// @Summary Record a ledger entry
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transactions [post]
func (h *LedgerHandler) CreateTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := parseDate(req.TransactionDate)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidDate)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request().Context(), claims.UserID, service.TransactionInput{
		CategoryID:      req.CategoryID,
		Type:            model.TransactionType(req.Type),
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: date,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, txn)
}

// UpdateTransaction godoc
// @Summary Update one own ledger entry
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Transaction fields"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transactions/{id} [put]
func (h *LedgerHandler) UpdateTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := service.TransactionUpdate{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.ClearCategory {
		var none *uint
		patch.CategoryID = &none
	} else if req.CategoryID != nil {
		patch.CategoryID = &req.CategoryID
	}
	if req.Type != nil {
		t := model.TransactionType(*req.Type)
		patch.Type = &t
	}
	if req.TransactionDate != nil {
		date, err := parseDate(*req.TransactionDate)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(errors.ErrInvalidDate)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		patch.TransactionDate = &date
	}

	txn, err := h.ledgerService.UpdateTransaction(c.Request().Context(), id, claims.UserID, patch)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, txn)
}

// DeleteTransaction godoc
// @Summary Delete one own ledger entry
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *LedgerHandler) DeleteTransaction(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.ledgerService.DeleteTransaction(c.Request().Context(), id, claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "transaction deleted"})
}

// Totals godoc
// @Summary Sum own ledger entries by type over a date range
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} service.LedgerTotals
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /transactions/totals [get]
func (h *LedgerHandler) Totals(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	filter, err := h.parseFilter(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	totals, err := h.ledgerService.Totals(c.Request().Context(), claims.UserID, filter.From, filter.To)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, totals)
}

// FoodBudget godoc
// @Summary Today's food spending against the daily budget
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.FoodBudgetSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /food-budget [get]
func (h *LedgerHandler) FoodBudget(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	summary, err := h.ledgerService.FoodBudget(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, summary)
}

// ListCategories godoc
// @Summary List ledger categories (global plus own)
// @Tags transaction-categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TransactionCategory
// @Failure 401 {object} errors.ErrorResponse
// @Router /transaction-categories [get]
func (h *LedgerHandler) ListCategories(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	categories, err := h.ledgerService.ListCategories(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Create an own ledger category
// @Tags transaction-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransactionCategoryRequest true "Category"
// @Success 201 {object} model.TransactionCategory
// @Failure 400 {object} errors.ErrorResponse
// @Router /transaction-categories [post]
func (h *LedgerHandler) CreateCategory(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req TransactionCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.ledgerService.CreateCategory(c.Request().Context(), claims.UserID, req.Name, req.Color)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Update an own ledger category
// @Tags transaction-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body UpdateTransactionCategoryRequest true "Category fields"
// @Success 200 {object} model.TransactionCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transaction-categories/{id} [put]
func (h *LedgerHandler) UpdateCategory(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateTransactionCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.ledgerService.UpdateCategory(c.Request().Context(), id, claims.UserID, req.Name, req.Color)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete an own ledger category
// @Tags transaction-categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /transaction-categories/{id} [delete]
func (h *LedgerHandler) DeleteCategory(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.ledgerService.DeleteCategory(c.Request().Context(), id, claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "transaction category deleted"})
}

func (h *LedgerHandler) parseFilter(c echo.Context) (repository.TransactionFilter, error) {
	var filter repository.TransactionFilter
	if from := c.QueryParam("from"); from != "" {
		d, err := parseDate(from)
		if err != nil {
			return filter, errors.ErrInvalidDate
		}
		filter.From = &d
	}
	if to := c.QueryParam("to"); to != "" {
		d, err := parseDate(to)
		if err != nil {
			return filter, errors.ErrInvalidDate
		}
		filter.To = &d
	}
	if t := c.QueryParam("type"); t != "" {
		tt := model.TransactionType(t)
		if !tt.Valid() {
			return filter, errors.ErrInvalidTransactionType
		}
		filter.Type = tt
	}
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, errors.ErrTransactionCategoryNotFound
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	return filter, nil
}
