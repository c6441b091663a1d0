package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrCategoryNotFound is returned when a food category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrFoodNotFound is returned when a food is not found or not visible to the caller.
	ErrFoodNotFound = errors.New("food not found")
	// ErrAllergenNotFound is returned when an allergen is not found.
	ErrAllergenNotFound = errors.New("allergen not found")
	// ErrStockNotFound is returned when a stock item is not found for the caller.
	ErrStockNotFound = errors.New("stock not found")
	// ErrRecipeNotFound is returned when a recipe is not found.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrTransactionNotFound is returned when a ledger transaction is not found for the caller.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransactionCategoryNotFound is returned when a ledger category is not found for the caller.
	ErrTransactionCategoryNotFound = errors.New("transaction category not found")
	// ErrShoppingItemNotFound is returned when a shopping list item is not found for the caller.
	ErrShoppingItemNotFound = errors.New("shopping list item not found")
	// ErrFavoriteNotFound is returned when a favorite is not found for the caller.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrForbidden is returned when the caller may not act on the target row.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidStorageType is returned when a stock storage type is not a known value.
	ErrInvalidStorageType = errors.New("invalid storage type")
	// ErrInvalidTransactionType is returned when a ledger entry type is not income or expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	// ErrInvalidAmount is returned when a ledger amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate is returned when a date parameter is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrCategoryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case ErrFoodNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "FOOD_NOT_FOUND")
	case ErrAllergenNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ALLERGEN_NOT_FOUND")
	case ErrStockNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "STOCK_NOT_FOUND")
	case ErrRecipeNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECIPE_NOT_FOUND")
	case ErrTransactionNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case ErrTransactionCategoryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_CATEGORY_NOT_FOUND")
	case ErrShoppingItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SHOPPING_ITEM_NOT_FOUND")
	case ErrFavoriteNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "FAVORITE_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrInvalidStorageType:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STORAGE_TYPE")
	case ErrInvalidTransactionType:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TRANSACTION_TYPE")
	case ErrInvalidAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case ErrInvalidDate:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
