package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/auth"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/config"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/handler"
)

// Handlers bundles the handler set wired into the route table.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Category     *handler.CategoryHandler
	Allergen     *handler.AllergenHandler
	Food         *handler.FoodHandler
	Stock        *handler.StockHandler
	Recipe       *handler.RecipeHandler
	Ledger       *handler.LedgerHandler
	ShoppingList *handler.ShoppingListHandler
	Favorite     *handler.FavoriteHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.UploadDir != "" {
		e.Static("/uploads", cfg.UploadDir)
	}

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Profile routes
	secured.GET("/me", h.User.Me)
	secured.PUT("/me", h.User.UpdateMe)
	secured.PUT("/me/food-budget", h.User.SetFoodBudget)
	secured.GET("/me/login-history", h.User.LoginHistory)

	// Catalog routes
	secured.GET("/categories", h.Category.List)
	secured.GET("/categories/:id", h.Category.Get)
	secured.GET("/allergens", h.Allergen.List)

	// Food routes
	secured.GET("/foods", h.Food.List)
	secured.GET("/foods/:id", h.Food.Get)
	secured.POST("/foods", h.Food.Create)
	secured.PUT("/foods/:id", h.Food.Update)
	secured.DELETE("/foods/:id", h.Food.Delete)

	// Stock routes
	secured.GET("/stocks", h.Stock.List)
	secured.GET("/stocks/:id", h.Stock.Get)
	secured.POST("/stocks", h.Stock.Create)
	secured.PUT("/stocks/:id", h.Stock.Update)
	secured.DELETE("/stocks/:id", h.Stock.Delete)

	// Recipe routes
	secured.GET("/recipes", h.Recipe.List)
	secured.GET("/recipes/recommended", h.Recipe.Recommended)
	secured.GET("/recipes/:id", h.Recipe.Get)

	// Ledger routes
	secured.GET("/transactions", h.Ledger.ListTransactions)
	secured.GET("/transactions/totals", h.Ledger.Totals)
	secured.GET("/transactions/:id", h.Ledger.GetTransaction)
	secured.POST("/transactions", h.Ledger.CreateTransaction)
	secured.PUT("/transactions/:id", h.Ledger.UpdateTransaction)
	secured.DELETE("/transactions/:id", h.Ledger.DeleteTransaction)
	secured.GET("/food-budget", h.Ledger.FoodBudget)
	secured.GET("/transaction-categories", h.Ledger.ListCategories)
	secured.POST("/transaction-categories", h.Ledger.CreateCategory)
	secured.PUT("/transaction-categories/:id", h.Ledger.UpdateCategory)
	secured.DELETE("/transaction-categories/:id", h.Ledger.DeleteCategory)

	// Shopping list routes
	secured.GET("/shopping-list", h.ShoppingList.List)
	secured.POST("/shopping-list", h.ShoppingList.Create)
	secured.DELETE("/shopping-list/checked", h.ShoppingList.ClearChecked)
	secured.PUT("/shopping-list/:id", h.ShoppingList.Update)
	secured.POST("/shopping-list/:id/toggle", h.ShoppingList.ToggleChecked)
	secured.DELETE("/shopping-list/:id", h.ShoppingList.Delete)

	// Favorite routes
	secured.GET("/favorites", h.Favorite.List)
	secured.POST("/favorites", h.Favorite.Add)
	secured.DELETE("/favorites/:id", h.Favorite.Remove)

	// Admin routes
	admin := secured.Group("/admin", RequireAdmin)

	admin.GET("/users", h.User.ListUsers)
	admin.GET("/users/:id", h.User.GetUser)
	admin.PUT("/users/:id", h.User.UpdateUser)
	admin.DELETE("/users/:id", h.User.DeleteUser)

	admin.POST("/categories", h.Category.Create)
	admin.PUT("/categories/:id", h.Category.Update)
	admin.DELETE("/categories/:id", h.Category.Delete)

	admin.POST("/allergens", h.Allergen.Create)
	admin.PUT("/allergens/:id", h.Allergen.Update)
	admin.DELETE("/allergens/:id", h.Allergen.Delete)

	admin.GET("/foods", h.Food.ListMaster)
	admin.POST("/foods", h.Food.CreateMaster)

	admin.POST("/recipes", h.Recipe.Create)
	admin.PUT("/recipes/:id", h.Recipe.Update)
	admin.DELETE("/recipes/:id", h.Recipe.Delete)
}

// RequireAdmin rejects requests whose token does not carry the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok || claims.Role != auth.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
