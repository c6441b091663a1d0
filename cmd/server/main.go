package main

import (
	"log"
	"net/http"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/auth"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/cache"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/config"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/db"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/handler"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/router"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/service"
)

// @title Hudorosu API
// @version 1.0
// @description Household food inventory, recipe matching and food budget API with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Allergen{},
		&model.Food{},
		&model.Stock{},
		&model.Recipe{},
		&model.RecipeFood{},
		&model.TransactionCategory{},
		&model.Transaction{},
		&model.ShoppingListItem{},
		&model.Favorite{},
		&model.LoginLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	loginLogRepo := repository.NewLoginLogRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	allergenRepo := repository.NewAllergenRepository(gormDB)
	foodRepo := repository.NewFoodRepository(gormDB)
	stockRepo := repository.NewStockRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	txnRepo := repository.NewTransactionRepository(gormDB)
	txnCategoryRepo := repository.NewTransactionCategoryRepository(gormDB)
	shoppingRepo := repository.NewShoppingListRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, loginLogRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, loginLogRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	allergenService := service.NewAllergenService(allergenRepo)
	foodService := service.NewFoodService(foodRepo, categoryRepo, allergenRepo, cacheClient)
	stockService := service.NewStockService(stockRepo, foodRepo)
	recipeService := service.NewRecipeService(recipeRepo, stockRepo, foodRepo, cacheClient)
	ledgerService := service.NewLedgerService(txnRepo, txnCategoryRepo, userRepo)
	shoppingService := service.NewShoppingListService(shoppingRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, recipeRepo)

	// Register routes
	router.Register(e, cfg, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService),
		Category:     handler.NewCategoryHandler(categoryService),
		Allergen:     handler.NewAllergenHandler(allergenService),
		Food:         handler.NewFoodHandler(foodService),
		Stock:        handler.NewStockHandler(stockService),
		Recipe:       handler.NewRecipeHandler(recipeService),
		Ledger:       handler.NewLedgerHandler(ledgerService),
		ShoppingList: handler.NewShoppingListHandler(shoppingService),
		Favorite:     handler.NewFavoriteHandler(favoriteService),
	})

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
