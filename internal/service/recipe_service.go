package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/cache"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
)

const (
	recipeCacheKey = "recipes:catalog"
	recipeCacheTTL = 5 * time.Minute
)

// RecipeMatch is a recipe annotated with how much of it the user can cook
// from current stock.
type RecipeMatch struct {
	Recipe         model.Recipe `json:"recipe"`
	AvailableFoods int          `json:"available_foods"`
	TotalFoods     int          `json:"total_foods"`
	MatchRatio     float64      `json:"match_ratio"`
}

// RecipeDetail is a recipe with the de-duplicated union of its foods'
// allergens.
type RecipeDetail struct {
	Recipe    model.Recipe     `json:"recipe"`
	Allergens []model.Allergen `json:"allergens"`
}

// IngredientInput links one food with a per-recipe quantity.
type IngredientInput struct {
	FoodID   uint
	Quantity string
}

// RecipeInput is the full set of fields accepted when creating a recipe.
type RecipeInput struct {
	Name         string
	Description  string
	ImageURL     string
	CookingTime  int
	Servings     int
	Instructions string
	Ingredients  []IngredientInput
}

// RecipeUpdate is a partial update of a recipe. Nil fields are left
// unchanged; a non-nil Ingredients replaces the ingredient rows.
type RecipeUpdate struct {
	Name         *string
	Description  *string
	ImageURL     *string
	CookingTime  *int
	Servings     *int
	Instructions *string
	Ingredients  *[]IngredientInput
}

// RecipeService handles the recipe catalog, stock matching and allergen
// aggregation.
type RecipeService interface {
	List(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id uint) (*RecipeDetail, error)
	Recommended(ctx context.Context, userID uint) ([]RecipeMatch, error)
	Create(ctx context.Context, input RecipeInput) (*model.Recipe, error)
	Update(ctx context.Context, id uint, patch RecipeUpdate) (*model.Recipe, error)
	Delete(ctx context.Context, id uint) error
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
	stockRepo  repository.StockRepository
	foodRepo   repository.FoodRepository
	cache      *cache.Client
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	stockRepo repository.StockRepository,
	foodRepo repository.FoodRepository,
	cache *cache.Client,
) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		stockRepo:  stockRepo,
		foodRepo:   foodRepo,
		cache:      cache,
	}
}

// List lists the recipe catalog with caching.
func (s *recipeService) List(ctx context.Context) ([]model.Recipe, error) {
	if data, _ := s.cache.Get(ctx, recipeCacheKey); data != nil {
		var cached []model.Recipe
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	recipes, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	if payload, err := json.Marshal(recipes); err == nil {
		_ = s.cache.Set(ctx, recipeCacheKey, payload, recipeCacheTTL)
	}

	return recipes, nil
}

// Get retrieves one recipe with its aggregated allergens.
func (s *recipeService) Get(ctx context.Context, id uint) (*RecipeDetail, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return &RecipeDetail{
		Recipe:    *recipe,
		Allergens: AggregateAllergens(recipe),
	}, nil
}

// Recommended ranks the catalog against the user's current stock. Empty
// stock is not an error: there is nothing to cook from, so the result is
// an empty list rather than the whole catalog scored zero.
func (s *recipeService) Recommended(ctx context.Context, userID uint) ([]RecipeMatch, error) {
	foodIDs, err := s.stockRepo.ListFoodIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list stock food ids: %w", err)
	}
	if len(foodIDs) == 0 {
		return []RecipeMatch{}, nil
	}
	recipes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return RankRecipesByStock(recipes, foodIDs), nil
}

// Create inserts a recipe and its ingredient rows atomically.
func (s *recipeService) Create(ctx context.Context, input RecipeInput) (*model.Recipe, error) {
	ingredients, err := s.resolveIngredients(ctx, input.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Name:         input.Name,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		CookingTime:  input.CookingTime,
		Servings:     input.Servings,
		Instructions: input.Instructions,
		Ingredients:  ingredients,
	}
	if err := s.recipeRepo.CreateWithIngredients(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	_ = s.cache.Delete(ctx, recipeCacheKey)
	return recipe, nil
}

// Update applies a partial update to a recipe.
func (s *recipeService) Update(ctx context.Context, id uint, patch RecipeUpdate) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}

	if patch.Name != nil {
		recipe.Name = *patch.Name
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		recipe.ImageURL = *patch.ImageURL
	}
	if patch.CookingTime != nil {
		recipe.CookingTime = *patch.CookingTime
	}
	if patch.Servings != nil {
		recipe.Servings = *patch.Servings
	}
	if patch.Instructions != nil {
		recipe.Instructions = *patch.Instructions
	}

	replaceIngredients := patch.Ingredients != nil
	if replaceIngredients {
		ingredients, err := s.resolveIngredients(ctx, *patch.Ingredients)
		if err != nil {
			return nil, err
		}
		recipe.Ingredients = ingredients
	}

	if err := s.recipeRepo.UpdateWithIngredients(ctx, recipe, replaceIngredients); err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	_ = s.cache.Delete(ctx, recipeCacheKey)
	return recipe, nil
}

// Delete removes a recipe and its ingredient rows.
func (s *recipeService) Delete(ctx context.Context, id uint) error {
	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRecipeNotFound
		}
		return fmt.Errorf("delete recipe: %w", err)
	}
	_ = s.cache.Delete(ctx, recipeCacheKey)
	return nil
}

func (s *recipeService) resolveIngredients(ctx context.Context, inputs []IngredientInput) ([]model.RecipeFood, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(inputs))
	seen := make(map[uint]struct{}, len(inputs))
	ingredients := make([]model.RecipeFood, 0, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in.FoodID]; ok {
			continue
		}
		seen[in.FoodID] = struct{}{}
		ids = append(ids, in.FoodID)
		ingredients = append(ingredients, model.RecipeFood{FoodID: in.FoodID, Quantity: in.Quantity})
	}
	foods, err := s.foodRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find foods: %w", err)
	}
	if len(foods) != len(ids) {
		return nil, errors.ErrFoodNotFound
	}
	return ingredients, nil
}

// RankRecipesByStock annotates each recipe with how many of its required
// foods the stock covers and orders the result by match ratio descending,
// ties broken by available food count descending. The sort is stable, so
// equal recipes keep catalog order. A recipe with no required foods scores
// zero rather than dividing by zero.
func RankRecipesByStock(recipes []model.Recipe, stockFoodIDs []uint) []RecipeMatch {
	inStock := make(map[uint]struct{}, len(stockFoodIDs))
	for _, id := range stockFoodIDs {
		inStock[id] = struct{}{}
	}

	matches := make([]RecipeMatch, 0, len(recipes))
	for _, recipe := range recipes {
		total := len(recipe.Ingredients)
		available := 0
		for _, ing := range recipe.Ingredients {
			if _, ok := inStock[ing.FoodID]; ok {
				available++
			}
		}
		ratio := 0.0
		if total > 0 {
			ratio = float64(available) / float64(total)
		}
		matches = append(matches, RecipeMatch{
			Recipe:         recipe,
			AvailableFoods: available,
			TotalFoods:     total,
			MatchRatio:     ratio,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchRatio != matches[j].MatchRatio {
			return matches[i].MatchRatio > matches[j].MatchRatio
		}
		return matches[i].AvailableFoods > matches[j].AvailableFoods
	})

	return matches
}

// AggregateAllergens returns the union of allergens across a recipe's
// foods, de-duplicated by ID and keeping first-occurrence order.
func AggregateAllergens(recipe *model.Recipe) []model.Allergen {
	seen := make(map[uint]struct{})
	allergens := make([]model.Allergen, 0)
	for _, ing := range recipe.Ingredients {
		for _, allergen := range ing.Food.Allergens {
			if _, ok := seen[allergen.ID]; ok {
				continue
			}
			seen[allergen.ID] = struct{}{}
			allergens = append(allergens, allergen)
		}
	}
	return allergens
}
