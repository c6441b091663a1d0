package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// RecipeRepository defines recipe persistence operations.
type RecipeRepository interface {
	CreateWithIngredients(ctx context.Context, recipe *model.Recipe) error
	UpdateWithIngredients(ctx context.Context, recipe *model.Recipe, replaceIngredients bool) error
	FindByID(ctx context.Context, id uint) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Delete(ctx context.Context, id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateWithIngredients inserts a recipe and its ingredient rows atomically.
// Any failure rolls back both the recipe and its recipe_foods rows.
func (r *recipeRepository) CreateWithIngredients(ctx context.Context, recipe *model.Recipe) error {
	ingredients := recipe.Ingredients
	recipe.Ingredients = nil
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return r.reload(ctx, recipe)
}

// UpdateWithIngredients saves a recipe and, when replaceIngredients is set,
// rewrites its ingredient rows atomically.
func (r *recipeRepository) UpdateWithIngredients(ctx context.Context, recipe *model.Recipe, replaceIngredients bool) error {
	ingredients := recipe.Ingredients
	recipe.Ingredients = nil
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Save(recipe).Error; err != nil {
			return err
		}
		if replaceIngredients {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeFood{}).Error; err != nil {
				return err
			}
			for i := range ingredients {
				ingredients[i].ID = 0
				ingredients[i].RecipeID = recipe.ID
			}
			if len(ingredients) > 0 {
				if err := tx.Create(&ingredients).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return r.reload(ctx, recipe)
}

// FindByID finds a recipe with its ingredients, their foods and the foods'
// allergens preloaded.
func (r *recipeRepository) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Food").
		Preload("Ingredients.Food.Allergens").
		Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List lists all recipes with their ingredients and foods preloaded,
// ordered by ID.
func (r *recipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Food").
		Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Delete removes a recipe and its ingredient rows in one transaction.
// If the recipe delete fails the ingredient rows are kept as well.
func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe model.Recipe
		if err := tx.Where("id = ?", id).First(&recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

func (r *recipeRepository) reload(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Food").
		Where("id = ?", recipe.ID).First(recipe).Error
}
