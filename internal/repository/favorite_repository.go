package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// FavoriteRepository defines favorite persistence operations.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	FindByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*model.Favorite, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error)
	DeleteByUserAndRecipe(ctx context.Context, userID, recipeID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create creates a new favorite.
func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Omit("Recipe").Create(favorite).Error
}

// FindByUserAndRecipe finds a favorite for a (user, recipe) pair.
func (r *favoriteRepository) FindByUserAndRecipe(ctx context.Context, userID, recipeID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// ListByUser lists a user's favorites with their recipes preloaded.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Recipe").Preload("Recipe.Ingredients").Preload("Recipe.Ingredients.Food").
		Where("user_id = ?", userID).
		Order("id").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteByUserAndRecipe removes a favorite for a (user, recipe) pair.
func (r *favoriteRepository) DeleteByUserAndRecipe(ctx context.Context, userID, recipeID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
