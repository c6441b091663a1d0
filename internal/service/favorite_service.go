package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
)

// FavoriteService handles recipe favorites.
type FavoriteService interface {
	List(ctx context.Context, userID uint) ([]model.Favorite, error)
	Add(ctx context.Context, userID, recipeID uint) (*model.Favorite, error)
	Remove(ctx context.Context, userID, recipeID uint) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	recipeRepo   repository.RecipeRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, recipeRepo repository.RecipeRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, recipeRepo: recipeRepo}
}

// List lists the user's favorites with their recipes.
func (s *favoriteService) List(ctx context.Context, userID uint) ([]model.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}

// Add stars a recipe for the user. Adding twice is a no-op returning the
// existing favorite.
func (s *favoriteService) Add(ctx context.Context, userID, recipeID uint) (*model.Favorite, error) {
	if _, err := s.recipeRepo.FindByID(ctx, recipeID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}

	existing, err := s.favoriteRepo.FindByUserAndRecipe(ctx, userID, recipeID)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find favorite: %w", err)
	}

	favorite := &model.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}
	return favorite, nil
}

// Remove unstars a recipe for the user.
func (s *favoriteService) Remove(ctx context.Context, userID, recipeID uint) error {
	if err := s.favoriteRepo.DeleteByUserAndRecipe(ctx, userID, recipeID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrFavoriteNotFound
		}
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
