package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

func TestStockService_Create(t *testing.T) {
	userID := uint(7)

	t.Run("rejects unknown storage type", func(t *testing.T) {
		service := NewStockService(new(MockStockRepository), new(MockFoodRepository))

		stock, err := service.Create(context.Background(), userID, StockInput{
			FoodID:      1,
			StorageType: model.StorageType("cellar"),
		})

		assert.Nil(t, stock)
		assert.Equal(t, errors.ErrInvalidStorageType, err)
	})

	t.Run("rejects food the user cannot see", func(t *testing.T) {
		other := uint(8)
		mockFoodRepo := new(MockFoodRepository)
		mockFoodRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Food{ID: 2, UserID: &other}, nil)

		service := NewStockService(new(MockStockRepository), mockFoodRepo)
		stock, err := service.Create(context.Background(), userID, StockInput{
			FoodID:      2,
			StorageType: model.StorageRefrigerator,
		})

		assert.Nil(t, stock)
		assert.Equal(t, errors.ErrFoodNotFound, err)
	})

	t.Run("rejects missing food", func(t *testing.T) {
		mockFoodRepo := new(MockFoodRepository)
		mockFoodRepo.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		service := NewStockService(new(MockStockRepository), mockFoodRepo)
		stock, err := service.Create(context.Background(), userID, StockInput{
			FoodID:      3,
			StorageType: model.StoragePantry,
		})

		assert.Nil(t, stock)
		assert.Equal(t, errors.ErrFoodNotFound, err)
	})

	t.Run("stores a valid entry", func(t *testing.T) {
		mockFoodRepo := new(MockFoodRepository)
		mockFoodRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Food{ID: 1, Name: "rice"}, nil)

		mockStockRepo := new(MockStockRepository)
		mockStockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Stock")).Return(nil)

		service := NewStockService(mockStockRepo, mockFoodRepo)
		stock, err := service.Create(context.Background(), userID, StockInput{
			FoodID:      1,
			StorageType: model.StoragePantry,
			Quantity:    "2kg",
		})

		assert.NoError(t, err)
		assert.Equal(t, userID, stock.UserID)
		assert.Equal(t, model.StoragePantry, stock.StorageType)
		mockStockRepo.AssertExpectations(t)
	})
}

func TestShoppingListService_ToggleChecked(t *testing.T) {
	userID := uint(7)

	t.Run("flips the checked state", func(t *testing.T) {
		mockItemRepo := new(MockShoppingListRepository)
		mockItemRepo.On("FindByIDForUser", mock.Anything, uint(1), userID).Return(&model.ShoppingListItem{
			ID:      1,
			UserID:  userID,
			Name:    "milk",
			Checked: false,
		}, nil)
		mockItemRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.ShoppingListItem")).Return(nil)

		service := NewShoppingListService(mockItemRepo)
		item, err := service.ToggleChecked(context.Background(), 1, userID)

		assert.NoError(t, err)
		assert.True(t, item.Checked)
		mockItemRepo.AssertExpectations(t)
	})

	t.Run("unknown item", func(t *testing.T) {
		mockItemRepo := new(MockShoppingListRepository)
		mockItemRepo.On("FindByIDForUser", mock.Anything, uint(9), userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewShoppingListService(mockItemRepo)
		item, err := service.ToggleChecked(context.Background(), 9, userID)

		assert.Nil(t, item)
		assert.Equal(t, errors.ErrShoppingItemNotFound, err)
	})
}

func TestShoppingListService_ClearChecked(t *testing.T) {
	mockItemRepo := new(MockShoppingListRepository)
	mockItemRepo.On("DeleteChecked", mock.Anything, uint(7)).Return(int64(3), nil)

	service := NewShoppingListService(mockItemRepo)
	removed, err := service.ClearChecked(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestFavoriteService_Add(t *testing.T) {
	userID := uint(7)

	t.Run("validates the recipe exists", func(t *testing.T) {
		mockRecipeRepo := new(MockRecipeRepository)
		mockRecipeRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewFavoriteService(new(MockFavoriteRepository), mockRecipeRepo)
		favorite, err := service.Add(context.Background(), userID, 9)

		assert.Nil(t, favorite)
		assert.Equal(t, errors.ErrRecipeNotFound, err)
	})

	t.Run("adding twice is idempotent", func(t *testing.T) {
		existing := &model.Favorite{ID: 5, UserID: userID, RecipeID: 1}

		mockRecipeRepo := new(MockRecipeRepository)
		mockRecipeRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Recipe{ID: 1}, nil)

		mockFavoriteRepo := new(MockFavoriteRepository)
		mockFavoriteRepo.On("FindByUserAndRecipe", mock.Anything, userID, uint(1)).Return(existing, nil)

		service := NewFavoriteService(mockFavoriteRepo, mockRecipeRepo)
		favorite, err := service.Add(context.Background(), userID, 1)

		assert.NoError(t, err)
		assert.Equal(t, existing, favorite)
		mockFavoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
