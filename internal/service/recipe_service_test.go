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

func recipeWithFoods(id uint, name string, foodIDs ...uint) model.Recipe {
	recipe := model.Recipe{ID: id, Name: name}
	for _, foodID := range foodIDs {
		recipe.Ingredients = append(recipe.Ingredients, model.RecipeFood{RecipeID: id, FoodID: foodID})
	}
	return recipe
}

func TestRankRecipesByStock(t *testing.T) {
	tests := []struct {
		name           string
		recipes        []model.Recipe
		stockFoodIDs   []uint
		expectedOrder  []string
		expectedRatios []float64
	}{
		{
			name: "full match ranks above partial match",
			recipes: []model.Recipe{
				recipeWithFoods(1, "big dish", 1, 2, 3, 4),
				recipeWithFoods(2, "small dish", 1, 2),
			},
			stockFoodIDs:   []uint{1, 2},
			expectedOrder:  []string{"small dish", "big dish"},
			expectedRatios: []float64{1, 0.5},
		},
		{
			name: "recipe without ingredients scores zero",
			recipes: []model.Recipe{
				recipeWithFoods(1, "empty dish"),
				recipeWithFoods(2, "soup", 5),
			},
			stockFoodIDs:   []uint{5},
			expectedOrder:  []string{"soup", "empty dish"},
			expectedRatios: []float64{1, 0},
		},
		{
			name: "empty stock keeps catalog order with zero ratios",
			recipes: []model.Recipe{
				recipeWithFoods(1, "first", 1),
				recipeWithFoods(2, "second", 2),
			},
			stockFoodIDs:   nil,
			expectedOrder:  []string{"first", "second"},
			expectedRatios: []float64{0, 0},
		},
		{
			name: "equal ratio breaks tie by available count",
			recipes: []model.Recipe{
				recipeWithFoods(1, "one of two", 1, 9),
				recipeWithFoods(2, "two of four", 1, 2, 8, 9),
			},
			stockFoodIDs:   []uint{1, 2},
			expectedOrder:  []string{"two of four", "one of two"},
			expectedRatios: []float64{0.5, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := RankRecipesByStock(tt.recipes, tt.stockFoodIDs)

			assert.Len(t, matches, len(tt.expectedOrder))
			for i, name := range tt.expectedOrder {
				assert.Equal(t, name, matches[i].Recipe.Name)
				assert.InDelta(t, tt.expectedRatios[i], matches[i].MatchRatio, 1e-9)
			}
		})
	}
}

func TestAggregateAllergens(t *testing.T) {
	egg := model.Allergen{ID: 1, Name: "egg"}
	milk := model.Allergen{ID: 2, Name: "milk"}
	wheat := model.Allergen{ID: 3, Name: "wheat"}

	recipe := &model.Recipe{
		Ingredients: []model.RecipeFood{
			{FoodID: 10, Food: model.Food{ID: 10, Allergens: []model.Allergen{egg, milk}}},
			{FoodID: 11, Food: model.Food{ID: 11, Allergens: []model.Allergen{milk, wheat}}},
			{FoodID: 12, Food: model.Food{ID: 12}},
		},
	}

	allergens := AggregateAllergens(recipe)

	assert.Equal(t, []model.Allergen{egg, milk, wheat}, allergens)
}

func TestAggregateAllergens_NoAllergens(t *testing.T) {
	recipe := &model.Recipe{
		Ingredients: []model.RecipeFood{
			{FoodID: 10, Food: model.Food{ID: 10}},
		},
	}

	assert.Empty(t, AggregateAllergens(recipe))
}

func TestRecipeService_Recommended(t *testing.T) {
	t.Run("empty stock yields an empty list, not the zero-scored catalog", func(t *testing.T) {
		mockStockRepo := new(MockStockRepository)
		mockStockRepo.On("ListFoodIDsByUser", mock.Anything, uint(7)).Return([]uint{}, nil)

		mockRecipeRepo := new(MockRecipeRepository)

		service := NewRecipeService(mockRecipeRepo, mockStockRepo, new(MockFoodRepository), nil)
		matches, err := service.Recommended(context.Background(), 7)

		assert.NoError(t, err)
		assert.NotNil(t, matches)
		assert.Len(t, matches, 0)
		mockRecipeRepo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("stocked user gets the ranked catalog", func(t *testing.T) {
		mockStockRepo := new(MockStockRepository)
		mockStockRepo.On("ListFoodIDsByUser", mock.Anything, uint(7)).Return([]uint{1, 2}, nil)

		mockRecipeRepo := new(MockRecipeRepository)
		mockRecipeRepo.On("List", mock.Anything).Return([]model.Recipe{
			recipeWithFoods(1, "big dish", 1, 2, 3, 4),
			recipeWithFoods(2, "small dish", 1, 2),
		}, nil)

		service := NewRecipeService(mockRecipeRepo, mockStockRepo, new(MockFoodRepository), nil)
		matches, err := service.Recommended(context.Background(), 7)

		assert.NoError(t, err)
		assert.Len(t, matches, 2)
		assert.Equal(t, "small dish", matches[0].Recipe.Name)
		assert.InDelta(t, 1.0, matches[0].MatchRatio, 1e-9)
		mockRecipeRepo.AssertExpectations(t)
	})
}

func TestRecipeService_Get(t *testing.T) {
	t.Run("aggregates allergens over the ingredient foods", func(t *testing.T) {
		mockRecipeRepo := new(MockRecipeRepository)
		mockRecipeRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Recipe{
			ID:   1,
			Name: "omelette",
			Ingredients: []model.RecipeFood{
				{FoodID: 10, Food: model.Food{ID: 10, Allergens: []model.Allergen{{ID: 1, Name: "egg"}}}},
				{FoodID: 11, Food: model.Food{ID: 11, Allergens: []model.Allergen{{ID: 1, Name: "egg"}, {ID: 2, Name: "milk"}}}},
			},
		}, nil)

		service := NewRecipeService(mockRecipeRepo, new(MockStockRepository), new(MockFoodRepository), nil)
		detail, err := service.Get(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "omelette", detail.Recipe.Name)
		assert.Len(t, detail.Allergens, 2)
		mockRecipeRepo.AssertExpectations(t)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		mockRecipeRepo := new(MockRecipeRepository)
		mockRecipeRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewRecipeService(mockRecipeRepo, new(MockStockRepository), new(MockFoodRepository), nil)
		detail, err := service.Get(context.Background(), 99)

		assert.Nil(t, detail)
		assert.Equal(t, errors.ErrRecipeNotFound, err)
	})
}
