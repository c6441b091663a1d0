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

func uintPtr(v uint) *uint {
	return &v
}

func TestFoodService_Get(t *testing.T) {
	owner := uint(7)
	stranger := uint(8)

	tests := []struct {
		name          string
		food          *model.Food
		callerID      uint
		admin         bool
		expectedError error
	}{
		{
			name:     "master food is visible to everyone",
			food:     &model.Food{ID: 1, Name: "rice"},
			callerID: stranger,
		},
		{
			name:     "owner sees own private food",
			food:     &model.Food{ID: 2, Name: "leftovers", UserID: uintPtr(owner)},
			callerID: owner,
		},
		{
			name:          "foreign private food looks absent",
			food:          &model.Food{ID: 2, Name: "leftovers", UserID: uintPtr(owner)},
			callerID:      stranger,
			expectedError: errors.ErrFoodNotFound,
		},
		{
			name:     "admin sees any private food",
			food:     &model.Food{ID: 2, Name: "leftovers", UserID: uintPtr(owner)},
			callerID: stranger,
			admin:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFoodRepo := new(MockFoodRepository)
			mockFoodRepo.On("FindByID", mock.Anything, tt.food.ID).Return(tt.food, nil)

			service := NewFoodService(mockFoodRepo, new(MockCategoryRepository), new(MockAllergenRepository), nil)
			food, err := service.Get(context.Background(), tt.food.ID, tt.callerID, tt.admin)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, food)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.food.Name, food.Name)
			}
		})
	}
}

func TestFoodService_Update_OwnershipChecks(t *testing.T) {
	owner := uint(7)
	stranger := uint(8)
	newName := "renamed"

	t.Run("non-owner cannot edit a master food", func(t *testing.T) {
		mockFoodRepo := new(MockFoodRepository)
		mockFoodRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Food{ID: 1, Name: "rice"}, nil)

		service := NewFoodService(mockFoodRepo, new(MockCategoryRepository), new(MockAllergenRepository), nil)
		food, err := service.Update(context.Background(), 1, stranger, false, FoodUpdate{Name: &newName})

		assert.Nil(t, food)
		assert.Equal(t, errors.ErrForbidden, err)
	})

	t.Run("owner edits own private food", func(t *testing.T) {
		mockFoodRepo := new(MockFoodRepository)
		mockFoodRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Food{ID: 2, Name: "leftovers", UserID: uintPtr(owner)}, nil)
		mockFoodRepo.On("UpdateWithAllergens", mock.Anything, mock.AnythingOfType("*model.Food"), mock.Anything, false).Return(nil)

		service := NewFoodService(mockFoodRepo, new(MockCategoryRepository), new(MockAllergenRepository), nil)
		food, err := service.Update(context.Background(), 2, owner, false, FoodUpdate{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, newName, food.Name)
		mockFoodRepo.AssertExpectations(t)
	})

	t.Run("admin edits a master food", func(t *testing.T) {
		mockFoodRepo := new(MockFoodRepository)
		mockFoodRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Food{ID: 1, Name: "rice"}, nil)
		mockFoodRepo.On("UpdateWithAllergens", mock.Anything, mock.AnythingOfType("*model.Food"), mock.Anything, false).Return(nil)

		service := NewFoodService(mockFoodRepo, new(MockCategoryRepository), new(MockAllergenRepository), nil)
		food, err := service.Update(context.Background(), 1, stranger, true, FoodUpdate{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, newName, food.Name)
	})
}

func TestFoodService_Create_AllergenValidation(t *testing.T) {
	owner := uint(7)

	t.Run("unknown allergen id fails", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Category{ID: 1, Name: "grains"}, nil)

		mockAllergenRepo := new(MockAllergenRepository)
		mockAllergenRepo.On("FindByIDs", mock.Anything, []uint{5, 99}).Return([]model.Allergen{{ID: 5, Name: "wheat"}}, nil)

		service := NewFoodService(new(MockFoodRepository), mockCategoryRepo, mockAllergenRepo, nil)
		food, err := service.Create(context.Background(), &owner, FoodInput{
			CategoryID:  1,
			Name:        "bread",
			AllergenIDs: []uint{5, 99},
		})

		assert.Nil(t, food)
		assert.Equal(t, errors.ErrAllergenNotFound, err)
	})

	t.Run("duplicate allergen ids are collapsed", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Category{ID: 1, Name: "grains"}, nil)

		mockAllergenRepo := new(MockAllergenRepository)
		mockAllergenRepo.On("FindByIDs", mock.Anything, []uint{5}).Return([]model.Allergen{{ID: 5, Name: "wheat"}}, nil)

		mockFoodRepo := new(MockFoodRepository)
		mockFoodRepo.On("CreateWithAllergens", mock.Anything, mock.AnythingOfType("*model.Food"), mock.AnythingOfType("[]model.Allergen")).Return(nil)

		service := NewFoodService(mockFoodRepo, mockCategoryRepo, mockAllergenRepo, nil)
		food, err := service.Create(context.Background(), &owner, FoodInput{
			CategoryID:  1,
			Name:        "bread",
			AllergenIDs: []uint{5, 5},
		})

		assert.NoError(t, err)
		assert.Equal(t, &owner, food.UserID)
		mockAllergenRepo.AssertExpectations(t)
	})

	t.Run("unknown category fails", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		service := NewFoodService(new(MockFoodRepository), mockCategoryRepo, new(MockAllergenRepository), nil)
		food, err := service.Create(context.Background(), &owner, FoodInput{CategoryID: 42, Name: "mystery"})

		assert.Nil(t, food)
		assert.Equal(t, errors.ErrCategoryNotFound, err)
	})
}
