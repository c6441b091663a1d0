package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/cache"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
)

const (
	masterFoodCacheKey = "foods:master"
	masterFoodCacheTTL = 5 * time.Minute
)

// FoodInput is the full set of fields accepted when creating a food.
type FoodInput struct {
	CategoryID   uint
	Name         string
	BestBefore   *time.Time
	UseBy        *time.Time
	Memo         string
	Calories     float64
	Protein      float64
	Fat          float64
	Carbohydrate float64
	AllergenIDs  []uint
}

// FoodUpdate is a partial update of a food. Nil fields are left unchanged;
// a non-nil AllergenIDs replaces the allergen links (an empty slice clears
// them).
type FoodUpdate struct {
	CategoryID   *uint
	Name         *string
	BestBefore   **time.Time
	UseBy        **time.Time
	Memo         *string
	Calories     *float64
	Protein      *float64
	Fat          *float64
	Carbohydrate *float64
	AllergenIDs  *[]uint
}

// FoodService handles the food catalog: shared master foods and per-user
// private foods.
type FoodService interface {
	ListForUser(ctx context.Context, userID uint) ([]model.Food, error)
	ListMaster(ctx context.Context) ([]model.Food, error)
	Get(ctx context.Context, id, callerID uint, admin bool) (*model.Food, error)
	Create(ctx context.Context, ownerID *uint, input FoodInput) (*model.Food, error)
	Update(ctx context.Context, id, callerID uint, admin bool, patch FoodUpdate) (*model.Food, error)
	Delete(ctx context.Context, id, callerID uint, admin bool) error
}

type foodService struct {
	foodRepo     repository.FoodRepository
	categoryRepo repository.CategoryRepository
	allergenRepo repository.AllergenRepository
	cache        *cache.Client
}

// NewFoodService creates a new food service.
func NewFoodService(
	foodRepo repository.FoodRepository,
	categoryRepo repository.CategoryRepository,
	allergenRepo repository.AllergenRepository,
	cache *cache.Client,
) FoodService {
	return &foodService{
		foodRepo:     foodRepo,
		categoryRepo: categoryRepo,
		allergenRepo: allergenRepo,
		cache:        cache,
	}
}

// ListForUser lists master foods plus the user's private foods.
func (s *foodService) ListForUser(ctx context.Context, userID uint) ([]model.Food, error) {
	return s.foodRepo.ListVisible(ctx, userID)
}

// ListMaster lists the shared master catalog with caching.
func (s *foodService) ListMaster(ctx context.Context) ([]model.Food, error) {
	if data, _ := s.cache.Get(ctx, masterFoodCacheKey); data != nil {
		var cached []model.Food
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	foods, err := s.foodRepo.ListMaster(ctx)
	if err != nil {
		return nil, fmt.Errorf("list master foods: %w", err)
	}

	if payload, err := json.Marshal(foods); err == nil {
		_ = s.cache.Set(ctx, masterFoodCacheKey, payload, masterFoodCacheTTL)
	}

	return foods, nil
}

// Get retrieves a food visible to the caller.
func (s *foodService) Get(ctx context.Context, id, callerID uint, admin bool) (*model.Food, error) {
	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFoodNotFound
		}
		return nil, fmt.Errorf("find food: %w", err)
	}
	if !admin && !food.VisibleTo(callerID) {
		// Hidden rows look absent, not forbidden.
		return nil, errors.ErrFoodNotFound
	}
	return food, nil
}

// Create inserts a food and its allergen links atomically. A nil ownerID
// creates a master food (admin path); otherwise the food is private to
// that user.
func (s *foodService) Create(ctx context.Context, ownerID *uint, input FoodInput) (*model.Food, error) {
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	allergens, err := s.resolveAllergens(ctx, input.AllergenIDs)
	if err != nil {
		return nil, err
	}

	food := &model.Food{
		CategoryID:   input.CategoryID,
		UserID:       ownerID,
		Name:         input.Name,
		BestBefore:   input.BestBefore,
		UseBy:        input.UseBy,
		Memo:         input.Memo,
		Calories:     input.Calories,
		Protein:      input.Protein,
		Fat:          input.Fat,
		Carbohydrate: input.Carbohydrate,
	}

	if err := s.foodRepo.CreateWithAllergens(ctx, food, allergens); err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}

	if food.IsMaster() {
		_ = s.cache.Delete(ctx, masterFoodCacheKey)
	}
	return food, nil
}

// Update applies a partial update to a food the caller may edit: owners
// edit their private foods, admins edit master foods as well.
func (s *foodService) Update(ctx context.Context, id, callerID uint, admin bool, patch FoodUpdate) (*model.Food, error) {
	food, err := s.Get(ctx, id, callerID, admin)
	if err != nil {
		return nil, err
	}
	if !s.canEdit(food, callerID, admin) {
		return nil, errors.ErrForbidden
	}

	if patch.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *patch.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("find category: %w", err)
		}
		food.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		food.Name = *patch.Name
	}
	if patch.BestBefore != nil {
		food.BestBefore = *patch.BestBefore
	}
	if patch.UseBy != nil {
		food.UseBy = *patch.UseBy
	}
	if patch.Memo != nil {
		food.Memo = *patch.Memo
	}
	if patch.Calories != nil {
		food.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		food.Protein = *patch.Protein
	}
	if patch.Fat != nil {
		food.Fat = *patch.Fat
	}
	if patch.Carbohydrate != nil {
		food.Carbohydrate = *patch.Carbohydrate
	}

	var allergens []model.Allergen
	replaceAllergens := patch.AllergenIDs != nil
	if replaceAllergens {
		allergens, err = s.resolveAllergens(ctx, *patch.AllergenIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.foodRepo.UpdateWithAllergens(ctx, food, allergens, replaceAllergens); err != nil {
		return nil, fmt.Errorf("update food: %w", err)
	}

	if food.IsMaster() {
		_ = s.cache.Delete(ctx, masterFoodCacheKey)
	}
	return food, nil
}

// Delete removes a food the caller may edit, along with its allergen links.
func (s *foodService) Delete(ctx context.Context, id, callerID uint, admin bool) error {
	food, err := s.Get(ctx, id, callerID, admin)
	if err != nil {
		return err
	}
	if !s.canEdit(food, callerID, admin) {
		return errors.ErrForbidden
	}
	if err := s.foodRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrFoodNotFound
		}
		return fmt.Errorf("delete food: %w", err)
	}
	if food.IsMaster() {
		_ = s.cache.Delete(ctx, masterFoodCacheKey)
	}
	return nil
}

func (s *foodService) canEdit(food *model.Food, callerID uint, admin bool) bool {
	if admin {
		return true
	}
	return food.UserID != nil && *food.UserID == callerID
}

func (s *foodService) resolveAllergens(ctx context.Context, ids []uint) ([]model.Allergen, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	allergens, err := s.allergenRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("find allergens: %w", err)
	}
	if len(allergens) != len(unique) {
		return nil, errors.ErrAllergenNotFound
	}
	return allergens, nil
}
