package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// FoodRepository defines food catalog persistence operations.
type FoodRepository interface {
	CreateWithAllergens(ctx context.Context, food *model.Food, allergens []model.Allergen) error
	UpdateWithAllergens(ctx context.Context, food *model.Food, allergens []model.Allergen, replaceAllergens bool) error
	FindByID(ctx context.Context, id uint) (*model.Food, error)
	ListMaster(ctx context.Context) ([]model.Food, error)
	ListVisible(ctx context.Context, userID uint) ([]model.Food, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Food, error)
	Delete(ctx context.Context, id uint) error
}

type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new food repository.
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

// CreateWithAllergens inserts a food and links its allergens atomically.
// If the allergen link step fails the food insert is rolled back.
func (r *foodRepository) CreateWithAllergens(ctx context.Context, food *model.Food, allergens []model.Allergen) error {
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Allergens", "Category").Create(food).Error; err != nil {
			return err
		}
		if len(allergens) > 0 {
			if err := tx.Model(food).Association("Allergens").Append(allergens); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return r.reload(ctx, food)
}

// UpdateWithAllergens saves a food and, when replaceAllergens is set,
// replaces its allergen links atomically.
func (r *foodRepository) UpdateWithAllergens(ctx context.Context, food *model.Food, allergens []model.Allergen, replaceAllergens bool) error {
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Allergens", "Category").Save(food).Error; err != nil {
			return err
		}
		if replaceAllergens {
			if err := tx.Model(food).Association("Allergens").Replace(allergens); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return r.reload(ctx, food)
}

// FindByID finds a food by ID with its category and allergens.
func (r *foodRepository) FindByID(ctx context.Context, id uint) (*model.Food, error) {
	var food model.Food
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Allergens").
		Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// ListMaster lists master catalog foods (no owning user) ordered by ID.
func (r *foodRepository) ListMaster(ctx context.Context) ([]model.Food, error) {
	var foods []model.Food
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Allergens").
		Where("user_id IS NULL").Order("id").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// ListVisible lists master foods plus the given user's private foods.
func (r *foodRepository) ListVisible(ctx context.Context, userID uint) ([]model.Food, error) {
	var foods []model.Food
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Allergens").
		Where("user_id IS NULL OR user_id = ?", userID).
		Order("id").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// FindByIDs returns the foods matching the given IDs.
func (r *foodRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var foods []model.Food
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// Delete removes a food and its allergen links atomically.
func (r *foodRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var food model.Food
		if err := tx.Where("id = ?", id).First(&food).Error; err != nil {
			return err
		}
		if err := tx.Model(&food).Association("Allergens").Clear(); err != nil {
			return err
		}
		return tx.Delete(&food).Error
	})
}

func (r *foodRepository) reload(ctx context.Context, food *model.Food) error {
	return r.db.WithContext(ctx).
		Preload("Category").Preload("Allergens").
		Where("id = ?", food.ID).First(food).Error
}
