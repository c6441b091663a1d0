package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// AllergenRepository defines allergen persistence operations.
type AllergenRepository interface {
	Create(ctx context.Context, allergen *model.Allergen) error
	Update(ctx context.Context, allergen *model.Allergen) error
	FindByID(ctx context.Context, id uint) (*model.Allergen, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Allergen, error)
	List(ctx context.Context) ([]model.Allergen, error)
	Delete(ctx context.Context, id uint) error
}

type allergenRepository struct {
	db *gorm.DB
}

// NewAllergenRepository creates a new allergen repository.
func NewAllergenRepository(db *gorm.DB) AllergenRepository {
	return &allergenRepository{db: db}
}

// Create creates a new allergen.
func (r *allergenRepository) Create(ctx context.Context, allergen *model.Allergen) error {
	return r.db.WithContext(ctx).Create(allergen).Error
}

// Update updates an existing allergen.
func (r *allergenRepository) Update(ctx context.Context, allergen *model.Allergen) error {
	return r.db.WithContext(ctx).Save(allergen).Error
}

// FindByID finds an allergen by ID.
func (r *allergenRepository) FindByID(ctx context.Context, id uint) (*model.Allergen, error) {
	var allergen model.Allergen
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&allergen).Error; err != nil {
		return nil, err
	}
	return &allergen, nil
}

// FindByIDs returns the allergens matching the given IDs. Callers compare
// lengths to detect references to missing allergens.
func (r *allergenRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Allergen, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var allergens []model.Allergen
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&allergens).Error; err != nil {
		return nil, err
	}
	return allergens, nil
}

// List lists all allergens ordered by ID.
func (r *allergenRepository) List(ctx context.Context) ([]model.Allergen, error) {
	var allergens []model.Allergen
	if err := r.db.WithContext(ctx).Order("id").Find(&allergens).Error; err != nil {
		return nil, err
	}
	return allergens, nil
}

// Delete removes an allergen and its food links.
func (r *allergenRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var allergen model.Allergen
		if err := tx.Where("id = ?", id).First(&allergen).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM food_allergens WHERE allergen_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&allergen).Error
	})
}
