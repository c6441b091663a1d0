package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// TransactionCategoryRepository defines ledger category persistence
// operations. Global categories (no owning user) are readable by everyone
// but only user-owned categories may be mutated by users.
type TransactionCategoryRepository interface {
	Create(ctx context.Context, category *model.TransactionCategory) error
	Update(ctx context.Context, category *model.TransactionCategory) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.TransactionCategory, error)
	FindGlobalByName(ctx context.Context, name string) (*model.TransactionCategory, error)
	ListForUser(ctx context.Context, userID uint) ([]model.TransactionCategory, error)
	Delete(ctx context.Context, id, userID uint) error
}

type transactionCategoryRepository struct {
	db *gorm.DB
}

// NewTransactionCategoryRepository creates a new ledger category repository.
func NewTransactionCategoryRepository(db *gorm.DB) TransactionCategoryRepository {
	return &transactionCategoryRepository{db: db}
}

// Create creates a new ledger category.
func (r *transactionCategoryRepository) Create(ctx context.Context, category *model.TransactionCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update updates an existing ledger category.
func (r *transactionCategoryRepository) Update(ctx context.Context, category *model.TransactionCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// FindByIDForUser finds a category readable by the given user
// (global or owned).
func (r *transactionCategoryRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.TransactionCategory, error) {
	var category model.TransactionCategory
	if err := r.db.WithContext(ctx).
		Where("id = ? AND (user_id IS NULL OR user_id = ?)", id, userID).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindGlobalByName finds a global category by its name.
func (r *transactionCategoryRepository) FindGlobalByName(ctx context.Context, name string) (*model.TransactionCategory, error) {
	var category model.TransactionCategory
	if err := r.db.WithContext(ctx).
		Where("user_id IS NULL AND name = ?", name).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListForUser lists global categories plus the given user's own.
func (r *transactionCategoryRepository) ListForUser(ctx context.Context, userID uint) ([]model.TransactionCategory, error) {
	var categories []model.TransactionCategory
	if err := r.db.WithContext(ctx).
		Where("user_id IS NULL OR user_id = ?", userID).
		Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete removes a category owned by the given user. Global categories
// cannot be deleted through this path.
func (r *transactionCategoryRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionCategory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
