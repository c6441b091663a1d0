package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// ShoppingListRepository defines shopping list persistence operations.
type ShoppingListRepository interface {
	Create(ctx context.Context, item *model.ShoppingListItem) error
	Update(ctx context.Context, item *model.ShoppingListItem) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.ShoppingListItem, error)
	ListByUser(ctx context.Context, userID uint) ([]model.ShoppingListItem, error)
	Delete(ctx context.Context, id, userID uint) error
	DeleteChecked(ctx context.Context, userID uint) (int64, error)
}

type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository.
func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// Create creates a new shopping list item.
func (r *shoppingListRepository) Create(ctx context.Context, item *model.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update saves a shopping list item.
func (r *shoppingListRepository) Update(ctx context.Context, item *model.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByIDForUser finds one item owned by the given user.
func (r *shoppingListRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.ShoppingListItem, error) {
	var item model.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUser lists a user's shopping list, unchecked items first.
func (r *shoppingListRepository) ListByUser(ctx context.Context, userID uint) ([]model.ShoppingListItem, error) {
	var items []model.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("checked ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an item owned by the given user.
func (r *shoppingListRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ShoppingListItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteChecked removes all checked items for a user and returns the count.
func (r *shoppingListRepository) DeleteChecked(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND checked = ?", userID, true).
		Delete(&model.ShoppingListItem{})
	return res.RowsAffected, res.Error
}
