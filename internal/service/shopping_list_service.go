package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
)

// ShoppingItemUpdate is a partial update of a shopping list item. Nil
// fields are left unchanged.
type ShoppingItemUpdate struct {
	Name     *string
	Quantity *string
	Checked  *bool
	Memo     *string
}

// ShoppingListService handles a user's shopping list.
type ShoppingListService interface {
	List(ctx context.Context, userID uint) ([]model.ShoppingListItem, error)
	Create(ctx context.Context, userID uint, name, quantity, memo string) (*model.ShoppingListItem, error)
	Update(ctx context.Context, id, userID uint, patch ShoppingItemUpdate) (*model.ShoppingListItem, error)
	ToggleChecked(ctx context.Context, id, userID uint) (*model.ShoppingListItem, error)
	Delete(ctx context.Context, id, userID uint) error
	ClearChecked(ctx context.Context, userID uint) (int64, error)
}

type shoppingListService struct {
	itemRepo repository.ShoppingListRepository
}

// NewShoppingListService creates a new shopping list service.
func NewShoppingListService(itemRepo repository.ShoppingListRepository) ShoppingListService {
	return &shoppingListService{itemRepo: itemRepo}
}

// List lists the user's shopping list, unchecked items first.
func (s *shoppingListService) List(ctx context.Context, userID uint) ([]model.ShoppingListItem, error) {
	return s.itemRepo.ListByUser(ctx, userID)
}

// Create adds a shopping list item.
func (s *shoppingListService) Create(ctx context.Context, userID uint, name, quantity, memo string) (*model.ShoppingListItem, error) {
	item := &model.ShoppingListItem{
		UserID:   userID,
		Name:     name,
		Quantity: quantity,
		Memo:     memo,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create shopping item: %w", err)
	}
	return item, nil
}

// Update applies a partial update to an item owned by the user.
func (s *shoppingListService) Update(ctx context.Context, id, userID uint, patch ShoppingItemUpdate) (*model.ShoppingListItem, error) {
	item, err := s.find(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Checked != nil {
		item.Checked = *patch.Checked
	}
	if patch.Memo != nil {
		item.Memo = *patch.Memo
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update shopping item: %w", err)
	}
	return item, nil
}

// ToggleChecked flips the checked flag on an item owned by the user.
func (s *shoppingListService) ToggleChecked(ctx context.Context, id, userID uint) (*model.ShoppingListItem, error) {
	item, err := s.find(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	item.Checked = !item.Checked
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update shopping item: %w", err)
	}
	return item, nil
}

// Delete removes an item owned by the user.
func (s *shoppingListService) Delete(ctx context.Context, id, userID uint) error {
	if err := s.itemRepo.Delete(ctx, id, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrShoppingItemNotFound
		}
		return fmt.Errorf("delete shopping item: %w", err)
	}
	return nil
}

// ClearChecked removes all checked items and returns how many were removed.
func (s *shoppingListService) ClearChecked(ctx context.Context, userID uint) (int64, error) {
	return s.itemRepo.DeleteChecked(ctx, userID)
}

func (s *shoppingListService) find(ctx context.Context, id, userID uint) (*model.ShoppingListItem, error) {
	item, err := s.itemRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrShoppingItemNotFound
		}
		return nil, fmt.Errorf("find shopping item: %w", err)
	}
	return item, nil
}
