package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
)

// StockInput is the full set of fields accepted when adding a stock item.
type StockInput struct {
	FoodID      uint
	ExpiryDate  *time.Time
	StorageType model.StorageType
	Quantity    string
	Memo        string
}

// StockUpdate is a partial update of a stock item. Nil fields are left
// unchanged; ExpiryDate distinguishes "leave unchanged" (nil) from
// "clear the date" (pointer to nil).
type StockUpdate struct {
	ExpiryDate  **time.Time
	StorageType *model.StorageType
	Quantity    *string
	Memo        *string
}

// StockService handles a user's physical stock.
type StockService interface {
	List(ctx context.Context, userID uint) ([]model.Stock, error)
	Get(ctx context.Context, id, userID uint) (*model.Stock, error)
	Create(ctx context.Context, userID uint, input StockInput) (*model.Stock, error)
	Update(ctx context.Context, id, userID uint, patch StockUpdate) (*model.Stock, error)
	Delete(ctx context.Context, id, userID uint) error
}

type stockService struct {
	stockRepo repository.StockRepository
	foodRepo  repository.FoodRepository
}

// NewStockService creates a new stock service.
func NewStockService(stockRepo repository.StockRepository, foodRepo repository.FoodRepository) StockService {
	return &stockService{stockRepo: stockRepo, foodRepo: foodRepo}
}

// List lists the user's stock ordered by expiry date.
func (s *stockService) List(ctx context.Context, userID uint) ([]model.Stock, error) {
	return s.stockRepo.ListByUser(ctx, userID)
}

// Get retrieves one stock item owned by the user.
func (s *stockService) Get(ctx context.Context, id, userID uint) (*model.Stock, error) {
	stock, err := s.stockRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrStockNotFound
		}
		return nil, fmt.Errorf("find stock: %w", err)
	}
	return stock, nil
}

// Create adds a stock item referencing a food visible to the user.
func (s *stockService) Create(ctx context.Context, userID uint, input StockInput) (*model.Stock, error) {
	if !input.StorageType.Valid() {
		return nil, errors.ErrInvalidStorageType
	}

	food, err := s.foodRepo.FindByID(ctx, input.FoodID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrFoodNotFound
		}
		return nil, fmt.Errorf("find food: %w", err)
	}
	if !food.VisibleTo(userID) {
		return nil, errors.ErrFoodNotFound
	}

	stock := &model.Stock{
		UserID:      userID,
		FoodID:      input.FoodID,
		ExpiryDate:  input.ExpiryDate,
		StorageType: input.StorageType,
		Quantity:    input.Quantity,
		Memo:        input.Memo,
	}
	if err := s.stockRepo.Create(ctx, stock); err != nil {
		return nil, fmt.Errorf("create stock: %w", err)
	}
	return stock, nil
}

// Update applies a partial update to a stock item owned by the user.
func (s *stockService) Update(ctx context.Context, id, userID uint, patch StockUpdate) (*model.Stock, error) {
	stock, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if patch.ExpiryDate != nil {
		stock.ExpiryDate = *patch.ExpiryDate
	}
	if patch.StorageType != nil {
		if !patch.StorageType.Valid() {
			return nil, errors.ErrInvalidStorageType
		}
		stock.StorageType = *patch.StorageType
	}
	if patch.Quantity != nil {
		stock.Quantity = *patch.Quantity
	}
	if patch.Memo != nil {
		stock.Memo = *patch.Memo
	}
	if err := s.stockRepo.Update(ctx, stock); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return stock, nil
}

// Delete removes a stock item owned by the user, typically on consumption.
func (s *stockService) Delete(ctx context.Context, id, userID uint) error {
	if err := s.stockRepo.Delete(ctx, id, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrStockNotFound
		}
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
