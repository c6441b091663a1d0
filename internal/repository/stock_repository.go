package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// StockRepository defines stock persistence operations. All reads and
// writes are scoped to the owning user.
type StockRepository interface {
	Create(ctx context.Context, stock *model.Stock) error
	Update(ctx context.Context, stock *model.Stock) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.Stock, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Stock, error)
	ListFoodIDsByUser(ctx context.Context, userID uint) ([]uint, error)
	Delete(ctx context.Context, id, userID uint) error
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository.
func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

// Create inserts a stock item and reloads it with its food.
func (r *stockRepository) Create(ctx context.Context, stock *model.Stock) error {
	if err := r.db.WithContext(ctx).Omit("Food").Create(stock).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Food").Preload("Food.Category").
		Where("id = ?", stock.ID).First(stock).Error
}

// Update saves a stock item.
func (r *stockRepository) Update(ctx context.Context, stock *model.Stock) error {
	return r.db.WithContext(ctx).Omit("Food").Save(stock).Error
}

// FindByIDForUser finds one stock item owned by the given user.
func (r *stockRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.Stock, error) {
	var stock model.Stock
	if err := r.db.WithContext(ctx).Preload("Food").Preload("Food.Category").
		Where("id = ? AND user_id = ?", id, userID).First(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// ListByUser lists a user's stock ordered by expiry date ascending,
// items without an expiry last.
func (r *stockRepository) ListByUser(ctx context.Context, userID uint) ([]model.Stock, error) {
	var stocks []model.Stock
	if err := r.db.WithContext(ctx).Preload("Food").Preload("Food.Category").
		Where("user_id = ?", userID).
		Order("expiry_date IS NULL, expiry_date ASC, id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// ListFoodIDsByUser returns the distinct food IDs present in a user's stock.
func (r *stockRepository) ListFoodIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&model.Stock{}).
		Where("user_id = ?", userID).
		Distinct().Pluck("food_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes a stock item owned by the given user.
func (r *stockRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Stock{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
