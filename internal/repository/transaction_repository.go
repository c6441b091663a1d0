package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

// TransactionFilter narrows ledger queries.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	Type       model.TransactionType
	CategoryID *uint
}

// TransactionRepository defines ledger persistence operations. All reads
// and writes are scoped to the owning user.
type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	Update(ctx context.Context, txn *model.Transaction) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*model.Transaction, error)
	ListByUser(ctx context.Context, userID uint, filter TransactionFilter) ([]model.Transaction, error)
	ListByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]model.Transaction, error)
	Delete(ctx context.Context, id, userID uint) error
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create inserts a ledger entry and reloads it with its category.
func (r *transactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(txn).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Category").
		Where("id = ?", txn.ID).First(txn).Error
}

// Update saves a ledger entry.
func (r *transactionRepository) Update(ctx context.Context, txn *model.Transaction) error {
	return r.db.WithContext(ctx).Omit("Category").Save(txn).Error
}

// FindByIDForUser finds one ledger entry owned by the given user.
func (r *transactionRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*model.Transaction, error) {
	var txn model.Transaction
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListByUser lists a user's ledger entries newest first, optionally
// filtered by date range, type and category.
func (r *transactionRepository) ListByUser(ctx context.Context, userID uint, filter TransactionFilter) ([]model.Transaction, error) {
	q := r.db.WithContext(ctx).Preload("Category").Where("user_id = ?", userID)
	if filter.From != nil {
		q = q.Where("transaction_date >= ?", filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		q = q.Where("transaction_date <= ?", filter.To.Format("2006-01-02"))
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	var txns []model.Transaction
	if err := q.Order("transaction_date DESC, id DESC").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// ListByUserAndDate lists a user's ledger entries for one calendar day.
func (r *transactionRepository) ListByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("user_id = ? AND transaction_date = ?", userID, date.Format("2006-01-02")).
		Order("id").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// Delete removes a ledger entry owned by the given user.
func (r *transactionRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
