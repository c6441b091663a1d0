package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
)

// TransactionInput is the full set of fields accepted when recording a
// ledger entry.
type TransactionInput struct {
	CategoryID      *uint
	Type            model.TransactionType
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
}

// TransactionUpdate is a partial update of a ledger entry. Nil fields are
// left unchanged; CategoryID distinguishes "leave unchanged" (nil) from
// "clear the category" (pointer to nil).
type TransactionUpdate struct {
	CategoryID      **uint
	Type            *model.TransactionType
	Amount          *decimal.Decimal
	Description     *string
	TransactionDate *time.Time
}

// LedgerTotals aggregates a transaction set by type.
type LedgerTotals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// FoodBudgetSummary reports today's food spending against the user's
// daily budget. Remaining is nil when no budget is set; a zero or
// negative stored budget counts as unset.
type FoodBudgetSummary struct {
	Budget       *decimal.Decimal `json:"budget"`
	TodayExpense decimal.Decimal  `json:"today_expense"`
	Remaining    *decimal.Decimal `json:"remaining"`
	OverBudget   decimal.Decimal  `json:"over_budget"`
}

// LedgerService handles the household expense ledger: transactions,
// ledger categories, totals and the daily food-budget summary.
type LedgerService interface {
	ListTransactions(ctx context.Context, userID uint, filter repository.TransactionFilter) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id, userID uint) (*model.Transaction, error)
	CreateTransaction(ctx context.Context, userID uint, input TransactionInput) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, id, userID uint, patch TransactionUpdate) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id, userID uint) error
	Totals(ctx context.Context, userID uint, from, to *time.Time) (*LedgerTotals, error)
	FoodBudget(ctx context.Context, userID uint) (*FoodBudgetSummary, error)

	ListCategories(ctx context.Context, userID uint) ([]model.TransactionCategory, error)
	CreateCategory(ctx context.Context, userID uint, name, color string) (*model.TransactionCategory, error)
	UpdateCategory(ctx context.Context, id, userID uint, name, color *string) (*model.TransactionCategory, error)
	DeleteCategory(ctx context.Context, id, userID uint) error
}

type ledgerService struct {
	txnRepo      repository.TransactionRepository
	categoryRepo repository.TransactionCategoryRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	txnRepo repository.TransactionRepository,
	categoryRepo repository.TransactionCategoryRepository,
	userRepo repository.UserRepository,
) LedgerService {
	return &ledgerService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// ListTransactions lists a user's ledger entries newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, userID uint, filter repository.TransactionFilter) ([]model.Transaction, error) {
	return s.txnRepo.ListByUser(ctx, userID, filter)
}

// GetTransaction retrieves one ledger entry owned by the user.
func (s *ledgerService) GetTransaction(ctx context.Context, id, userID uint) (*model.Transaction, error) {
	txn, err := s.txnRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return txn, nil
}

// CreateTransaction records a ledger entry.
func (s *ledgerService) CreateTransaction(ctx context.Context, userID uint, input TransactionInput) (*model.Transaction, error) {
	if !input.Type.Valid() {
		return nil, errors.ErrInvalidTransactionType
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByIDForUser(ctx, *input.CategoryID, userID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrTransactionCategoryNotFound
			}
			return nil, fmt.Errorf("find transaction category: %w", err)
		}
	}

	txn := &model.Transaction{
		UserID:          userID,
		CategoryID:      input.CategoryID,
		Type:            input.Type,
		Amount:          input.Amount,
		Description:     input.Description,
		TransactionDate: input.TransactionDate,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return txn, nil
}

// UpdateTransaction applies a partial update to a ledger entry owned by
// the user.
func (s *ledgerService) UpdateTransaction(ctx context.Context, id, userID uint, patch TransactionUpdate) (*model.Transaction, error) {
	txn, err := s.GetTransaction(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if patch.CategoryID != nil {
		if *patch.CategoryID != nil {
			if _, err := s.categoryRepo.FindByIDForUser(ctx, **patch.CategoryID, userID); err != nil {
				if err == gorm.ErrRecordNotFound {
					return nil, errors.ErrTransactionCategoryNotFound
				}
				return nil, fmt.Errorf("find transaction category: %w", err)
			}
		}
		txn.CategoryID = *patch.CategoryID
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return nil, errors.ErrInvalidTransactionType
		}
		txn.Type = *patch.Type
	}
	if patch.Amount != nil {
		if patch.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, errors.ErrInvalidAmount
		}
		txn.Amount = *patch.Amount
	}
	if patch.Description != nil {
		txn.Description = *patch.Description
	}
	if patch.TransactionDate != nil {
		txn.TransactionDate = *patch.TransactionDate
	}
	if err := s.txnRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes a ledger entry owned by the user.
func (s *ledgerService) DeleteTransaction(ctx context.Context, id, userID uint) error {
	if err := s.txnRepo.Delete(ctx, id, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTransactionNotFound
		}
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// Totals sums a user's ledger entries by type over an optional date range.
func (s *ledgerService) Totals(ctx context.Context, userID uint, from, to *time.Time) (*LedgerTotals, error) {
	txns, err := s.txnRepo.ListByUser(ctx, userID, repository.TransactionFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	totals := SumTotals(txns)
	return &totals, nil
}

// FoodBudget computes today's food spending against the user's daily
// budget. "Today" is the server's local calendar day.
func (s *ledgerService) FoodBudget(ctx context.Context, userID uint) (*FoodBudgetSummary, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	foodCategory, err := s.categoryRepo.FindGlobalByName(ctx, model.FoodCategoryName)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find food category: %w", err)
	}

	txns, err := s.txnRepo.ListByUserAndDate(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var foodTxns []model.Transaction
	if foodCategory != nil {
		for _, txn := range txns {
			if txn.CategoryID != nil && *txn.CategoryID == foodCategory.ID {
				foodTxns = append(foodTxns, txn)
			}
		}
	}

	summary := ComputeFoodBudget(user.DailyFoodBudget, foodTxns)
	return &summary, nil
}

// ListCategories lists global ledger categories plus the user's own.
func (s *ledgerService) ListCategories(ctx context.Context, userID uint) ([]model.TransactionCategory, error) {
	return s.categoryRepo.ListForUser(ctx, userID)
}

// CreateCategory creates a ledger category owned by the user.
func (s *ledgerService) CreateCategory(ctx context.Context, userID uint, name, color string) (*model.TransactionCategory, error) {
	category := &model.TransactionCategory{UserID: &userID, Name: name, Color: color}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create transaction category: %w", err)
	}
	return category, nil
}

// UpdateCategory applies a partial update to a user-owned ledger category.
// Global categories are read only.
func (s *ledgerService) UpdateCategory(ctx context.Context, id, userID uint, name, color *string) (*model.TransactionCategory, error) {
	category, err := s.categoryRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTransactionCategoryNotFound
		}
		return nil, fmt.Errorf("find transaction category: %w", err)
	}
	if category.UserID == nil {
		return nil, errors.ErrForbidden
	}
	if name != nil {
		category.Name = *name
	}
	if color != nil {
		category.Color = *color
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update transaction category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a user-owned ledger category.
func (s *ledgerService) DeleteCategory(ctx context.Context, id, userID uint) error {
	if err := s.categoryRepo.Delete(ctx, id, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTransactionCategoryNotFound
		}
		return fmt.Errorf("delete transaction category: %w", err)
	}
	return nil
}

// SumTotals sums transactions into income, expense and balance.
func SumTotals(txns []model.Transaction) LedgerTotals {
	totals := LedgerTotals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
	}
	for _, txn := range txns {
		switch txn.Type {
		case model.TransactionIncome:
			totals.TotalIncome = totals.TotalIncome.Add(txn.Amount)
		case model.TransactionExpense:
			totals.TotalExpense = totals.TotalExpense.Add(txn.Amount)
		}
	}
	totals.Balance = totals.TotalIncome.Sub(totals.TotalExpense)
	return totals
}

// ComputeFoodBudget sums expense entries and compares them against the
// daily budget. A nil, zero or negative budget means "no budget set":
// Remaining stays nil and OverBudget stays zero. With a positive budget,
// Remaining may go negative and OverBudget carries the positive overage.
func ComputeFoodBudget(budget *decimal.Decimal, txns []model.Transaction) FoodBudgetSummary {
	expense := decimal.Zero
	for _, txn := range txns {
		if txn.Type == model.TransactionExpense {
			expense = expense.Add(txn.Amount)
		}
	}

	summary := FoodBudgetSummary{
		Budget:       budget,
		TodayExpense: expense,
		OverBudget:   decimal.Zero,
	}

	if budget == nil || budget.LessThanOrEqual(decimal.Zero) {
		return summary
	}

	remaining := budget.Sub(expense)
	summary.Remaining = &remaining
	if remaining.IsNegative() {
		summary.OverBudget = remaining.Neg()
	}
	return summary
}
