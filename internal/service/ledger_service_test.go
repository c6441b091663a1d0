package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func expense(amount string, categoryID *uint) model.Transaction {
	return model.Transaction{Type: model.TransactionExpense, Amount: dec(amount), CategoryID: categoryID}
}

func income(amount string) model.Transaction {
	return model.Transaction{Type: model.TransactionIncome, Amount: dec(amount)}
}

func TestSumTotals(t *testing.T) {
	tests := []struct {
		name            string
		txns            []model.Transaction
		expectedIncome  string
		expectedExpense string
		expectedBalance string
	}{
		{
			name:            "empty set",
			txns:            nil,
			expectedIncome:  "0",
			expectedExpense: "0",
			expectedBalance: "0",
		},
		{
			name: "mixed entries",
			txns: []model.Transaction{
				income("3000"),
				expense("1200.50", nil),
				expense("300", nil),
			},
			expectedIncome:  "3000",
			expectedExpense: "1500.50",
			expectedBalance: "1499.50",
		},
		{
			name: "expenses exceed income",
			txns: []model.Transaction{
				income("100"),
				expense("250", nil),
			},
			expectedIncome:  "100",
			expectedExpense: "250",
			expectedBalance: "-150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := SumTotals(tt.txns)

			assert.True(t, dec(tt.expectedIncome).Equal(totals.TotalIncome), "income %s", totals.TotalIncome)
			assert.True(t, dec(tt.expectedExpense).Equal(totals.TotalExpense), "expense %s", totals.TotalExpense)
			assert.True(t, dec(tt.expectedBalance).Equal(totals.Balance), "balance %s", totals.Balance)
		})
	}
}

func TestComputeFoodBudget(t *testing.T) {
	tests := []struct {
		name              string
		budget            *decimal.Decimal
		txns              []model.Transaction
		expectedExpense   string
		expectedRemaining *string
		expectedOver      string
	}{
		{
			name:              "no budget set",
			budget:            nil,
			txns:              []model.Transaction{expense("800", nil)},
			expectedExpense:   "800",
			expectedRemaining: nil,
			expectedOver:      "0",
		},
		{
			name:              "zero budget counts as unset",
			budget:            decPtr("0"),
			txns:              []model.Transaction{expense("800", nil)},
			expectedExpense:   "800",
			expectedRemaining: nil,
			expectedOver:      "0",
		},
		{
			name:              "under budget",
			budget:            decPtr("1000"),
			txns:              []model.Transaction{expense("300", nil), expense("200", nil)},
			expectedExpense:   "500",
			expectedRemaining: strPtr("500"),
			expectedOver:      "0",
		},
		{
			name:              "over budget",
			budget:            decPtr("1000"),
			txns:              []model.Transaction{expense("1200", nil)},
			expectedExpense:   "1200",
			expectedRemaining: strPtr("-200"),
			expectedOver:      "200",
		},
		{
			name:              "income entries are ignored",
			budget:            decPtr("1000"),
			txns:              []model.Transaction{income("5000"), expense("400", nil)},
			expectedExpense:   "400",
			expectedRemaining: strPtr("600"),
			expectedOver:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputeFoodBudget(tt.budget, tt.txns)

			assert.True(t, dec(tt.expectedExpense).Equal(summary.TodayExpense), "expense %s", summary.TodayExpense)
			if tt.expectedRemaining == nil {
				assert.Nil(t, summary.Remaining)
			} else {
				assert.NotNil(t, summary.Remaining)
				assert.True(t, dec(*tt.expectedRemaining).Equal(*summary.Remaining), "remaining %s", summary.Remaining)
			}
			assert.True(t, dec(tt.expectedOver).Equal(summary.OverBudget), "over %s", summary.OverBudget)
		})
	}
}

func strPtr(s string) *string {
	return &s
}

func TestLedgerService_FoodBudget(t *testing.T) {
	today := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)
	foodCategoryID := uint(3)
	otherCategoryID := uint(4)

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
		ID:              7,
		DailyFoodBudget: decPtr("1000"),
	}, nil)

	mockCategoryRepo := new(MockTransactionCategoryRepository)
	mockCategoryRepo.On("FindGlobalByName", mock.Anything, model.FoodCategoryName).Return(&model.TransactionCategory{
		ID:   foodCategoryID,
		Name: model.FoodCategoryName,
	}, nil)

	mockTxnRepo := new(MockTransactionRepository)
	mockTxnRepo.On("ListByUserAndDate", mock.Anything, uint(7), today).Return([]model.Transaction{
		expense("700", &foodCategoryID),
		expense("500", &foodCategoryID),
		expense("9999", &otherCategoryID),
		expense("50", nil),
	}, nil)

	service := &ledgerService{
		txnRepo:      mockTxnRepo,
		categoryRepo: mockCategoryRepo,
		userRepo:     mockUserRepo,
		now:          func() time.Time { return today },
	}

	summary, err := service.FoodBudget(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, dec("1200").Equal(summary.TodayExpense))
	assert.NotNil(t, summary.Remaining)
	assert.True(t, dec("-200").Equal(*summary.Remaining))
	assert.True(t, dec("200").Equal(summary.OverBudget))

	mockUserRepo.AssertExpectations(t)
	mockCategoryRepo.AssertExpectations(t)
	mockTxnRepo.AssertExpectations(t)
}

func TestLedgerService_FoodBudget_NoGlobalFoodCategory(t *testing.T) {
	today := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, DailyFoodBudget: decPtr("1000")}, nil)

	mockCategoryRepo := new(MockTransactionCategoryRepository)
	mockCategoryRepo.On("FindGlobalByName", mock.Anything, model.FoodCategoryName).Return(nil, gorm.ErrRecordNotFound)

	mockTxnRepo := new(MockTransactionRepository)
	mockTxnRepo.On("ListByUserAndDate", mock.Anything, uint(7), today).Return([]model.Transaction{expense("700", nil)}, nil)

	service := &ledgerService{
		txnRepo:      mockTxnRepo,
		categoryRepo: mockCategoryRepo,
		userRepo:     mockUserRepo,
		now:          func() time.Time { return today },
	}

	summary, err := service.FoodBudget(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, summary.TodayExpense.IsZero())
	assert.NotNil(t, summary.Remaining)
	assert.True(t, dec("1000").Equal(*summary.Remaining))
}

func TestLedgerService_UpdateCategory_GlobalIsReadOnly(t *testing.T) {
	mockCategoryRepo := new(MockTransactionCategoryRepository)
	mockCategoryRepo.On("FindByIDForUser", mock.Anything, uint(3), uint(7)).Return(&model.TransactionCategory{
		ID:   3,
		Name: model.FoodCategoryName,
	}, nil)

	service := NewLedgerService(new(MockTransactionRepository), mockCategoryRepo, new(MockUserRepository))

	name := "renamed"
	category, err := service.UpdateCategory(context.Background(), 3, 7, &name, nil)

	assert.Nil(t, category)
	assert.Equal(t, errors.ErrForbidden, err)
}

func TestLedgerService_CreateTransaction(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("rejects non-positive amount", func(t *testing.T) {
		service := NewLedgerService(new(MockTransactionRepository), new(MockTransactionCategoryRepository), new(MockUserRepository))

		txn, err := service.CreateTransaction(context.Background(), 7, TransactionInput{
			Type:            model.TransactionExpense,
			Amount:          dec("0"),
			TransactionDate: date,
		})

		assert.Nil(t, txn)
		assert.Equal(t, errors.ErrInvalidAmount, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		service := NewLedgerService(new(MockTransactionRepository), new(MockTransactionCategoryRepository), new(MockUserRepository))

		txn, err := service.CreateTransaction(context.Background(), 7, TransactionInput{
			Type:            model.TransactionType("transfer"),
			Amount:          dec("100"),
			TransactionDate: date,
		})

		assert.Nil(t, txn)
		assert.Equal(t, errors.ErrInvalidTransactionType, err)
	})

	t.Run("rejects foreign category", func(t *testing.T) {
		categoryID := uint(9)
		mockCategoryRepo := new(MockTransactionCategoryRepository)
		mockCategoryRepo.On("FindByIDForUser", mock.Anything, categoryID, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		service := NewLedgerService(new(MockTransactionRepository), mockCategoryRepo, new(MockUserRepository))

		txn, err := service.CreateTransaction(context.Background(), 7, TransactionInput{
			CategoryID:      &categoryID,
			Type:            model.TransactionExpense,
			Amount:          dec("100"),
			TransactionDate: date,
		})

		assert.Nil(t, txn)
		assert.Equal(t, errors.ErrTransactionCategoryNotFound, err)
	})

	t.Run("stores a valid entry", func(t *testing.T) {
		mockTxnRepo := new(MockTransactionRepository)
		mockTxnRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)

		service := NewLedgerService(mockTxnRepo, new(MockTransactionCategoryRepository), new(MockUserRepository))

		txn, err := service.CreateTransaction(context.Background(), 7, TransactionInput{
			Type:            model.TransactionExpense,
			Amount:          dec("480"),
			Description:     "groceries",
			TransactionDate: date,
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(7), txn.UserID)
		assert.True(t, dec("480").Equal(txn.Amount))
		mockTxnRepo.AssertExpectations(t)
	})
}
