package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes ledger entry direction.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether the transaction type is a known value.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is one income or expense entry in a user's household ledger.
// TransactionDate is a calendar day, not an instant.
type Transaction struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	UserID          uint             `json:"user_id" gorm:"not null;index"`
	CategoryID      *uint            `json:"category_id" gorm:"index"`
	Type            TransactionType  `json:"type" gorm:"type:varchar(10);not null;index"`
	Amount          decimal.Decimal  `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description     string           `json:"description,omitempty" gorm:"size:512"`
	TransactionDate time.Time        `json:"transaction_date" gorm:"type:date;not null;index"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// Relations
	Category *TransactionCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TransactionCategory labels ledger entries. A nil UserID marks a global
// category shared by all users (the built-in "food" category among them).
type TransactionCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Color     string    `json:"color,omitempty" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FoodCategoryName is the reserved global ledger category used by the
// daily food-budget summary.
const FoodCategoryName = "food"
