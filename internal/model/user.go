package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Role values for User.Role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered household member.
// DailyFoodBudget is nil when the user has not set a budget; a zero or
// negative stored value is also treated as "no budget set" by the ledger
// service.
type User struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	Name            string           `json:"name" gorm:"size:255;not null"`
	Email           string           `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string           `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role            string           `json:"role" gorm:"size:50;not null;default:'user';index"`
	AvatarURL       string           `json:"avatar_url,omitempty" gorm:"size:512"`
	DailyFoodBudget *decimal.Decimal `json:"daily_food_budget" gorm:"type:decimal(10,2)"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `json:"-" gorm:"index"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
