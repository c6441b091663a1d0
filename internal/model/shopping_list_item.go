package model

import "time"

// ShoppingListItem is one entry on a user's shopping list.
type ShoppingListItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Quantity  string    `json:"quantity" gorm:"size:255"`
	Checked   bool      `json:"checked" gorm:"default:false"`
	Memo      string    `json:"memo,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
