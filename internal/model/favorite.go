package model

import "time"

// Favorite marks a recipe a user has starred.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_recipe"`
	RecipeID  uint      `json:"recipe_id" gorm:"not null;uniqueIndex:idx_user_recipe"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Recipe Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID"`
}
