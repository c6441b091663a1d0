package model

import "time"

// Allergen is a catalog-level allergen label (egg, milk, wheat, ...).
// Linked to foods through the food_allergens join table.
type Allergen struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
