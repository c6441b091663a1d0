package model

import "time"

// Recipe is a dish from the shared catalog with its required ingredients.
type Recipe struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL     string    `json:"image_url,omitempty" gorm:"size:512"`
	CookingTime  int       `json:"cooking_time" gorm:"default:0"` // minutes
	Servings     int       `json:"servings" gorm:"default:1"`
	Instructions string    `json:"instructions,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Ingredients []RecipeFood `json:"ingredients" gorm:"foreignKey:RecipeID"`
}

// RecipeFood links a recipe to one required food with a per-recipe quantity.
type RecipeFood struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	RecipeID uint   `json:"recipe_id" gorm:"not null;uniqueIndex:idx_recipe_food"`
	FoodID   uint   `json:"food_id" gorm:"not null;uniqueIndex:idx_recipe_food"`
	Quantity string `json:"quantity" gorm:"size:255"`

	// Relations
	Food Food `json:"food,omitempty" gorm:"foreignKey:FoodID"`
}
