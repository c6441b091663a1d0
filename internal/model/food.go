package model

import "time"

// Food is a catalog entry. A nil UserID marks a master food curated by an
// admin and visible to everyone; a non-nil UserID marks a private food owned
// by that user.
type Food struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	CategoryID   uint       `json:"category_id" gorm:"not null;index"`
	UserID       *uint      `json:"user_id" gorm:"index"`
	Name         string     `json:"name" gorm:"size:255;not null;index"`
	BestBefore   *time.Time `json:"best_before" gorm:"type:date"`
	UseBy        *time.Time `json:"use_by" gorm:"type:date"`
	Memo         string     `json:"memo,omitempty" gorm:"type:text"`
	Calories     float64    `json:"calories" gorm:"default:0"`
	Protein      float64    `json:"protein" gorm:"default:0"`
	Fat          float64    `json:"fat" gorm:"default:0"`
	Carbohydrate float64    `json:"carbohydrate" gorm:"default:0"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Category  Category   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Allergens []Allergen `json:"allergens" gorm:"many2many:food_allergens"`
}

// IsMaster reports whether the food belongs to the shared master catalog.
func (f *Food) IsMaster() bool {
	return f.UserID == nil
}

// VisibleTo reports whether the food may be read by the given user.
func (f *Food) VisibleTo(userID uint) bool {
	return f.UserID == nil || *f.UserID == userID
}
