package model

import "time"

// StorageType says where a stock item is kept.
type StorageType string

const (
	StorageRefrigerator StorageType = "refrigerator"
	StorageFreezer      StorageType = "freezer"
	StoragePantry       StorageType = "pantry"
)

// Valid reports whether the storage type is a known value.
func (s StorageType) Valid() bool {
	switch s {
	case StorageRefrigerator, StorageFreezer, StoragePantry:
		return true
	}
	return false
}

// Stock is one physical item a user currently holds. Quantity is free text
// ("2 packs", "300g") because households do not measure consistently.
type Stock struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null;index"`
	FoodID      uint        `json:"food_id" gorm:"not null;index"`
	ExpiryDate  *time.Time  `json:"expiry_date" gorm:"type:date;index"`
	StorageType StorageType `json:"storage_type" gorm:"type:varchar(20);not null;default:'refrigerator'"`
	Quantity    string      `json:"quantity" gorm:"size:255"`
	Memo        string      `json:"memo,omitempty" gorm:"type:text"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relations
	Food Food `json:"food,omitempty" gorm:"foreignKey:FoodID"`
}
