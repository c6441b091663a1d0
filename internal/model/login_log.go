package model

import "time"

// LoginLog records one successful login.
type LoginLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	IPAddress string    `json:"ip_address,omitempty" gorm:"size:45"`
	UserAgent string    `json:"user_agent,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
}
