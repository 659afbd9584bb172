package models

import "time"

// Blacklist holds access tokens revoked by logout.
type Blacklist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"type:text;not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
