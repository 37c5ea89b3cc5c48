package models

import "time"

type Order struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"not null"`
	ItemID          uint   `gorm:"not null"`
	Quantity        int    `gorm:"not null"`
	DeliveryAddress string `gorm:"type:text;not null"`
	CreatedAt       time.Time
}
