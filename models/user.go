package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:50;unique;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	Orders    []Order `gorm:"constraint:OnDelete:CASCADE"`
}
