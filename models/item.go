package models

type Item struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"size:100;unique;not null"`
	Category string  `gorm:"size:50"`
	Price    float64 `gorm:"type:decimal(10,2)"`
	ImageURL string  `gorm:"size:500"`
	Orders   []Order `gorm:"constraint:OnDelete:CASCADE"`
}
