package models

// Location is owned by exactly one Property and is deleted together with it.
type Location struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Address string `gorm:"size:200" json:"address"`
	City    string `gorm:"size:80;index" json:"city"`
}
