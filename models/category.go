package models

// Category is read-mostly reference data shared by many properties.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:80" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
