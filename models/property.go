package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Property struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:120;index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Image       string          `gorm:"size:500" json:"image"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"` // per night
	Rooms       int             `json:"rooms"`
	Amenities   datatypes.JSON  `json:"amenities,omitempty"`

	SellerID   uint `gorm:"index" json:"sellerId"`
	LocationID uint `gorm:"index" json:"locationId"`
	CategoryID uint `gorm:"index" json:"categoryId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Seller       User          `gorm:"foreignKey:SellerID;references:ID" json:"seller,omitempty"`
	Location     Location      `gorm:"foreignKey:LocationID;references:ID" json:"location,omitempty"`
	Category     Category      `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:PropertyID" json:"reservations,omitempty"`
}
