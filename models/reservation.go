package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return ReservationStatus(s), true
	}
	return "", false
}

// Reservation is a booking made by a buyer against a property. The composite
// unique index forbids two reservations on one property with an identical
// (start, end) pair; overlapping ranges with different endpoints are allowed.
type Reservation struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	StartDate  time.Time         `gorm:"uniqueIndex:idx_property_period;index" json:"startDate"`
	EndDate    time.Time         `gorm:"uniqueIndex:idx_property_period" json:"endDate"`
	TotalPrice decimal.Decimal   `gorm:"type:decimal(12,2)" json:"totalPrice"`
	Status     ReservationStatus `gorm:"size:16;default:PENDING" json:"status"`

	UserID     uint `gorm:"index" json:"userId"`
	PropertyID uint `gorm:"uniqueIndex:idx_property_period;index" json:"propertyId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     User     `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}
