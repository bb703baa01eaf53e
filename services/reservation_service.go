package services

import (
	"errors"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stayhub-backend/models"
	"stayhub-backend/utils"
)

// ReservationService wraps *gorm.DB with the reservation lifecycle rules.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// nightsBetween counts calendar-day units as the ceiling of the span.
func nightsBetween(start, end time.Time) int64 {
	span := end.Sub(start)
	nights := int64(span / (24 * time.Hour))
	if span%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// sqlite (tests) reports constraint violations as plain strings
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create books a property for the buyer. The total is price-per-night times
// nights, computed in exact decimals. A second reservation with an identical
// (property, start, end) triple conflicts; overlapping ranges with different
// endpoints are accepted, which is the documented narrow guarantee.
func (s *ReservationService) Create(buyerID, propertyID uint, start, end time.Time) (*models.Reservation, error) {
	if !start.Before(end) {
		return nil, utils.ErrValidation("start date must be before end date")
	}

	nights := nightsBetween(start, end)
	if nights <= 0 {
		return nil, utils.ErrValidation("invalid reservation period")
	}

	var property models.Property
	if err := s.DB.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound("property does not exist")
		}
		return nil, err
	}

	total := property.Price.Mul(decimal.NewFromInt(nights))
	if !total.IsPositive() {
		return nil, utils.ErrValidation("total price must be positive")
	}

	reservation := models.Reservation{
		StartDate:  start,
		EndDate:    end,
		TotalPrice: total,
		Status:     models.ReservationPending,
		UserID:     buyerID,
		PropertyID: propertyID,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, utils.ErrConflict("a reservation for this period already exists")
		}
		return nil, err
	}

	if err := s.preloadBuyerView(s.DB).First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListMine returns the buyer's reservations, newest start date first.
func (s *ReservationService) ListMine(buyerID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.preloadBuyerView(s.DB).
		Where("user_id = ?", buyerID).
		Order("start_date DESC").
		Find(&reservations).Error
	return reservations, err
}

// Cancel applies the buyer-side transition rules: a confirmed reservation
// cannot be cancelled by its buyer, cancelling twice is an idempotent no-op.
func (s *ReservationService) Cancel(buyerID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound("reservation does not exist")
		}
		return nil, err
	}
	if reservation.UserID != buyerID {
		return nil, utils.ErrForbidden()
	}

	switch reservation.Status {
	case models.ReservationConfirmed:
		return nil, utils.ErrValidation("a confirmed reservation cannot be cancelled")
	case models.ReservationCancelled:
		return &reservation, nil
	}

	if err := s.DB.Model(&reservation).Update("status", models.ReservationCancelled).Error; err != nil {
		return nil, err
	}
	reservation.Status = models.ReservationCancelled
	return &reservation, nil
}

// ListForSeller returns every reservation made against the seller's
// properties, newest start date first, including the buyer identity.
func (s *ReservationService) ListForSeller(sellerID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.
		Joins("JOIN properties ON properties.id = reservations.property_id").
		Where("properties.seller_id = ?", sellerID).
		Order("reservations.start_date DESC").
		Preload("User").
		Preload("Property").
		Preload("Property.Location").
		Preload("Property.Category").
		Find(&reservations).Error
	return reservations, err
}

// UpdateStatusAsSeller overwrites the status without transition restriction.
// The seller path is deliberately permissive, unlike the buyer path.
func (s *ReservationService) UpdateStatusAsSeller(sellerID, reservationID uint, status models.ReservationStatus) (*models.Reservation, error) {
	reservation, err := s.findOwnedBySeller(sellerID, reservationID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(reservation).Update("status", status).Error; err != nil {
		return nil, err
	}
	reservation.Status = status
	return reservation, nil
}

// DeleteAsSeller hard-deletes a reservation on the seller's own property.
func (s *ReservationService) DeleteAsSeller(sellerID, reservationID uint) error {
	reservation, err := s.findOwnedBySeller(sellerID, reservationID)
	if err != nil {
		return err
	}
	return s.DB.Delete(&models.Reservation{}, reservation.ID).Error
}

func (s *ReservationService) findOwnedBySeller(sellerID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.Preload("Property").First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound("reservation does not exist")
		}
		return nil, err
	}
	if reservation.Property.SellerID != sellerID {
		return nil, utils.ErrForbidden()
	}
	return &reservation, nil
}

func (s *ReservationService) preloadBuyerView(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Property").
		Preload("Property.Location").
		Preload("Property.Category").
		Preload("Property.Seller")
}
