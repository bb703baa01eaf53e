package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stayhub-backend/models"
	"stayhub-backend/utils"
)

// AdminService provides read-only rollups over the reservation ledger.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

type SellerReservationCount struct {
	SellerID   uint   `json:"sellerId"`
	SellerName string `json:"sellerName"`
	Count      int64  `json:"count"`
}

type MonthRevenue struct {
	Month   string `json:"month"`
	Revenue string `json:"revenue"`
}

type AdminMetrics struct {
	TotalReservations     int64                    `json:"totalReservations"`
	ReservationsPerSeller []SellerReservationCount `json:"reservationsPerSeller"`
	RevenueByMonth        []MonthRevenue           `json:"revenueByMonth"`
}

type ReservationReport struct {
	From  time.Time            `json:"from"`
	To    time.Time            `json:"to"`
	Count int                  `json:"count"`
	Items []models.Reservation `json:"items"`
}

// Metrics aggregates the admin dashboard numbers. Sellers without any
// reservation are still listed with count 0, and revenue values stay exact
// decimal strings so no amount passes through floating point.
func (s *AdminService) Metrics() (*AdminMetrics, error) {
	var total int64
	if err := s.DB.Model(&models.Reservation{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var counted []struct {
		SellerID uint
		Cnt      int64
	}
	err := s.DB.Model(&models.Reservation{}).
		Select("properties.seller_id AS seller_id, COUNT(reservations.id) AS cnt").
		Joins("JOIN properties ON properties.id = reservations.property_id").
		Group("properties.seller_id").
		Scan(&counted).Error
	if err != nil {
		return nil, err
	}
	countsBySeller := make(map[uint]int64, len(counted))
	for _, row := range counted {
		countsBySeller[row.SellerID] = row.Cnt
	}

	var sellers []models.User
	if err := s.DB.Where("role = ?", models.RoleSeller).Order("id ASC").Find(&sellers).Error; err != nil {
		return nil, err
	}
	perSeller := make([]SellerReservationCount, 0, len(sellers))
	for _, seller := range sellers {
		perSeller = append(perSeller, SellerReservationCount{
			SellerID:   seller.ID,
			SellerName: seller.Name,
			Count:      countsBySeller[seller.ID],
		})
	}

	revenue, err := s.revenueByMonth()
	if err != nil {
		return nil, err
	}

	return &AdminMetrics{
		TotalReservations:     total,
		ReservationsPerSeller: perSeller,
		RevenueByMonth:        revenue,
	}, nil
}

func (s *AdminService) revenueByMonth() ([]MonthRevenue, error) {
	var rows []models.Reservation
	if err := s.DB.Model(&models.Reservation{}).Select("start_date", "total_price").Find(&rows).Error; err != nil {
		return nil, err
	}

	byMonth := make(map[string]decimal.Decimal)
	for _, r := range rows {
		month := r.StartDate.Format("2006-01")
		byMonth[month] = byMonth[month].Add(r.TotalPrice)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	revenue := make([]MonthRevenue, 0, len(months))
	for _, month := range months {
		revenue = append(revenue, MonthRevenue{Month: month, Revenue: byMonth[month].StringFixed(2)})
	}
	return revenue, nil
}

// ReservationsReport returns reservations fully inside [from, to], start date
// ascending, with full buyer and property detail.
func (s *AdminService) ReservationsReport(from, to time.Time) (*ReservationReport, error) {
	if from.After(to) {
		return nil, utils.ErrValidation("from must not be after to")
	}

	var items []models.Reservation
	err := s.DB.
		Where("start_date >= ? AND end_date <= ?", from, to).
		Order("start_date ASC").
		Preload("User").
		Preload("Property").
		Preload("Property.Location").
		Preload("Property.Category").
		Preload("Property.Seller").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &ReservationReport{From: from, To: to, Count: len(items), Items: items}, nil
}

// ListSellers returns every seller with their properties, ordered by name.
func (s *AdminService) ListSellers() ([]models.User, error) {
	var sellers []models.User
	err := s.DB.
		Where("role = ?", models.RoleSeller).
		Order("name ASC").
		Preload("Properties").
		Preload("Properties.Location").
		Preload("Properties.Category").
		Find(&sellers).Error
	return sellers, err
}
