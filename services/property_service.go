package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayhub-backend/models"
	"stayhub-backend/utils"
)

// PropertyService wraps *gorm.DB with the listing CRUD rules.
type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

type PropertyListQuery struct {
	Name       string
	City       string
	CategoryID uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinRooms   int
	MaxRooms   int
	SellerID   uint
	SortBy     string
	Order      string
	Page       int
	PageSize   int
}

type PropertyPage struct {
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Total    int64             `json:"total"`
	Items    []models.Property `json:"items"`
}

type CreatePropertyInput struct {
	Name        string
	Description string
	Image       string
	Price       decimal.Decimal
	Rooms       int
	Address     string
	City        string
	CategoryID  uint
	Amenities   []string
}

// UpdatePropertyInput carries partial-update semantics: only non-nil fields
// are touched.
type UpdatePropertyInput struct {
	Name        *string
	Description *string
	Image       *string
	Price       *decimal.Decimal
	Rooms       *int
	Address     *string
	City        *string
	CategoryID  *uint
	Amenities   *[]string
}

var propertySortColumns = map[string]string{
	"name":  "properties.name",
	"price": "properties.price",
	"rooms": "properties.rooms",
	"city":  "locations.city",
}

func clampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// List filters, sorts and paginates properties. Page is clamped to >= 1 and
// page size to [1,50].
func (s *PropertyService) List(q PropertyListQuery) (*PropertyPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = 10
	}
	pageSize = clampInt(pageSize, 1, 50)

	tx := s.DB.Model(&models.Property{}).
		Joins("JOIN locations ON locations.id = properties.location_id")

	if name := strings.TrimSpace(q.Name); name != "" {
		tx = tx.Where("LOWER(properties.name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if city := strings.TrimSpace(q.City); city != "" {
		tx = tx.Where("LOWER(locations.city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if q.CategoryID != 0 {
		tx = tx.Where("properties.category_id = ?", q.CategoryID)
	}
	if q.MinPrice != nil {
		tx = tx.Where("properties.price >= ?", q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("properties.price <= ?", q.MaxPrice)
	}
	if q.MinRooms > 0 {
		tx = tx.Where("properties.rooms >= ?", q.MinRooms)
	}
	if q.MaxRooms > 0 {
		tx = tx.Where("properties.rooms <= ?", q.MaxRooms)
	}
	if q.SellerID != 0 {
		tx = tx.Where("properties.seller_id = ?", q.SellerID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	sortCol, ok := propertySortColumns[q.SortBy]
	if !ok {
		sortCol = propertySortColumns["name"]
	}
	dir := "ASC"
	if strings.EqualFold(q.Order, "desc") {
		dir = "DESC"
	}

	var items []models.Property
	err := tx.Select("properties.*").
		Order(sortCol + " " + dir).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Preload("Location").
		Preload("Category").
		Preload("Seller").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &PropertyPage{Page: page, PageSize: pageSize, Total: total, Items: items}, nil
}

// GetByID returns full detail including nested relations and reservations.
func (s *PropertyService) GetByID(id uint) (*models.Property, error) {
	var property models.Property
	err := s.DB.
		Preload("Location").
		Preload("Category").
		Preload("Seller").
		Preload("Reservations").
		First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound("property does not exist")
		}
		return nil, err
	}
	return &property, nil
}

// Create validates the category, then writes the location and the property in
// one transaction so a partial write is never observable.
func (s *PropertyService) Create(sellerID uint, input CreatePropertyInput) (*models.Property, error) {
	var category models.Category
	if err := s.DB.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrValidation("selected category does not exist")
		}
		return nil, err
	}

	amenities, err := marshalAmenities(input.Amenities)
	if err != nil {
		return nil, err
	}

	var property models.Property
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		location := models.Location{Address: input.Address, City: input.City}
		if err := tx.Create(&location).Error; err != nil {
			return err
		}

		property = models.Property{
			Name:        input.Name,
			Description: input.Description,
			Image:       input.Image,
			Price:       input.Price,
			Rooms:       input.Rooms,
			Amenities:   amenities,
			SellerID:    sellerID,
			LocationID:  location.ID,
			CategoryID:  input.CategoryID,
		}
		return tx.Create(&property).Error
	})
	if err != nil {
		return nil, err
	}

	return s.reload(property.ID)
}

// Update applies a partial update after the ownership check. A changed
// category is validated; address/city changes land on the location row.
func (s *PropertyService) Update(sellerID, propertyID uint, input UpdatePropertyInput) (*models.Property, error) {
	var existing models.Property
	if err := s.DB.First(&existing, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound("property does not exist")
		}
		return nil, err
	}
	if existing.SellerID != sellerID {
		return nil, utils.ErrForbidden()
	}

	if input.CategoryID != nil {
		var category models.Category
		if err := s.DB.First(&category, *input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.ErrValidation("selected category does not exist")
			}
			return nil, err
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if input.Address != nil || input.City != nil {
			locUpdates := map[string]interface{}{}
			if input.Address != nil {
				locUpdates["address"] = *input.Address
			}
			if input.City != nil {
				locUpdates["city"] = *input.City
			}
			if err := tx.Model(&models.Location{}).Where("id = ?", existing.LocationID).Updates(locUpdates).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Rooms != nil {
			updates["rooms"] = *input.Rooms
		}
		if input.CategoryID != nil {
			updates["category_id"] = *input.CategoryID
		}
		if input.Amenities != nil {
			amenities, err := marshalAmenities(*input.Amenities)
			if err != nil {
				return err
			}
			updates["amenities"] = amenities
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&models.Property{}).Where("id = ?", propertyID).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.reload(propertyID)
}

// Delete removes the property together with its reservations and location,
// in dependency order, in one transaction.
func (s *PropertyService) Delete(sellerID, propertyID uint) error {
	var existing models.Property
	if err := s.DB.First(&existing, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrNotFound("property does not exist")
		}
		return err
	}
	if existing.SellerID != sellerID {
		return utils.ErrForbidden()
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", propertyID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Property{}, propertyID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Location{}, existing.LocationID).Error
	})
}

func (s *PropertyService) reload(id uint) (*models.Property, error) {
	var property models.Property
	err := s.DB.
		Preload("Location").
		Preload("Category").
		Preload("Seller").
		First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func marshalAmenities(amenities []string) (datatypes.JSON, error) {
	if len(amenities) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(amenities)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
