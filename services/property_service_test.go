package services

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub-backend/models"
)

func TestPropertyList_FilterSortPaginate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	seller := createUser(t, db, "Seller", "seller@test.local", models.RoleSeller)
	category := createCategory(t, db, "Apartment")
	createProperty(t, db, seller, category, "Cheap Flat", "Belgrade", "40.00", 1)
	createProperty(t, db, seller, category, "Mid Flat", "Belgrade", "100.00", 2)
	createProperty(t, db, seller, category, "Nice Flat", "Novi Sad", "150.00", 3)
	createProperty(t, db, seller, category, "Grand Villa", "Novi Sad", "400.00", 6)

	minPrice := decimal.RequireFromString("50")
	maxPrice := decimal.RequireFromString("150")
	page, err := svc.List(PropertyListQuery{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		SortBy:   "price",
		Order:    "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Nice Flat", page.Items[0].Name)
	assert.Equal(t, "Mid Flat", page.Items[1].Name)

	// name substring is case-insensitive
	page, err = svc.List(PropertyListQuery{Name: "flat"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)

	// city substring filter joins through locations
	page, err = svc.List(PropertyListQuery{City: "novi"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	// nested relations come back with each item
	require.NotEmpty(t, page.Items)
	assert.NotZero(t, page.Items[0].Location.ID)
	assert.Equal(t, category.Name, page.Items[0].Category.Name)
	assert.Equal(t, seller.Name, page.Items[0].Seller.Name)
}

func TestPropertyList_ClampsPaging(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	seller := createUser(t, db, "Seller", "seller@test.local", models.RoleSeller)
	category := createCategory(t, db, "Apartment")
	createProperty(t, db, seller, category, "Flat", "Belgrade", "40.00", 1)

	page, err := svc.List(PropertyListQuery{Page: -3, PageSize: 900})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.PageSize)

	page, err = svc.List(PropertyListQuery{PageSize: -1})
	require.NoError(t, err)
	assert.Equal(t, 1, page.PageSize)
}

func TestPropertyList_RoomsAndSellerFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	seller := createUser(t, db, "Seller", "seller@test.local", models.RoleSeller)
	other := createUser(t, db, "Other", "other@test.local", models.RoleSeller)
	category := createCategory(t, db, "Apartment")
	createProperty(t, db, seller, category, "Small", "Belgrade", "40.00", 1)
	createProperty(t, db, seller, category, "Large", "Belgrade", "90.00", 5)
	createProperty(t, db, other, category, "Foreign", "Belgrade", "70.00", 3)

	page, err := svc.List(PropertyListQuery{MinRooms: 2, MaxRooms: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = svc.List(PropertyListQuery{SellerID: seller.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}

func TestPropertyGetByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	seller := createUser(t, db, "Seller", "seller@test.local", models.RoleSeller)
	category := createCategory(t, db, "Apartment")
	property := createProperty(t, db, seller, category, "Flat", "Belgrade", "40.00", 1)

	got, err := svc.GetByID(property.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flat", got.Name)
	assert.Equal(t, "Belgrade", got.Location.City)

	_, err = svc.GetByID(9999)
	assert.Equal(t, http.StatusNotFound, appStatus(t, err))
}

func TestPropertyCreate_ValidatesCategoryAndWritesLocation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	seller := createUser(t, db, "Seller", "seller@test.local", models.RoleSeller)
	category := createCategory(t, db, "Apartment")

	_, err := svc.Create(seller.ID, CreatePropertyInput{
		Name: "Flat", Description: "long enough description", Image: "https://example.com/i.jpg",
		Price: decimal.RequireFromString("75.00"), Rooms: 2,
		Address: "1 Main St", City: "Belgrade", CategoryID: 9999,
	})
	assert.Equal(t, http.StatusBadRequest, appStatus(t, err))

	property, err := svc.Create(seller.ID, CreatePropertyInput{
		Name: "Flat", Description: "long enough description", Image: "https://example.com/i.jpg",
		Price: decimal.RequireFromString("75.00"), Rooms: 2,
		Address: "1 Main St", City: "Belgrade", CategoryID: category.ID,
		Amenities: []string{"wifi", "parking"},
	})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, property.SellerID)
	assert.Equal(t, "Belgrade", property.Location.City)
	assert.NotZero(t, property.LocationID)
	assert.JSONEq(t, `["wifi","parking"]`, string(property.Amenities))
}

func TestPropertyUpdate_PartialAndOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPropertyService(db)

	seller := createUser(t, db, "Seller", "seller@test.local", models.RoleSeller)
	intruder := createUser(t, db, "Intruder", "intruder@test.local", models.RoleSeller)
	category := createCategory(t, db, "Apartment")
	property := createProperty(t, db, seller, category, "Flat", "Belgrade", "40.00", 1)

	name := "Renamed Flat"
	city := "Novi Sad"
	_, err := svc.Update(intruder.ID, property.ID, UpdatePropertyInput{Name: &name})
	assert.Equal(t, http.StatusForbidden, appStatus(t, err))

	_, err = svc.Update(seller.ID, 9999, UpdatePropertyInput{Name: &name})
	assert.Equal(t, http.StatusNotFound, appStatus(t, err))

	badCategory := uint(9999)
	_, err = svc.Update(seller.ID, property.ID, UpdatePropertyInput{CategoryID: &badCategory})
	assert.Equal(t, http.StatusBadRequest, appStatus(t, err))

	updated, err := svc.Update(seller.ID, property.ID, UpdatePropertyInput{Name: &name, City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Flat", updated.Name)
	assert.Equal(t, "Novi Sad", updated.Location.City)
	// untouched fields survive a partial update
	assert.Equal(t, 1, updated.Rooms)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("40.00")))
}

func TestPropertyDelete_CascadesInOrder(t *testing.T) {
	db := setupTestDB(t)
	propertySvc := NewPropertyService(db)
	reservationSvc := NewReservationService(db)

	seller := createUser(t, db, "Seller", "seller@test.local", models.RoleSeller)
	intruder := createUser(t, db, "Intruder", "intruder@test.local", models.RoleSeller)
	buyer := createUser(t, db, "Buyer", "buyer@test.local", models.RoleBuyer)
	category := createCategory(t, db, "Apartment")
	property := createProperty(t, db, seller, category, "Flat", "Belgrade", "40.00", 1)

	_, err := reservationSvc.Create(buyer.ID, property.ID, date("2026-01-05"), date("2026-01-07"))
	require.NoError(t, err)

	err = propertySvc.Delete(intruder.ID, property.ID)
	assert.Equal(t, http.StatusForbidden, appStatus(t, err))

	require.NoError(t, propertySvc.Delete(seller.ID, property.ID))

	var properties, locations, reservations int64
	db.Model(&models.Property{}).Count(&properties)
	db.Model(&models.Location{}).Count(&locations)
	db.Model(&models.Reservation{}).Count(&reservations)
	assert.Zero(t, properties)
	assert.Zero(t, locations)
	assert.Zero(t, reservations)
}
