package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stayhub-backend/config"
	"stayhub-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Description: name + " description"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createProperty(t *testing.T, db *gorm.DB, seller models.User, category models.Category, name, city, price string, rooms int) models.Property {
	t.Helper()
	location := models.Location{Address: "1 Main St", City: city}
	require.NoError(t, db.Create(&location).Error)

	property := models.Property{
		Name:        name,
		Description: "a test property with enough description",
		Image:       "https://example.com/p.jpg",
		Price:       decimal.RequireFromString(price),
		Rooms:       rooms,
		SellerID:    seller.ID,
		LocationID:  location.ID,
		CategoryID:  category.ID,
	}
	require.NoError(t, db.Create(&property).Error)
	return property
}
