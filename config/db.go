package config

import (
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayhub-backend/models"
)

// Connect opens the MySQL database and applies migrations.
func Connect(cfg *Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      cfg.Env == "development",
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Property{},
		&models.Reservation{},
	)
}

// Seed ensures reference data exists: the admin account, the category list
// and, when SEED_DEMO is set, a small demo marketplace. Existing rows are
// never touched so the seed is safe to run repeatedly.
func Seed(db *gorm.DB, cfg *Config, logr zerolog.Logger) error {
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:     "Admin User",
			Email:    "admin@stayhub.local",
			Password: string(hash),
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		logr.Info().Str("email", admin.Email).Msg("default admin seeded")
	}

	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount == 0 {
		categories := []models.Category{
			{Name: "Apartment", Description: "Self-contained unit in a shared building"},
			{Name: "House", Description: "Whole house for your stay"},
			{Name: "Studio", Description: "Compact open-plan space"},
			{Name: "Villa", Description: "Upscale property, often with a pool"},
			{Name: "Cabin", Description: "Rustic getaway in nature"},
			{Name: "Loft", Description: "Open industrial-style space"},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		logr.Info().Int("count", len(categories)).Msg("categories seeded")
	}

	if cfg.SeedDemo {
		if err := seedDemo(db, logr); err != nil {
			return err
		}
	}
	return nil
}

func seedDemo(db *gorm.DB, logr zerolog.Logger) error {
	var propertyCount int64
	db.Model(&models.Property{}).Count(&propertyCount)
	if propertyCount > 0 {
		logr.Info().Msg("demo data already present, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	sellers := []models.User{
		{Name: "Mira Jovanovic", Email: "mira@stayhub.local", Password: string(hash), Role: models.RoleSeller},
		{Name: "Luka Petrov", Email: "luka@stayhub.local", Password: string(hash), Role: models.RoleSeller},
	}
	buyers := []models.User{
		{Name: "Ana Kovac", Email: "ana@stayhub.local", Password: string(hash), Role: models.RoleBuyer},
		{Name: "Marko Ilic", Email: "marko@stayhub.local", Password: string(hash), Role: models.RoleBuyer},
	}
	if err := db.Create(&sellers).Error; err != nil {
		return err
	}
	if err := db.Create(&buyers).Error; err != nil {
		return err
	}

	var categories []models.Category
	if err := db.Order("id ASC").Find(&categories).Error; err != nil {
		return err
	}
	if len(categories) == 0 {
		return nil
	}

	demo := []struct {
		name, description, image, address, city, price string
		rooms                                          int
		sellerIdx, categoryIdx                         int
	}{
		{"Old Town Apartment", "Bright two-bedroom apartment in the pedestrian zone", "https://images.stayhub.local/old-town.jpg", "Knez Mihailova 1", "Belgrade", "85.00", 2, 0, 0},
		{"Riverside Villa", "Spacious villa with a garden by the Danube", "https://images.stayhub.local/riverside.jpg", "Bulevar Mihajla Pupina 1", "Novi Sad", "220.00", 5, 0, 3 % len(categories)},
		{"City Loft", "Industrial loft near the main square", "https://images.stayhub.local/loft.jpg", "Trg slobode 1", "Novi Sad", "120.00", 1, 1, len(categories) - 1},
	}

	for _, d := range demo {
		loc := models.Location{Address: d.address, City: d.city}
		if err := db.Create(&loc).Error; err != nil {
			return err
		}
		price, err := decimal.NewFromString(d.price)
		if err != nil {
			return err
		}
		property := models.Property{
			Name:        d.name,
			Description: d.description,
			Image:       d.image,
			Price:       price,
			Rooms:       d.rooms,
			SellerID:    sellers[d.sellerIdx].ID,
			LocationID:  loc.ID,
			CategoryID:  categories[d.categoryIdx].ID,
		}
		if err := db.Create(&property).Error; err != nil {
			return err
		}

		start := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
		end := start.AddDate(0, 0, 3)
		reservation := models.Reservation{
			StartDate:  start,
			EndDate:    end,
			TotalPrice: price.Mul(decimal.NewFromInt(3)),
			Status:     models.ReservationPending,
			UserID:     buyers[0].ID,
			PropertyID: property.ID,
		}
		if err := db.Create(&reservation).Error; err != nil {
			return err
		}
	}

	logr.Info().Msg("demo marketplace seeded")
	return nil
}
