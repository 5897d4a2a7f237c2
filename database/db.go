package database

import (
	"fmt"
	"os"

	"tourism-booking/database/seeders"
	"tourism-booking/logger"
	"tourism-booking/models/booking"
	"tourism-booking/models/catalog"
	"tourism-booking/models/log"
	"tourism-booking/models/restaurant"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	seeders.SeedCatalog(DB)

	return DB, nil
}

// autoMigrate runs auto migration for all models
func autoMigrate() error {
	// Stage 1: catalog and listing data the booking flow reads
	stage1Models := []interface{}{
		&catalog.Item{},
		&restaurant.Restaurant{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: bookings referencing stage 1 entities
	stage2Models := []interface{}{
		&booking.Booking{},
		&booking.TourBooking{},
		&booking.StatusEvent{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: logging
	if err := DB.AutoMigrate(&log.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &log.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_catalog_items_status ON catalog_items(status)").Error; err != nil {
		return fmt.Errorf("failed to create catalog status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_restaurants_status ON restaurants(status)").Error; err != nil {
		return fmt.Errorf("failed to create restaurant status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_medical_bookings_created_at ON medical_bookings(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create medical booking created_at index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_tour_bookings_created_at ON tour_bookings(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create tour booking created_at index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
