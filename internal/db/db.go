package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"hostel-booking-backend/config"
	"hostel-booking-backend/internal/model"
)

// Init opens the configured database, runs migrations and applies seed data.
func Init(cfg *config.DatabaseConfig, seed *config.SeedConfig) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	if seed != nil {
		if err := Seed(db, seed); err != nil {
			return nil, fmt.Errorf("seeding failed: %w", err)
		}
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Student{},
		&model.Room{},
		&model.Booking{},
		&model.PushSubscription{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}

// Seed inserts the configured accounts and rooms. Rows whose unique key
// already exists are skipped, so restarts never duplicate data.
func Seed(db *gorm.DB, seed *config.SeedConfig) error {
	if len(seed.Users) > 0 {
		users := make([]model.Student, 0, len(seed.Users))
		for _, u := range seed.Users {
			role := model.Role(u.Role)
			if !role.Valid() {
				log.Printf("Skipping seed user %q: invalid role %q", u.Email, u.Role)
				continue
			}
			users = append(users, model.Student{
				Name:     u.Name,
				Email:    u.Email,
				Password: u.Password,
				Role:     role,
			})
		}
		if len(users) > 0 {
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).Create(&users).Error; err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
	}

	if len(seed.Rooms) > 0 {
		rooms := make([]model.Room, 0, len(seed.Rooms))
		for _, r := range seed.Rooms {
			if r.Capacity < 1 || r.Available < 0 || r.Available > r.Capacity {
				log.Printf("Skipping seed room %q: capacity %d / available %d out of range", r.RoomNumber, r.Capacity, r.Available)
				continue
			}
			rooms = append(rooms, model.Room{
				RoomNumber: r.RoomNumber,
				Capacity:   r.Capacity,
				Available:  r.Available,
			})
		}
		if len(rooms) > 0 {
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "room_number"}},
				DoNothing: true,
			}).Create(&rooms).Error; err != nil {
				return fmt.Errorf("seed rooms: %w", err)
			}
		}
	}

	return nil
}

func openDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.DSN); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
		return sqlite.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
