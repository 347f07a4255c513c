package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"khanhomstore/internal/config"
	"khanhomstore/internal/models"
)

// Open connects to postgres and makes sure the products table exists.
func Open(cfg config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(&models.Product{}); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Probe pings the database once and logs the result. Startup does not block
// on it; a dead database just means every request 500s until it comes back.
func Probe(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Println("DB probe error:", err)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		log.Println("DB connect error:", err)
		return
	}
	log.Println("DB connected")
}
