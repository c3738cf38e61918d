package db

import (
	"fmt"
	"log"

	"github.com/opstrack/forms-go/internal/config"
	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/internal/domain/submission"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := DB.AutoMigrate(
		&form.Form{},
		&form.FormField{},
		&submission.FormResponse{},
		&submission.FormResponseValue{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB injects an already-open connection. Used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
