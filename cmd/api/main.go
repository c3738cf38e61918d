package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/opstrack/forms-go/internal/api/middleware"
	"github.com/opstrack/forms-go/internal/api/routes"
	"github.com/opstrack/forms-go/internal/config"
	"github.com/opstrack/forms-go/internal/config/db"
	"github.com/opstrack/forms-go/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	// Initialize MinIO file storage
	storage.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
