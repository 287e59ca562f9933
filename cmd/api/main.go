package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/api/middleware"
	"github.com/sunspire/solar-crm/internal/api/routes"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/config"
	"github.com/sunspire/solar-crm/internal/config/db"
	"github.com/sunspire/solar-crm/internal/domain/audit"
	"github.com/sunspire/solar-crm/internal/domain/catalog"
	"github.com/sunspire/solar-crm/internal/domain/complaint"
	"github.com/sunspire/solar-crm/internal/domain/installation"
	"github.com/sunspire/solar-crm/internal/domain/quotation"
	"github.com/sunspire/solar-crm/internal/domain/technician"
	"github.com/sunspire/solar-crm/internal/domain/ticket"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/pkg/objectstore"
)

// @title Solar CRM API
// @version 1.0
// @description Backend API for the solar energy business management platform.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()
	objectstore.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&technician.Technician{},
		&catalog.Service{},
		&quotation.Quotation{},
		&installation.Installation{},
		&complaint.Complaint{},
		&ticket.Ticket{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed the service catalog when a seed file is configured
	if config.SeedFile != "" {
		catalogSvc := application.NewCatalogService(repository.NewRepositories(db.DB))
		if err := catalogSvc.SeedFromFile(config.SeedFile); err != nil {
			log.Printf("Warning: failed to seed service catalog: %v", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
