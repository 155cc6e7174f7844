package main

import (
	"log"
	"time"

	"garage-management-backend/internal/config"
	"garage-management-backend/internal/models"
	"garage-management-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()
	db := config.InitDB(cfg)

	db.AutoMigrate(
		&models.Customer{},
		&models.Vehicle{},
		&models.Staff{},
		&models.InventoryItem{},
		&models.StockAdjustment{},
		&models.JobCard{},
		&models.JobCardItem{},
		&models.JobCardLabor{},
		&models.Invoice{},
		&models.InvoicePart{},
		&models.InvoiceLabor{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, cfg)

	r.Run(":" + cfg.Port)
}
