package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"garage-management-backend/internal/config"
	handler "garage-management-backend/internal/handlers"
	"garage-management-backend/internal/repository"
	"garage-management-backend/internal/services/billing"
	"garage-management-backend/internal/services/workshop"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	jobCardRepo := repository.NewJobCardRepository(db)

	billingService := billing.NewService(invoiceRepo, inventoryRepo, jobCardRepo, cfg.TaxRate)
	workshopService := workshop.NewService(jobCardRepo, inventoryRepo)

	customerHandler := handler.NewCustomerHandler(customerRepo)
	vehicleHandler := handler.NewVehicleHandler(vehicleRepo)
	staffHandler := handler.NewStaffHandler(staffRepo)
	inventoryHandler := handler.NewInventoryHandler(inventoryRepo)
	invoiceHandler := handler.NewInvoiceHandler(billingService)
	jobCardHandler := handler.NewJobCardHandler(workshopService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	customers := api.Group("/customers")
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	vehicles := api.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.Create)
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.Get)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	staff := api.Group("/staff")
	{
		staff.POST("", staffHandler.Create)
		staff.GET("", staffHandler.List)
		staff.GET("/:id", staffHandler.Get)
		staff.PUT("/:id", staffHandler.Update)
		staff.DELETE("/:id", staffHandler.Delete)
	}

	inventory := api.Group("/inventory")
	{
		inventory.POST("", inventoryHandler.Create)
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/low-stock", inventoryHandler.LowStock)
		inventory.POST("/reserve", inventoryHandler.Reserve)
		inventory.GET("/:id", inventoryHandler.Get)
		inventory.PUT("/:id", inventoryHandler.Update)
		inventory.DELETE("/:id", inventoryHandler.Delete)
		inventory.POST("/:id/restock", inventoryHandler.Restock)
		inventory.GET("/:id/adjustments", inventoryHandler.Adjustments)
	}

	jobCards := api.Group("/job-cards")
	{
		jobCards.POST("", jobCardHandler.Create)
		jobCards.GET("", jobCardHandler.List)
		jobCards.GET("/:id", jobCardHandler.Get)
		jobCards.POST("/:id/status", jobCardHandler.UpdateStatus)
		jobCards.POST("/:id/diagnosis", jobCardHandler.UpdateDiagnosis)
		jobCards.GET("/:id/invoiceable", invoiceHandler.Invoiceable)
		jobCards.DELETE("/:id", jobCardHandler.Delete)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.List)
		invoices.POST("/mark-overdue", invoiceHandler.MarkOverdue)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("/:id/status", invoiceHandler.UpdateStatus)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}
}
