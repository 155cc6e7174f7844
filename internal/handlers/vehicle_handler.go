package handler

import (
	"net/http"

	"garage-management-backend/internal/models"
	"garage-management-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	repo *repository.VehicleRepository
}

func NewVehicleHandler(repo *repository.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{repo: repo}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var payload struct {
		CustomerID   string `json:"customer_id"`
		Make         string `json:"make"`
		Model        string `json:"model"`
		Year         int    `json:"year"`
		LicensePlate string `json:"license_plate"`
		VIN          string `json:"vin"`
		Color        string `json:"color"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	customerID, err := uuid.Parse(payload.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}
	if payload.Make == "" || payload.Model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "make and model are required"})
		return
	}

	vehicle := models.Vehicle{
		ID:           uuid.New(),
		CustomerID:   customerID,
		Make:         payload.Make,
		Model:        payload.Model,
		Year:         payload.Year,
		LicensePlate: payload.LicensePlate,
		VIN:          payload.VIN,
		Color:        payload.Color,
	}
	if err := h.repo.Create(&vehicle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "vehicle created", "vehicle": vehicle})
}

func (h *VehicleHandler) List(c *gin.Context) {
	var customerID *uuid.UUID
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
			return
		}
		customerID = &id
	}
	vehicles, err := h.repo.List(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": vehicles})
}

func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}
	vehicle, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}
	vehicle, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var payload struct {
		Make         *string `json:"make"`
		Model        *string `json:"model"`
		Year         *int    `json:"year"`
		LicensePlate *string `json:"license_plate"`
		VIN          *string `json:"vin"`
		Color        *string `json:"color"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.Make != nil {
		vehicle.Make = *payload.Make
	}
	if payload.Model != nil {
		vehicle.Model = *payload.Model
	}
	if payload.Year != nil {
		vehicle.Year = *payload.Year
	}
	if payload.LicensePlate != nil {
		vehicle.LicensePlate = *payload.LicensePlate
	}
	if payload.VIN != nil {
		vehicle.VIN = *payload.VIN
	}
	if payload.Color != nil {
		vehicle.Color = *payload.Color
	}

	if err := h.repo.Update(vehicle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle updated", "vehicle": vehicle})
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
