package handler

import (
	"net/http"

	"garage-management-backend/internal/services/workshop"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobCardHandler struct {
	service *workshop.Service
}

func NewJobCardHandler(service *workshop.Service) *JobCardHandler {
	return &JobCardHandler{service: service}
}

func (h *JobCardHandler) Create(c *gin.Context) {
	var payload struct {
		CustomerID       string                `json:"customer_id"`
		VehicleID        string                `json:"vehicle_id"`
		StaffID          string                `json:"staff_id"`
		IssueDescription string                `json:"issue_description"`
		Diagnosis        string                `json:"diagnosis"`
		Items            []workshop.ItemInput  `json:"items"`
		Labor            []workshop.LaborInput `json:"labor"`
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
	vehicleID, err := uuid.Parse(payload.VehicleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}

	input := workshop.CreateJobCardInput{
		CustomerID:       customerID,
		VehicleID:        vehicleID,
		IssueDescription: payload.IssueDescription,
		Diagnosis:        payload.Diagnosis,
		Items:            payload.Items,
		Labor:            payload.Labor,
	}
	if payload.StaffID != "" {
		staffID, err := uuid.Parse(payload.StaffID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid staff ID"})
			return
		}
		input.StaffID = &staffID
	}

	card, err := h.service.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "job card created", "job_card": card})
}

func (h *JobCardHandler) List(c *gin.Context) {
	cards, err := h.service.List(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cards})
}

func (h *JobCardHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job card ID"})
		return
	}
	card, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_card": card})
}

func (h *JobCardHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job card ID"})
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	card, err := h.service.UpdateStatus(id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job card status updated", "job_card": card})
}

func (h *JobCardHandler) UpdateDiagnosis(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job card ID"})
		return
	}

	var payload struct {
		Diagnosis string `json:"diagnosis"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	card, err := h.service.UpdateDiagnosis(id, payload.Diagnosis)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "diagnosis updated", "job_card": card})
}

func (h *JobCardHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job card ID"})
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job card deleted"})
}
