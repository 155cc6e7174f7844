package handler

import (
	"net/http"

	"garage-management-backend/internal/models"
	"garage-management-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StaffHandler struct {
	repo *repository.StaffRepository
}

func NewStaffHandler(repo *repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

func (h *StaffHandler) Create(c *gin.Context) {
	var payload struct {
		Name  string `json:"name"`
		Role  string `json:"role"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	staff := models.Staff{
		ID:     uuid.New(),
		Name:   payload.Name,
		Role:   payload.Role,
		Phone:  payload.Phone,
		Email:  payload.Email,
		Active: true,
	}
	if err := h.repo.Create(&staff); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "staff member created", "staff": staff})
}

func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.repo.List(c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": staff})
}

func (h *StaffHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid staff ID"})
		return
	}
	staff, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *StaffHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid staff ID"})
		return
	}
	staff, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var payload struct {
		Name   *string `json:"name"`
		Role   *string `json:"role"`
		Phone  *string `json:"phone"`
		Email  *string `json:"email"`
		Active *bool   `json:"active"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.Name != nil {
		staff.Name = *payload.Name
	}
	if payload.Role != nil {
		staff.Role = *payload.Role
	}
	if payload.Phone != nil {
		staff.Phone = *payload.Phone
	}
	if payload.Email != nil {
		staff.Email = *payload.Email
	}
	if payload.Active != nil {
		staff.Active = *payload.Active
	}

	if err := h.repo.Update(staff); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member updated", "staff": staff})
}

func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid staff ID"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deleted"})
}
