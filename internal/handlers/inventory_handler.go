package handler

import (
	"net/http"

	"garage-management-backend/internal/models"
	"garage-management-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	repo *repository.InventoryRepository
}

func NewInventoryHandler(repo *repository.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{repo: repo}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var payload struct {
		Name        string  `json:"name"`
		PartNumber  string  `json:"part_number"`
		Brand       string  `json:"brand"`
		Category    string  `json:"category"`
		Location    string  `json:"location"`
		UnitPrice   float64 `json:"unit_price"`
		Quantity    int     `json:"quantity"`
		MinQuantity int     `json:"min_quantity"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Name == "" || payload.UnitPrice < 0 || payload.Quantity < 0 || payload.MinQuantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required, price and quantities must be non-negative"})
		return
	}

	item := models.InventoryItem{
		ID:          uuid.New(),
		Name:        payload.Name,
		PartNumber:  payload.PartNumber,
		Brand:       payload.Brand,
		Category:    payload.Category,
		Location:    payload.Location,
		UnitPrice:   payload.UnitPrice,
		Quantity:    payload.Quantity,
		MinQuantity: payload.MinQuantity,
	}
	if err := h.repo.Create(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "item created", "item": item})
}

func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var payload struct {
		Name        *string  `json:"name"`
		PartNumber  *string  `json:"part_number"`
		Brand       *string  `json:"brand"`
		Category    *string  `json:"category"`
		Location    *string  `json:"location"`
		UnitPrice   *float64 `json:"unit_price"`
		MinQuantity *int     `json:"min_quantity"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.Name != nil {
		item.Name = *payload.Name
	}
	if payload.PartNumber != nil {
		item.PartNumber = *payload.PartNumber
	}
	if payload.Brand != nil {
		item.Brand = *payload.Brand
	}
	if payload.Category != nil {
		item.Category = *payload.Category
	}
	if payload.Location != nil {
		item.Location = *payload.Location
	}
	if payload.UnitPrice != nil {
		if *payload.UnitPrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unit price must be non-negative"})
			return
		}
		item.UnitPrice = *payload.UnitPrice
	}
	if payload.MinQuantity != nil {
		if *payload.MinQuantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min quantity must be non-negative"})
			return
		}
		item.MinQuantity = *payload.MinQuantity
	}

	if err := h.repo.Update(item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item updated", "item": item})
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.repo.LowStock()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Reserve decrements stock for a batch of items. Partial success is a normal
// outcome and both sides are reported.
func (h *InventoryHandler) Reserve(c *gin.Context) {
	var payload struct {
		Items []repository.ReservationRequest `json:"items"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(payload.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no items to reserve"})
		return
	}

	result, err := h.repo.Reserve(payload.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *InventoryHandler) Restock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	var payload struct {
		Delta  int    `json:"delta"`
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	quantity, err := h.repo.Restock(id, payload.Delta, payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stock adjusted", "quantity": quantity})
}

func (h *InventoryHandler) Adjustments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}
	rows, err := h.repo.Adjustments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}
