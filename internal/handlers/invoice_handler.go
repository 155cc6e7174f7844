package handler

import (
	"net/http"
	"time"

	"garage-management-backend/internal/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	service *billing.Service
}

func NewInvoiceHandler(service *billing.Service) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		CustomerID     string               `json:"customer_id"`
		JobCardID      string               `json:"job_card_id"`
		Parts          []billing.PartInput  `json:"parts"`
		Labor          []billing.LaborInput `json:"labor"`
		Status         string               `json:"status"`
		PaymentMethod  string               `json:"payment_method"`
		DueDate        string               `json:"due_date"` // "2006-01-02"
		Notes          string               `json:"notes"`
		DamageImageURL string               `json:"damage_image_url"`
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

	input := billing.CreateInvoiceInput{
		CustomerID:     customerID,
		Parts:          payload.Parts,
		Labor:          payload.Labor,
		Status:         payload.Status,
		PaymentMethod:  payload.PaymentMethod,
		Notes:          payload.Notes,
		DamageImageURL: payload.DamageImageURL,
	}

	if payload.JobCardID != "" {
		jobCardID, err := uuid.Parse(payload.JobCardID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job card ID"})
			return
		}
		input.JobCardID = &jobCardID
	}

	if payload.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", payload.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due date format, expected yyyy-mm-dd"})
			return
		}
		input.DueDate = dueDate
	} else {
		input.DueDate = time.Now().AddDate(0, 0, 30)
	}

	invoice, err := h.service.CreateInvoice(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "invoice created", "invoice": invoice})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.service.ListInvoices(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": invoices})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	invoice, err := h.service.GetInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var payload struct {
		Status        string `json:"status"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	invoice, err := h.service.UpdateStatus(id, payload.Status, payload.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice status updated", "invoice": invoice})
}

func (h *InvoiceHandler) MarkOverdue(c *gin.Context) {
	count, err := h.service.MarkOverdue()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "overdue sweep completed", "invoices_updated": count})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	if err := h.service.DeleteInvoice(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

// Invoiceable returns the default invoice proposal for a completed job card.
func (h *InvoiceHandler) Invoiceable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job card ID"})
		return
	}
	data, err := h.service.InvoiceableData(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
