package handler

import (
	"errors"
	"log"
	"net/http"

	"garage-management-backend/internal/repository"
	"garage-management-backend/internal/services/billing"
	"garage-management-backend/internal/services/workshop"

	"github.com/gin-gonic/gin"
)

// respondError maps service/repository errors onto HTTP codes. Validation
// and transition failures are the caller's fault; unknown errors are logged
// and returned as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, repository.ErrInvoiceNotFound),
		errors.Is(err, repository.ErrCustomerNotFound),
		errors.Is(err, repository.ErrVehicleNotFound),
		errors.Is(err, repository.ErrStaffNotFound),
		errors.Is(err, repository.ErrJobCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, billing.ErrEmptyInvoice),
		errors.Is(err, billing.ErrCustomerRequired),
		errors.Is(err, billing.ErrInvalidStatus),
		errors.Is(err, billing.ErrInvalidLine),
		errors.Is(err, billing.ErrJobCardNotInvoiceable),
		errors.Is(err, workshop.ErrMissingReferences),
		errors.Is(err, workshop.ErrInvalidStatus),
		errors.Is(err, workshop.ErrInvalidLine),
		errors.Is(err, repository.ErrNegativeStock),
		errors.Is(err, repository.ErrInvalidAdjustment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, billing.ErrInvalidTransition),
		errors.Is(err, workshop.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, billing.ErrInsufficientStock):
		var resErr *billing.ReservationError
		if errors.As(err, &resErr) {
			c.JSON(http.StatusConflict, gin.H{"error": "insufficient stock", "failed_items": resErr.Failed})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Println("internal error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
