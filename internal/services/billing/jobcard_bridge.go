package billing

import (
	"errors"

	"garage-management-backend/internal/models"

	"github.com/google/uuid"
)

var ErrJobCardNotInvoiceable = errors.New("job card is not completed")

// InvoiceableData is the default invoice proposal built from a completed job
// card. The caller may drop individual candidate lines before submitting;
// totals here cover the full proposal only.
type InvoiceableData struct {
	JobCard  *models.JobCard  `json:"job_card"`
	Customer *models.Customer `json:"customer"`
	Vehicle  *models.Vehicle  `json:"vehicle"`
	Parts    []PartInput      `json:"parts"`
	Labor    []LaborInput     `json:"labor"`
	Totals   Totals           `json:"totals"`
}

// InvoiceableData maps a completed job card's recorded items and services to
// candidate invoice lines with precomputed totals.
func (s *Service) InvoiceableData(jobCardID uuid.UUID) (*InvoiceableData, error) {
	card, err := s.jobCardRepo.GetByID(jobCardID)
	if err != nil {
		return nil, err
	}
	if card.Status != models.JobCardStatusCompleted {
		return nil, ErrJobCardNotInvoiceable
	}

	data := &InvoiceableData{
		JobCard:  card,
		Customer: card.Customer,
		Vehicle:  card.Vehicle,
	}
	for _, item := range card.Items {
		data.Parts = append(data.Parts, PartInput{
			InventoryItemID: item.InventoryItemID,
			Name:            item.Name,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
		})
	}
	for _, labor := range card.Labor {
		data.Labor = append(data.Labor, LaborInput{
			Name:        labor.Name,
			Description: labor.Description,
			Hours:       labor.Hours,
			Rate:        labor.Rate,
			FlatCost:    labor.Cost,
		})
	}

	data.Totals = ComputeTotals(data.Parts, data.Labor, s.taxRate)
	return data, nil
}
