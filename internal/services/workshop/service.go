package workshop

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"garage-management-backend/internal/models"
	"garage-management-backend/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrMissingReferences = errors.New("job card requires a customer and a vehicle")
	ErrInvalidStatus     = errors.New("invalid job card status")
	ErrInvalidTransition = errors.New("invalid job card status transition")
	ErrInvalidLine       = errors.New("invalid job card line")
)

// Forward-only lifecycle; cancellation is allowed until work completes.
var jobCardTransitions = map[string][]string{
	models.JobCardStatusPending:    {models.JobCardStatusInProgress, models.JobCardStatusCancelled},
	models.JobCardStatusInProgress: {models.JobCardStatusCompleted, models.JobCardStatusCancelled},
	models.JobCardStatusCompleted:  {},
	models.JobCardStatusCancelled:  {},
}

type Service struct {
	jobCardRepo   *repository.JobCardRepository
	inventoryRepo *repository.InventoryRepository
}

func NewService(jobCardRepo *repository.JobCardRepository, inventoryRepo *repository.InventoryRepository) *Service {
	return &Service{jobCardRepo: jobCardRepo, inventoryRepo: inventoryRepo}
}

type ItemInput struct {
	InventoryItemID *uuid.UUID `json:"inventory_item_id"`
	Name            string     `json:"name"`
	Quantity        int        `json:"quantity"`
	UnitPrice       *float64   `json:"unit_price"`
}

type LaborInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
	Cost        float64 `json:"cost"`
}

type CreateJobCardInput struct {
	CustomerID       uuid.UUID    `json:"customer_id"`
	VehicleID        uuid.UUID    `json:"vehicle_id"`
	StaffID          *uuid.UUID   `json:"staff_id"`
	IssueDescription string       `json:"issue_description"`
	Diagnosis        string       `json:"diagnosis"`
	Items            []ItemInput  `json:"items"`
	Labor            []LaborInput `json:"labor"`
}

// Create opens a new pending job card. Item prices default to the current
// inventory price when the line references stock and no price is given; the
// captured price then stays fixed for later invoicing.
func (s *Service) Create(input CreateJobCardInput) (*models.JobCard, error) {
	if input.CustomerID == uuid.Nil || input.VehicleID == uuid.Nil {
		return nil, ErrMissingReferences
	}

	cardID := uuid.New()
	card := &models.JobCard{
		ID:               cardID,
		CustomerID:       input.CustomerID,
		VehicleID:        input.VehicleID,
		StaffID:          input.StaffID,
		IssueDescription: input.IssueDescription,
		Diagnosis:        input.Diagnosis,
		Status:           models.JobCardStatusPending,
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %q quantity must be positive", ErrInvalidLine, item.Name)
		}
		price := 0.0
		name := item.Name
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		if item.InventoryItemID != nil {
			stock, err := s.inventoryRepo.GetByID(*item.InventoryItemID)
			if err != nil {
				return nil, err
			}
			if item.UnitPrice == nil {
				price = stock.UnitPrice
			}
			if name == "" {
				name = stock.Name
			}
		}
		card.Items = append(card.Items, models.JobCardItem{
			ID:              uuid.New(),
			JobCardID:       cardID,
			InventoryItemID: item.InventoryItemID,
			Name:            name,
			Quantity:        item.Quantity,
			UnitPrice:       price,
		})
	}

	for _, labor := range input.Labor {
		if labor.Hours < 0 || labor.Rate < 0 || labor.Cost < 0 {
			return nil, fmt.Errorf("%w: service %q has negative amounts", ErrInvalidLine, labor.Name)
		}
		card.Labor = append(card.Labor, models.JobCardLabor{
			ID:          uuid.New(),
			JobCardID:   cardID,
			Name:        labor.Name,
			Description: labor.Description,
			Hours:       labor.Hours,
			Rate:        labor.Rate,
			Cost:        labor.Cost,
		})
	}

	if err := s.jobCardRepo.Create(card); err != nil {
		return nil, err
	}
	return s.jobCardRepo.GetByID(cardID)
}

func normalizeStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.JobCardStatusPending:
		return models.JobCardStatusPending, nil
	case models.JobCardStatusInProgress, "in_progress":
		return models.JobCardStatusInProgress, nil
	case models.JobCardStatusCompleted:
		return models.JobCardStatusCompleted, nil
	case models.JobCardStatusCancelled:
		return models.JobCardStatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// UpdateStatus advances the card's lifecycle. Completion stamps CompletedAt,
// which gates invoice generation.
func (s *Service) UpdateStatus(id uuid.UUID, newStatus string) (*models.JobCard, error) {
	status, err := normalizeStatus(newStatus)
	if err != nil {
		return nil, err
	}

	card, err := s.jobCardRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range jobCardTransitions[card.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, card.Status, status)
	}

	patch := map[string]interface{}{"status": status}
	if status == models.JobCardStatusCompleted {
		patch["completed_at"] = time.Now()
	}

	affected, err := s.jobCardRepo.UpdateStatus(id, card.Status, patch)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: job card %s changed concurrently", ErrInvalidTransition, id)
	}

	return s.jobCardRepo.GetByID(id)
}

func (s *Service) Get(id uuid.UUID) (*models.JobCard, error) {
	return s.jobCardRepo.GetByID(id)
}

func (s *Service) List(status string) ([]models.JobCard, error) {
	if status != "" && status != "all" {
		normalized, err := normalizeStatus(status)
		if err != nil {
			return nil, err
		}
		status = normalized
	}
	return s.jobCardRepo.List(status)
}

// UpdateDiagnosis lets staff record findings while work is open.
func (s *Service) UpdateDiagnosis(id uuid.UUID, diagnosis string) (*models.JobCard, error) {
	card, err := s.jobCardRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if card.Status == models.JobCardStatusCompleted || card.Status == models.JobCardStatusCancelled {
		return nil, fmt.Errorf("%w: card is %s", ErrInvalidTransition, card.Status)
	}
	err = s.jobCardRepo.DB().Model(&models.JobCard{}).
		Where("id = ?", id).
		Update("diagnosis", diagnosis).Error
	if err != nil {
		return nil, err
	}
	return s.jobCardRepo.GetByID(id)
}

func (s *Service) Delete(id uuid.UUID) error {
	return s.jobCardRepo.Delete(id)
}
