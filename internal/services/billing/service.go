package billing

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"garage-management-backend/internal/models"
	"garage-management-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyInvoice      = errors.New("invoice needs at least one part or service line")
	ErrCustomerRequired  = errors.New("invoice requires a customer")
	ErrInvalidStatus     = errors.New("invalid invoice status")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
	ErrInvalidLine       = errors.New("invalid invoice line")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ReservationError carries the per-item failures that aborted an invoice.
type ReservationError struct {
	Failed []repository.FailedReservation
}

func (e *ReservationError) Error() string {
	reasons := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		reasons = append(reasons, fmt.Sprintf("%s: %s", f.ItemID, f.Reason))
	}
	return "inventory reservation failed: " + strings.Join(reasons, "; ")
}

func (e *ReservationError) Unwrap() error {
	return ErrInsufficientStock
}

// Legal status transitions. Paid is terminal.
var invoiceTransitions = map[string][]string{
	models.InvoiceStatusPending: {models.InvoiceStatusPaid, models.InvoiceStatusOverdue},
	models.InvoiceStatusOverdue: {models.InvoiceStatusPaid},
	models.InvoiceStatusPaid:    {},
}

type Service struct {
	invoiceRepo   *repository.InvoiceRepository
	inventoryRepo *repository.InventoryRepository
	jobCardRepo   *repository.JobCardRepository
	db            *gorm.DB
	taxRate       float64
}

func NewService(
	invoiceRepo *repository.InvoiceRepository,
	inventoryRepo *repository.InventoryRepository,
	jobCardRepo *repository.JobCardRepository,
	taxRate float64,
) *Service {
	return &Service{
		invoiceRepo:   invoiceRepo,
		inventoryRepo: inventoryRepo,
		jobCardRepo:   jobCardRepo,
		db:            invoiceRepo.DB(),
		taxRate:       taxRate,
	}
}

func (s *Service) TaxRate() float64 {
	return s.taxRate
}

type CreateInvoiceInput struct {
	CustomerID     uuid.UUID    `json:"customer_id"`
	JobCardID      *uuid.UUID   `json:"job_card_id"`
	Parts          []PartInput  `json:"parts"`
	Labor          []LaborInput `json:"labor"`
	Status         string       `json:"status"`
	PaymentMethod  string       `json:"payment_method"`
	DueDate        time.Time    `json:"due_date"`
	Notes          string       `json:"notes"`
	DamageImageURL string       `json:"damage_image_url"`
}

// normalizeStatus maps the legacy "unpaid" spelling onto pending and
// validates the literal against the canonical set.
func normalizeStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "unpaid", models.InvoiceStatusPending:
		return models.InvoiceStatusPending, nil
	case models.InvoiceStatusPaid:
		return models.InvoiceStatusPaid, nil
	case models.InvoiceStatusOverdue:
		return models.InvoiceStatusOverdue, nil
	default:
		return "", ErrInvalidStatus
	}
}

func validateLines(parts []PartInput, labor []LaborInput) error {
	if len(parts) == 0 && len(labor) == 0 {
		return ErrEmptyInvoice
	}
	for _, p := range parts {
		if p.Quantity <= 0 {
			return fmt.Errorf("%w: part %q quantity must be positive", ErrInvalidLine, p.Name)
		}
		if p.UnitPrice < 0 {
			return fmt.Errorf("%w: part %q has negative unit price", ErrInvalidLine, p.Name)
		}
	}
	for _, l := range labor {
		if l.FlatCost < 0 || l.Hours < 0 || l.Rate < 0 {
			return fmt.Errorf("%w: service %q has negative amounts", ErrInvalidLine, l.Name)
		}
		if l.FlatCost == 0 && l.Hours == 0 {
			return fmt.Errorf("%w: service %q needs hours or a flat cost", ErrInvalidLine, l.Name)
		}
	}
	return nil
}

// CreateInvoice reserves inventory and persists the invoice in a single
// transaction. The batch is all-or-nothing: if any inventory-linked part
// cannot be reserved the whole creation rolls back and the failures are
// reported, so an invoice can never claim parts that were not decremented.
func (s *Service) CreateInvoice(input CreateInvoiceInput) (*models.Invoice, error) {
	if input.CustomerID == uuid.Nil {
		return nil, ErrCustomerRequired
	}
	if err := validateLines(input.Parts, input.Labor); err != nil {
		return nil, err
	}
	status, err := normalizeStatus(input.Status)
	if err != nil {
		return nil, err
	}
	if input.JobCardID != nil {
		if _, err := s.jobCardRepo.GetByID(*input.JobCardID); err != nil {
			return nil, err
		}
	}

	invoiceID := uuid.New()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var requests []repository.ReservationRequest
		for _, p := range input.Parts {
			if p.InventoryItemID != nil {
				requests = append(requests, repository.ReservationRequest{
					ItemID:   *p.InventoryItemID,
					Quantity: p.Quantity,
				})
			}
		}

		var report []byte
		if len(requests) > 0 {
			result, err := s.inventoryRepo.ReserveTx(tx, requests)
			if err != nil {
				return err
			}
			if len(result.Failed) > 0 {
				return &ReservationError{Failed: result.Failed}
			}
			report, _ = json.Marshal(result.Succeeded)
		}

		totals := ComputeTotals(input.Parts, input.Labor, s.taxRate)

		number, err := s.invoiceRepo.NextNumberTx(tx)
		if err != nil {
			return err
		}

		invoice := &models.Invoice{
			ID:             invoiceID,
			InvoiceNumber:  number,
			CustomerID:     input.CustomerID,
			JobCardID:      input.JobCardID,
			Subtotal:       totals.Subtotal,
			TaxRate:        s.taxRate,
			TaxAmount:      totals.TaxAmount,
			GrandTotal:     totals.GrandTotal,
			Status:         status,
			DueDate:        input.DueDate,
			Notes:          input.Notes,
			DamageImageURL: input.DamageImageURL,
		}
		if report != nil {
			invoice.ReservationReport = report
		}
		// Paid-at-creation gets the same payment stamp as the pending -> paid
		// transition.
		if status == models.InvoiceStatusPaid {
			now := time.Now()
			invoice.PaidAt = &now
			invoice.PaymentMethod = input.PaymentMethod
		}
		for _, p := range input.Parts {
			invoice.Parts = append(invoice.Parts, models.InvoicePart{
				ID:              uuid.New(),
				InvoiceID:       invoiceID,
				InventoryItemID: p.InventoryItemID,
				Name:            p.Name,
				Quantity:        p.Quantity,
				UnitPrice:       p.UnitPrice,
				LineTotal:       PartLineTotal(p).Round(2).InexactFloat64(),
			})
		}
		for _, l := range input.Labor {
			invoice.Labor = append(invoice.Labor, models.InvoiceLabor{
				ID:          uuid.New(),
				InvoiceID:   invoiceID,
				Name:        l.Name,
				Description: l.Description,
				Hours:       l.Hours,
				Rate:        l.Rate,
				Cost:        l.FlatCost,
				LineTotal:   LaborLineTotal(l).Round(2).InexactFloat64(),
			})
		}

		return s.invoiceRepo.CreateTx(tx, invoice)
	})
	if err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetByID(invoiceID)
}

// UpdateStatus applies one state-machine step. Marking paid stamps the
// payment date and method; inventory is untouched since it was decremented
// at creation.
func (s *Service) UpdateStatus(id uuid.UUID, newStatus, paymentMethod string) (*models.Invoice, error) {
	status, err := normalizeStatus(newStatus)
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range invoiceTransitions[invoice.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, invoice.Status, status)
	}

	patch := map[string]interface{}{"status": status}
	if status == models.InvoiceStatusPaid {
		patch["paid_at"] = time.Now()
		if paymentMethod != "" {
			patch["payment_method"] = paymentMethod
		}
	}

	affected, err := s.invoiceRepo.UpdateStatusTx(s.db, id, invoice.Status, patch)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Lost the compare-and-swap to a concurrent transition.
		return nil, fmt.Errorf("%w: invoice %s changed concurrently", ErrInvalidTransition, id)
	}

	return s.invoiceRepo.GetByID(id)
}

// MarkOverdue runs the overdue sweep and returns how many invoices flipped.
func (s *Service) MarkOverdue() (int64, error) {
	count, err := s.invoiceRepo.MarkOverdue(time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("marked %d invoices overdue", count)
	}
	return count, nil
}

func (s *Service) GetInvoice(id uuid.UUID) (*models.Invoice, error) {
	return s.invoiceRepo.GetByID(id)
}

func (s *Service) ListInvoices(status string) ([]models.Invoice, error) {
	if status != "" && status != "all" {
		normalized, err := normalizeStatus(status)
		if err != nil {
			return nil, err
		}
		status = normalized
	}
	return s.invoiceRepo.List(status)
}

// DeleteInvoice removes a record entered in error. Stock is not restored;
// corrections to inventory go through an explicit restock.
func (s *Service) DeleteInvoice(id uuid.UUID) error {
	return s.invoiceRepo.Delete(id)
}
