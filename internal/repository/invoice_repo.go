package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"garage-management-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

func (r *InvoiceRepository) CreateTx(tx *gorm.DB, invoice *models.Invoice) error {
	return tx.Create(invoice).Error
}

// GetByID fetches a single invoice joined with its customer, job card and
// vehicle context. Missing relations come back nil, never as an error.
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.
		Preload("Customer").
		Preload("JobCard").
		Preload("JobCard.Vehicle").
		Preload("Parts").
		Preload("Labor").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List returns invoices with optional status filtering, newest first.
func (r *InvoiceRepository) List(status string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	query := r.db.
		Preload("Customer").
		Preload("JobCard").
		Preload("JobCard.Vehicle").
		Preload("Parts").
		Preload("Labor").
		Order("created_at DESC")
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&invoices).Error
	return invoices, err
}

func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	res := r.db.Select("Parts", "Labor").Delete(&models.Invoice{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// NextNumberTx allocates the next invoice number inside the caller's
// transaction. Each year runs its own sequence, continued from the highest
// number already issued for that year, so deleting an invoice never frees
// its number for reuse. The unique index on invoice_number backstops
// concurrent allocations.
func (r *InvoiceRepository) NextNumberTx(tx *gorm.DB) (string, error) {
	prefix := fmt.Sprintf("INV-%d-", time.Now().Year())

	// Suffixes are zero-padded to fixed width, so string MAX orders them
	// numerically.
	var last sql.NullString
	err := tx.Model(&models.Invoice{}).
		Where("invoice_number LIKE ?", prefix+"%").
		Select("MAX(invoice_number)").
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if last.Valid && last.String != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(last.String, prefix))
		if err != nil {
			return "", fmt.Errorf("malformed invoice number %q", last.String)
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%06d", prefix, seq), nil
}

// UpdateStatusTx transitions an invoice from a known prior status. The WHERE
// on the prior status makes the transition a compare-and-swap: zero rows
// affected means someone got there first.
func (r *InvoiceRepository) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, fromStatus string, patch map[string]interface{}) (int64, error) {
	res := tx.Model(&models.Invoice{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(patch)
	return res.RowsAffected, res.Error
}

// MarkOverdue flips every past-due pending invoice to overdue in one bulk
// update and returns the number of rows touched.
func (r *InvoiceRepository) MarkOverdue(now time.Time) (int64, error) {
	res := r.db.Model(&models.Invoice{}).
		Where("status = ? AND due_date < ?", models.InvoiceStatusPending, now).
		Update("status", models.InvoiceStatusOverdue)
	return res.RowsAffected, res.Error
}
