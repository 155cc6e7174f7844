package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

type Invoice struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNumber  string    `gorm:"uniqueIndex"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index"`
	Customer       *Customer
	JobCardID      *uuid.UUID `gorm:"type:uuid;index"`
	JobCard        *JobCard
	Parts          []InvoicePart  `gorm:"constraint:OnDelete:CASCADE"`
	Labor          []InvoiceLabor `gorm:"constraint:OnDelete:CASCADE"`
	Subtotal       float64
	TaxRate        float64
	TaxAmount      float64
	GrandTotal     float64
	Status         string `gorm:"index"`
	DueDate        time.Time
	PaidAt         *time.Time
	PaymentMethod  string
	Notes          string
	DamageImageURL string
	// Per-item outcome of the inventory reservation taken at creation time.
	ReservationReport datatypes.JSON
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type InvoicePart struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	InvoiceID       uuid.UUID  `gorm:"type:uuid;index"`
	InventoryItemID *uuid.UUID `gorm:"type:uuid"`
	Name            string
	Quantity        int
	UnitPrice       float64
	LineTotal       float64
}

// InvoiceLabor is a billed service line. Either Hours x Rate or a flat Cost;
// LineTotal holds the resolved amount.
type InvoiceLabor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Hours       float64
	Rate        float64
	Cost        float64
	LineTotal   float64
}
