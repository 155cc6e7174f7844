package models

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	PartNumber  string    `gorm:"index"`
	Brand       string
	Category    string `gorm:"index"`
	Location    string
	UnitPrice   float64
	Quantity    int `gorm:"not null;default:0"`
	MinQuantity int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockAdjustment records every manual restock or correction so the ledger
// stays auditable. Reservation decrements are captured on the invoice itself.
type StockAdjustment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;index"`
	Delta           int
	OldQuantity     int
	NewQuantity     int
	Reason          string
	CreatedAt       time.Time
}
