package models

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	Customer     *Customer
	Make         string
	Model        string
	Year         int
	LicensePlate string `gorm:"index"`
	VIN          string
	Color        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
