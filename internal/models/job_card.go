package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobCardStatusPending    = "pending"
	JobCardStatusInProgress = "in-progress"
	JobCardStatusCompleted  = "completed"
	JobCardStatusCancelled  = "cancelled"
)

type JobCard struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	Customer         *Customer
	VehicleID        uuid.UUID `gorm:"type:uuid;index"`
	Vehicle          *Vehicle
	StaffID          *uuid.UUID `gorm:"type:uuid;index"`
	Staff            *Staff
	IssueDescription string
	Diagnosis        string
	Status           string         `gorm:"index"`
	Items            []JobCardItem  `gorm:"constraint:OnDelete:CASCADE"`
	Labor            []JobCardLabor `gorm:"constraint:OnDelete:CASCADE"`
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// JobCardItem is a part recorded against the job while work is in progress.
// Prices are captured at entry time so later inventory edits do not shift
// the invoice proposal.
type JobCardItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	JobCardID       uuid.UUID  `gorm:"type:uuid;index"`
	InventoryItemID *uuid.UUID `gorm:"type:uuid"`
	Name            string
	Quantity        int
	UnitPrice       float64
}

type JobCardLabor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobCardID   uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Hours       float64
	Rate        float64
	Cost        float64
}
