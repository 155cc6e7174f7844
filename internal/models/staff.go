package models

import (
	"time"

	"github.com/google/uuid"
)

type Staff struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	Role      string
	Phone     string
	Email     string
	Active    bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
