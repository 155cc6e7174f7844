package repository

import (
	"errors"

	"garage-management-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	return r.db.Create(vehicle).Error
}

func (r *VehicleRepository) GetByID(id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Preload("Customer").First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// List returns all vehicles, or only those of one customer when customerID
// is non-nil.
func (r *VehicleRepository) List(customerID *uuid.UUID) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	query := r.db.Preload("Customer").Order("created_at DESC")
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	err := query.Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Save(vehicle).Error
}

func (r *VehicleRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
