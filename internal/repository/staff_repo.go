package repository

import (
	"errors"

	"garage-management-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStaffNotFound = errors.New("staff member not found")

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(staff *models.Staff) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	return r.db.Create(staff).Error
}

func (r *StaffRepository) GetByID(id uuid.UUID) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.First(&staff, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepository) List(activeOnly bool) ([]models.Staff, error) {
	var staff []models.Staff
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&staff).Error
	return staff, err
}

func (r *StaffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}

func (r *StaffRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Staff{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}
