package repository

import (
	"errors"

	"garage-management-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrJobCardNotFound = errors.New("job card not found")

type JobCardRepository struct {
	db *gorm.DB
}

func NewJobCardRepository(db *gorm.DB) *JobCardRepository {
	return &JobCardRepository{db: db}
}

func (r *JobCardRepository) DB() *gorm.DB {
	return r.db
}

func (r *JobCardRepository) Create(card *models.JobCard) error {
	return r.db.Create(card).Error
}

func (r *JobCardRepository) GetByID(id uuid.UUID) (*models.JobCard, error) {
	var card models.JobCard
	err := r.db.
		Preload("Customer").
		Preload("Vehicle").
		Preload("Staff").
		Preload("Items").
		Preload("Labor").
		First(&card, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *JobCardRepository) List(status string) ([]models.JobCard, error) {
	var cards []models.JobCard
	query := r.db.
		Preload("Customer").
		Preload("Vehicle").
		Preload("Staff").
		Preload("Items").
		Preload("Labor").
		Order("created_at DESC")
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&cards).Error
	return cards, err
}

// UpdateStatus is a compare-and-swap on the prior status so two staff
// members cannot double-process the same card.
func (r *JobCardRepository) UpdateStatus(id uuid.UUID, fromStatus string, patch map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.JobCard{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(patch)
	return res.RowsAffected, res.Error
}

func (r *JobCardRepository) Delete(id uuid.UUID) error {
	res := r.db.Select("Items", "Labor").Delete(&models.JobCard{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobCardNotFound
	}
	return nil
}
