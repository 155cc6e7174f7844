package repository

import (
	"errors"
	"strings"
	"time"

	"garage-management-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrNegativeStock     = errors.New("stock cannot go negative")
	ErrInvalidAdjustment = errors.New("adjustment delta cannot be zero")
)

// Reservation failure reasons reported per item.
const (
	ReserveReasonInsufficient = "insufficient stock"
	ReserveReasonNotFound     = "not found"
)

type ReservationRequest struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

type ReservedItem struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Remaining int       `json:"remaining"`
}

type FailedReservation struct {
	ItemID    uuid.UUID `json:"item_id"`
	Reason    string    `json:"reason"`
	Available int       `json:"available"`
}

type ReservationResult struct {
	Succeeded []ReservedItem      `json:"succeeded"`
	Failed    []FailedReservation `json:"failed"`
}

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) DB() *gorm.DB {
	return r.db
}

func (r *InventoryRepository) Create(item *models.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.db.Create(item).Error
}

func (r *InventoryRepository) GetByID(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns items, optionally filtered by a name/part-number/category search.
func (r *InventoryRepository) List(search string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	query := r.db.Order("name ASC")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(part_number) LIKE ? OR LOWER(category) LIKE ?",
			like, like, like,
		)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *InventoryRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *InventoryRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// LowStock returns items at or below their minimum-quantity threshold.
func (r *InventoryRepository) LowStock() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Where("quantity <= min_quantity").Order("quantity ASC").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) GetQuantity(id uuid.UUID) (int, error) {
	item, err := r.GetByID(id)
	if err != nil {
		return 0, err
	}
	return item.Quantity, nil
}

// Reserve decrements stock for each requested item independently. Items are
// not an all-or-nothing batch: each one either succeeds or is reported in
// Failed with a reason, and callers must handle partial success.
//
// The decrement is a single conditional UPDATE (quantity >= requested), so a
// concurrent reservation can never drive stock below zero.
func (r *InventoryRepository) Reserve(requests []ReservationRequest) (ReservationResult, error) {
	return r.ReserveTx(r.db, requests)
}

// ReserveTx is Reserve running against a caller-supplied transaction, so
// invoice creation can make the whole batch all-or-nothing by rolling back.
func (r *InventoryRepository) ReserveTx(tx *gorm.DB, requests []ReservationRequest) (ReservationResult, error) {
	var result ReservationResult

	for _, req := range requests {
		if req.Quantity <= 0 {
			result.Failed = append(result.Failed, FailedReservation{
				ItemID: req.ItemID,
				Reason: "quantity must be positive",
			})
			continue
		}

		res := tx.Model(&models.InventoryItem{}).
			Where("id = ? AND quantity >= ?", req.ItemID, req.Quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", req.Quantity))
		if res.Error != nil {
			// Persistence failure is hard for this item only.
			result.Failed = append(result.Failed, FailedReservation{
				ItemID: req.ItemID,
				Reason: res.Error.Error(),
			})
			continue
		}

		if res.RowsAffected == 0 {
			var item models.InventoryItem
			err := tx.First(&item, "id = ?", req.ItemID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Failed = append(result.Failed, FailedReservation{
					ItemID: req.ItemID,
					Reason: ReserveReasonNotFound,
				})
			} else if err != nil {
				result.Failed = append(result.Failed, FailedReservation{
					ItemID: req.ItemID,
					Reason: err.Error(),
				})
			} else {
				result.Failed = append(result.Failed, FailedReservation{
					ItemID:    req.ItemID,
					Reason:    ReserveReasonInsufficient,
					Available: item.Quantity,
				})
			}
			continue
		}

		var item models.InventoryItem
		if err := tx.First(&item, "id = ?", req.ItemID).Error; err != nil {
			result.Failed = append(result.Failed, FailedReservation{
				ItemID: req.ItemID,
				Reason: err.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, ReservedItem{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  req.Quantity,
			Remaining: item.Quantity,
		})
	}

	return result, nil
}

// Restock applies a positive or negative delta and records a StockAdjustment
// row. A delta that would take the quantity negative is rejected and leaves
// the row untouched.
func (r *InventoryRepository) Restock(id uuid.UUID, delta int, reason string) (int, error) {
	if delta == 0 {
		return 0, ErrInvalidAdjustment
	}

	var newQuantity int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item models.InventoryItem
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		query := tx.Model(&models.InventoryItem{}).Where("id = ?", id)
		if delta < 0 {
			query = query.Where("quantity >= ?", -delta)
		}
		res := query.UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNegativeStock
		}

		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		newQuantity = item.Quantity

		return tx.Create(&models.StockAdjustment{
			ID:              uuid.New(),
			InventoryItemID: id,
			Delta:           delta,
			OldQuantity:     newQuantity - delta,
			NewQuantity:     newQuantity,
			Reason:          reason,
			CreatedAt:       time.Now(),
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}

func (r *InventoryRepository) Adjustments(itemID uuid.UUID) ([]models.StockAdjustment, error) {
	var rows []models.StockAdjustment
	err := r.db.Where("inventory_item_id = ?", itemID).Order("created_at DESC").Find(&rows).Error
	return rows, err
}
