package repository

import (
	"errors"
	"fmt"
	"testing"

	"garage-management-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInventoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.InventoryItem{}, &models.StockAdjustment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name string, quantity int) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		ID:        uuid.New(),
		Name:      name,
		UnitPrice: 100,
		Quantity:  quantity,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func TestReservePartialSuccess(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewInventoryRepository(db)

	itemA := seedItem(t, db, "Air filter", 5)
	itemB := seedItem(t, db, "Spark plug", 3)

	result, err := repo.Reserve([]ReservationRequest{
		{ItemID: itemA.ID, Quantity: 2},
		{ItemID: itemB.ID, Quantity: 10},
	})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if len(result.Succeeded) != 1 || result.Succeeded[0].ItemID != itemA.ID {
		t.Fatalf("expected only item A to succeed, got %+v", result.Succeeded)
	}
	if result.Succeeded[0].Remaining != 3 {
		t.Errorf("item A remaining = %d, want 3", result.Succeeded[0].Remaining)
	}
	if len(result.Failed) != 1 || result.Failed[0].ItemID != itemB.ID {
		t.Fatalf("expected only item B to fail, got %+v", result.Failed)
	}
	if result.Failed[0].Reason != ReserveReasonInsufficient {
		t.Errorf("item B reason = %q, want %q", result.Failed[0].Reason, ReserveReasonInsufficient)
	}
	if result.Failed[0].Available != 3 {
		t.Errorf("item B available = %d, want 3", result.Failed[0].Available)
	}

	qtyA, _ := repo.GetQuantity(itemA.ID)
	qtyB, _ := repo.GetQuantity(itemB.ID)
	if qtyA != 3 {
		t.Errorf("stored quantity A = %d, want 3", qtyA)
	}
	if qtyB != 3 {
		t.Errorf("stored quantity B = %d, want 3 (unchanged)", qtyB)
	}
}

func TestReserveInsufficientLeavesStockUnchanged(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewInventoryRepository(db)

	item := seedItem(t, db, "Timing belt", 4)

	result, err := repo.Reserve([]ReservationRequest{{ItemID: item.ID, Quantity: 9}})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if len(result.Succeeded) != 0 || len(result.Failed) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}

	qty, err := repo.GetQuantity(item.ID)
	if err != nil {
		t.Fatalf("get quantity: %v", err)
	}
	if qty != 4 {
		t.Errorf("quantity = %d, want 4", qty)
	}
}

func TestReserveDrainsToZeroThenFails(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewInventoryRepository(db)

	item := seedItem(t, db, "Coolant", 5)

	result, err := repo.Reserve([]ReservationRequest{{ItemID: item.ID, Quantity: 5}})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if len(result.Succeeded) != 1 {
		t.Fatalf("expected success, got %+v", result)
	}
	if qty, _ := repo.GetQuantity(item.ID); qty != 0 {
		t.Fatalf("quantity = %d, want 0", qty)
	}

	result, err = repo.Reserve([]ReservationRequest{{ItemID: item.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if len(result.Failed) != 1 || result.Failed[0].Reason != ReserveReasonInsufficient {
		t.Fatalf("expected insufficient stock, got %+v", result)
	}
	if qty, _ := repo.GetQuantity(item.ID); qty != 0 {
		t.Errorf("quantity = %d, want 0", qty)
	}
}

func TestReserveUnknownItem(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewInventoryRepository(db)

	result, err := repo.Reserve([]ReservationRequest{{ItemID: uuid.New(), Quantity: 1}})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if len(result.Failed) != 1 || result.Failed[0].Reason != ReserveReasonNotFound {
		t.Fatalf("expected not-found failure, got %+v", result)
	}
}

func TestRestock(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewInventoryRepository(db)

	item := seedItem(t, db, "Wiper blade", 2)

	qty, err := repo.Restock(item.ID, 10, "delivery")
	if err != nil {
		t.Fatalf("restock: %v", err)
	}
	if qty != 12 {
		t.Errorf("quantity = %d, want 12", qty)
	}

	qty, err = repo.Restock(item.ID, -4, "damaged units")
	if err != nil {
		t.Fatalf("negative restock: %v", err)
	}
	if qty != 8 {
		t.Errorf("quantity = %d, want 8", qty)
	}

	if _, err := repo.Restock(item.ID, -20, "bad count"); !errors.Is(err, ErrNegativeStock) {
		t.Errorf("expected ErrNegativeStock, got %v", err)
	}
	if qty, _ := repo.GetQuantity(item.ID); qty != 8 {
		t.Errorf("quantity after rejected restock = %d, want 8", qty)
	}

	rows, err := repo.Adjustments(item.ID)
	if err != nil {
		t.Fatalf("adjustments: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("adjustment rows = %d, want 2", len(rows))
	}

	if _, err := repo.Restock(uuid.New(), 1, "x"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestLowStock(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewInventoryRepository(db)

	low := models.InventoryItem{ID: uuid.New(), Name: "Fuse", Quantity: 1, MinQuantity: 5}
	ok := models.InventoryItem{ID: uuid.New(), Name: "Bulb", Quantity: 20, MinQuantity: 5}
	if err := db.Create(&low).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&ok).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	items, err := repo.LowStock()
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(items) != 1 || items[0].ID != low.ID {
		t.Fatalf("expected only the low item, got %+v", items)
	}
}
