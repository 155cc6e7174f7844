package workshop

import (
	"errors"
	"fmt"
	"testing"

	"garage-management-backend/internal/models"
	"garage-management-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWorkshopTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Customer{},
		&models.Vehicle{},
		&models.Staff{},
		&models.InventoryItem{},
		&models.StockAdjustment{},
		&models.JobCard{},
		&models.JobCardItem{},
		&models.JobCardLabor{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newWorkshopService(db *gorm.DB) *Service {
	return NewService(repository.NewJobCardRepository(db), repository.NewInventoryRepository(db))
}

func seedFixtures(t *testing.T, db *gorm.DB) (models.Customer, models.Vehicle, models.InventoryItem) {
	t.Helper()
	customer := models.Customer{ID: uuid.New(), Name: "Ravi Kumar"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	vehicle := models.Vehicle{ID: uuid.New(), CustomerID: customer.ID, Make: "Maruti", Model: "Swift"}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	item := models.InventoryItem{ID: uuid.New(), Name: "Clutch plate", Quantity: 4, UnitPrice: 850}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return customer, vehicle, item
}

func TestCreateJobCardCapturesInventoryPrice(t *testing.T) {
	db := setupWorkshopTestDB(t)
	svc := newWorkshopService(db)
	customer, vehicle, item := seedFixtures(t, db)

	card, err := svc.Create(CreateJobCardInput{
		CustomerID:       customer.ID,
		VehicleID:        vehicle.ID,
		IssueDescription: "Clutch slipping",
		Items:            []ItemInput{{InventoryItemID: &item.ID, Quantity: 1}},
		Labor:            []LaborInput{{Name: "Clutch replacement", Hours: 3, Rate: 400}},
	})
	if err != nil {
		t.Fatalf("create job card: %v", err)
	}

	if card.Status != models.JobCardStatusPending {
		t.Errorf("status = %q, want pending", card.Status)
	}
	if len(card.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(card.Items))
	}
	if card.Items[0].Name != "Clutch plate" {
		t.Errorf("item name = %q, want inventory name", card.Items[0].Name)
	}
	if card.Items[0].UnitPrice != 850 {
		t.Errorf("item price = %v, want inventory price 850", card.Items[0].UnitPrice)
	}

	// Recording on a job card must not touch stock; that happens at invoicing.
	var stored models.InventoryItem
	if err := db.First(&stored, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if stored.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", stored.Quantity)
	}
}

func TestCreateJobCardValidation(t *testing.T) {
	db := setupWorkshopTestDB(t)
	svc := newWorkshopService(db)
	customer, vehicle, _ := seedFixtures(t, db)

	if _, err := svc.Create(CreateJobCardInput{VehicleID: vehicle.ID}); !errors.Is(err, ErrMissingReferences) {
		t.Errorf("expected ErrMissingReferences, got %v", err)
	}

	_, err := svc.Create(CreateJobCardInput{
		CustomerID: customer.ID,
		VehicleID:  vehicle.ID,
		Items:      []ItemInput{{Name: "Gasket", Quantity: 0}},
	})
	if !errors.Is(err, ErrInvalidLine) {
		t.Errorf("expected ErrInvalidLine, got %v", err)
	}
}

func TestJobCardLifecycle(t *testing.T) {
	db := setupWorkshopTestDB(t)
	svc := newWorkshopService(db)
	customer, vehicle, _ := seedFixtures(t, db)

	card, err := svc.Create(CreateJobCardInput{
		CustomerID:       customer.ID,
		VehicleID:        vehicle.ID,
		IssueDescription: "Engine light on",
	})
	if err != nil {
		t.Fatalf("create job card: %v", err)
	}

	// pending -> completed skips in-progress and must fail.
	if _, err := svc.UpdateStatus(card.ID, models.JobCardStatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}

	card, err = svc.UpdateStatus(card.ID, models.JobCardStatusInProgress)
	if err != nil {
		t.Fatalf("start work: %v", err)
	}
	if card.Status != models.JobCardStatusInProgress {
		t.Errorf("status = %q, want in-progress", card.Status)
	}

	card, err = svc.UpdateDiagnosis(card.ID, "Faulty O2 sensor")
	if err != nil {
		t.Fatalf("update diagnosis: %v", err)
	}
	if card.Diagnosis != "Faulty O2 sensor" {
		t.Errorf("diagnosis = %q", card.Diagnosis)
	}

	card, err = svc.UpdateStatus(card.ID, models.JobCardStatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if card.CompletedAt == nil {
		t.Error("expected CompletedAt to be stamped")
	}

	// Completed is terminal.
	if _, err := svc.UpdateStatus(card.ID, models.JobCardStatusCancelled); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.UpdateDiagnosis(card.ID, "late note"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected diagnosis edit to be rejected, got %v", err)
	}

	if _, err := svc.UpdateStatus(card.ID, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestJobCardCancel(t *testing.T) {
	db := setupWorkshopTestDB(t)
	svc := newWorkshopService(db)
	customer, vehicle, _ := seedFixtures(t, db)

	card, err := svc.Create(CreateJobCardInput{
		CustomerID:       customer.ID,
		VehicleID:        vehicle.ID,
		IssueDescription: "Customer no-show",
	})
	if err != nil {
		t.Fatalf("create job card: %v", err)
	}

	card, err = svc.UpdateStatus(card.ID, models.JobCardStatusCancelled)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if card.Status != models.JobCardStatusCancelled {
		t.Errorf("status = %q, want cancelled", card.Status)
	}
	if _, err := svc.UpdateStatus(card.ID, models.JobCardStatusInProgress); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}
