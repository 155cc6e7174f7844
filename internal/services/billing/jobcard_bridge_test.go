package billing

import (
	"errors"
	"testing"
	"time"

	"garage-management-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedCompletedJobCard(t *testing.T, db *gorm.DB, customer models.Customer, itemID *uuid.UUID) models.JobCard {
	t.Helper()
	vehicle := models.Vehicle{
		ID:           uuid.New(),
		CustomerID:   customer.ID,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2019,
		LicensePlate: "KA-01-1234",
	}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}

	now := time.Now()
	cardID := uuid.New()
	card := models.JobCard{
		ID:               cardID,
		CustomerID:       customer.ID,
		VehicleID:        vehicle.ID,
		IssueDescription: "Grinding noise when braking",
		Status:           models.JobCardStatusCompleted,
		CompletedAt:      &now,
		Items: []models.JobCardItem{
			{ID: uuid.New(), JobCardID: cardID, InventoryItemID: itemID, Name: "Brake pads", Quantity: 2, UnitPrice: 500},
		},
		Labor: []models.JobCardLabor{
			{ID: uuid.New(), JobCardID: cardID, Name: "Fitting", Hours: 1, Rate: 300},
		},
	}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("seed job card: %v", err)
	}
	return card
}

func TestInvoiceableData(t *testing.T) {
	db := setupBillingTestDB(t)
	svc := newBillingService(db, 0.18)
	customer := seedCustomer(t, db)
	item := seedStockItem(t, db, "Brake pads", 10, 500)
	card := seedCompletedJobCard(t, db, customer, &item.ID)

	data, err := svc.InvoiceableData(card.ID)
	if err != nil {
		t.Fatalf("invoiceable data: %v", err)
	}

	if len(data.Parts) != 1 || len(data.Labor) != 1 {
		t.Fatalf("expected 1 part and 1 labor candidate, got %d/%d", len(data.Parts), len(data.Labor))
	}
	part := data.Parts[0]
	if part.Quantity != 2 || !almostEqual(part.UnitPrice, 500) {
		t.Errorf("unexpected part candidate %+v", part)
	}
	if part.InventoryItemID == nil || *part.InventoryItemID != item.ID {
		t.Errorf("expected part to keep its inventory link")
	}
	if !almostEqual(data.Totals.Subtotal, 1300) || !almostEqual(data.Totals.GrandTotal, 1534) {
		t.Errorf("unexpected proposal totals %+v", data.Totals)
	}
	if data.Customer == nil || data.Customer.ID != customer.ID {
		t.Error("expected customer context")
	}
	if data.Vehicle == nil || data.Vehicle.LicensePlate != "KA-01-1234" {
		t.Error("expected vehicle context")
	}
}

func TestInvoiceableDataRequiresCompletion(t *testing.T) {
	db := setupBillingTestDB(t)
	svc := newBillingService(db, 0.18)
	customer := seedCustomer(t, db)

	vehicle := models.Vehicle{ID: uuid.New(), CustomerID: customer.ID, Make: "Honda", Model: "City"}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	card := models.JobCard{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		VehicleID:  vehicle.ID,
		Status:     models.JobCardStatusPending,
	}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("seed job card: %v", err)
	}

	if _, err := svc.InvoiceableData(card.ID); !errors.Is(err, ErrJobCardNotInvoiceable) {
		t.Errorf("expected ErrJobCardNotInvoiceable, got %v", err)
	}
}

// End-to-end: job card proposal feeds invoice creation and the confirmed
// subset drives stock and totals.
func TestJobCardToInvoiceFlow(t *testing.T) {
	db := setupBillingTestDB(t)
	svc := newBillingService(db, 0.18)
	customer := seedCustomer(t, db)
	item := seedStockItem(t, db, "Brake pads", 10, 500)
	card := seedCompletedJobCard(t, db, customer, &item.ID)

	data, err := svc.InvoiceableData(card.ID)
	if err != nil {
		t.Fatalf("invoiceable data: %v", err)
	}

	invoice, err := svc.CreateInvoice(CreateInvoiceInput{
		CustomerID: customer.ID,
		JobCardID:  &card.ID,
		Parts:      data.Parts,
		Labor:      data.Labor,
		DueDate:    time.Now().AddDate(0, 0, 14),
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if invoice.JobCard == nil || invoice.JobCard.ID != card.ID {
		t.Error("expected joined job card")
	}
	if invoice.JobCard != nil && invoice.JobCard.Vehicle == nil {
		t.Error("expected vehicle joined through job card")
	}
	if !almostEqual(invoice.GrandTotal, 1534) {
		t.Errorf("grand total = %v, want 1534", invoice.GrandTotal)
	}

	var stored models.InventoryItem
	if err := db.First(&stored, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if stored.Quantity != 8 {
		t.Errorf("quantity = %d, want 8", stored.Quantity)
	}
}
