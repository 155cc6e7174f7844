package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartInput is a part line as submitted for invoicing. InventoryItemID links
// the line to the stock ledger; nil means a part sourced outside inventory.
type PartInput struct {
	InventoryItemID *uuid.UUID `json:"inventory_item_id"`
	Name            string     `json:"name"`
	Quantity        int        `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
}

// LaborInput is a service line: either Hours x Rate or a flat Cost.
// When FlatCost is set it wins over the hourly pair.
type LaborInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
	FlatCost    float64 `json:"flat_cost"`
}

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxAmount  float64 `json:"tax_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// PartLineTotal returns quantity x unit price as an exact decimal.
func PartLineTotal(p PartInput) decimal.Decimal {
	return decimal.NewFromInt(int64(p.Quantity)).Mul(decimal.NewFromFloat(p.UnitPrice))
}

// LaborLineTotal returns the flat cost when present, hours x rate otherwise.
func LaborLineTotal(l LaborInput) decimal.Decimal {
	if l.FlatCost > 0 {
		return decimal.NewFromFloat(l.FlatCost)
	}
	return decimal.NewFromFloat(l.Hours).Mul(decimal.NewFromFloat(l.Rate))
}

// ComputeTotals derives subtotal, tax and grand total from the submitted
// lines. All arithmetic runs on decimals so repeated additions cannot drift;
// amounts are rounded to cents once, on the way out, and the grand total is
// the sum of the two rounded figures so the invariant
// grand_total == subtotal + tax_amount holds exactly as stored.
func ComputeTotals(parts []PartInput, labor []LaborInput, taxRate float64) Totals {
	subtotal := decimal.Zero
	for _, p := range parts {
		subtotal = subtotal.Add(PartLineTotal(p))
	}
	for _, l := range labor {
		subtotal = subtotal.Add(LaborLineTotal(l))
	}

	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Round(2)
	grand := subtotal.Add(tax)

	return Totals{
		Subtotal:   subtotal.InexactFloat64(),
		TaxAmount:  tax.InexactFloat64(),
		GrandTotal: grand.InexactFloat64(),
	}
}
