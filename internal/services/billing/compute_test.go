package billing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name    string
		parts   []PartInput
		labor   []LaborInput
		taxRate float64
		want    Totals
	}{
		{
			name:    "parts and hourly labor at 18 percent",
			parts:   []PartInput{{Name: "Brake pads", Quantity: 2, UnitPrice: 500}},
			labor:   []LaborInput{{Name: "Fitting", Hours: 1, Rate: 300}},
			taxRate: 0.18,
			want:    Totals{Subtotal: 1300, TaxAmount: 234, GrandTotal: 1534},
		},
		{
			name:    "empty lines give zero totals",
			taxRate: 0.18,
			want:    Totals{},
		},
		{
			name:    "flat cost wins over hourly pair",
			labor:   []LaborInput{{Name: "Diagnostics", Hours: 2, Rate: 100, FlatCost: 150}},
			taxRate: 0.18,
			want:    Totals{Subtotal: 150, TaxAmount: 27, GrandTotal: 177},
		},
		{
			name:    "zero tax rate",
			parts:   []PartInput{{Name: "Oil filter", Quantity: 1, UnitPrice: 45.50}},
			taxRate: 0,
			want:    Totals{Subtotal: 45.50, TaxAmount: 0, GrandTotal: 45.50},
		},
		{
			name: "fractional hours round to cents",
			labor: []LaborInput{
				{Name: "Bodywork", Hours: 1.5, Rate: 33.33},
			},
			taxRate: 0.18,
			// 49.995 rounds to 50.00, tax 9.00
			want: Totals{Subtotal: 50.00, TaxAmount: 9.00, GrandTotal: 59.00},
		},
		{
			name: "repeated small additions do not drift",
			parts: []PartInput{
				{Name: "Clip", Quantity: 1, UnitPrice: 0.1},
				{Name: "Clip", Quantity: 1, UnitPrice: 0.1},
				{Name: "Clip", Quantity: 1, UnitPrice: 0.1},
			},
			taxRate: 0,
			want:    Totals{Subtotal: 0.3, TaxAmount: 0, GrandTotal: 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.parts, tt.labor, tt.taxRate)
			if !almostEqual(got.Subtotal, tt.want.Subtotal) {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.want.Subtotal)
			}
			if !almostEqual(got.TaxAmount, tt.want.TaxAmount) {
				t.Errorf("TaxAmount = %v, want %v", got.TaxAmount, tt.want.TaxAmount)
			}
			if !almostEqual(got.GrandTotal, tt.want.GrandTotal) {
				t.Errorf("GrandTotal = %v, want %v", got.GrandTotal, tt.want.GrandTotal)
			}
			if !almostEqual(got.GrandTotal, got.Subtotal+got.TaxAmount) {
				t.Errorf("grand total %v != subtotal %v + tax %v", got.GrandTotal, got.Subtotal, got.TaxAmount)
			}
		})
	}
}
