package pricing

import (
	"testing"

	"github.com/mmeshcher/invoicer-system/internal/model"
)

func TestCompute(t *testing.T) {
	type want struct {
		subtotal   string
		taxAmount  string
		grandTotal string
	}

	tests := []struct {
		name       string
		items      []model.LineItem
		taxPercent float64
		want       want
	}{
		{
			name: "two items with tax",
			items: []model.LineItem{
				{Name: "widget", Quantity: 2, Price: 10.0},
				{Name: "gadget", Quantity: 1, Price: 5.0},
			},
			taxPercent: 10,
			want: want{
				subtotal:   "25",
				taxAmount:  "2.5",
				grandTotal: "27.5",
			},
		},
		{
			name: "zero tax",
			items: []model.LineItem{
				{Name: "widget", Quantity: 3, Price: 7.5},
			},
			taxPercent: 0,
			want: want{
				subtotal:   "22.5",
				taxAmount:  "0",
				grandTotal: "22.5",
			},
		},
		{
			name:       "no items",
			items:      nil,
			taxPercent: 20,
			want: want{
				subtotal:   "0",
				taxAmount:  "0",
				grandTotal: "0",
			},
		},
		{
			name: "fractional quantity",
			items: []model.LineItem{
				{Name: "cable, per meter", Quantity: 2.5, Price: 4.0},
			},
			taxPercent: 10,
			want: want{
				subtotal:   "10",
				taxAmount:  "1",
				grandTotal: "11",
			},
		},
		{
			name: "no float drift",
			items: []model.LineItem{
				{Name: "a", Quantity: 3, Price: 0.1},
				{Name: "b", Quantity: 3, Price: 0.2},
			},
			taxPercent: 0,
			want: want{
				subtotal:   "0.9",
				taxAmount:  "0",
				grandTotal: "0.9",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.items, tt.taxPercent)

			if got.Subtotal.String() != tt.want.subtotal {
				t.Fatalf("subtotal = %s, want %s", got.Subtotal, tt.want.subtotal)
			}
			if got.TaxAmount.String() != tt.want.taxAmount {
				t.Fatalf("taxAmount = %s, want %s", got.TaxAmount, tt.want.taxAmount)
			}
			if got.GrandTotal.String() != tt.want.grandTotal {
				t.Fatalf("grandTotal = %s, want %s", got.GrandTotal, tt.want.grandTotal)
			}
		})
	}
}

func TestGrandTotalCents(t *testing.T) {
	totals := Compute([]model.LineItem{
		{Name: "widget", Quantity: 2, Price: 10.0},
		{Name: "gadget", Quantity: 1, Price: 5.0},
	}, 10)

	if cents := totals.GrandTotalCents(); cents != 2750 {
		t.Fatalf("cents = %d, want 2750", cents)
	}
}

func TestGrandTotalCents_SubCentRounding(t *testing.T) {
	totals := Compute([]model.LineItem{
		{Name: "resistor", Quantity: 1, Price: 0.333},
	}, 0)

	// Точный итог 0.333 хранится с точностью до копейки.
	if got := totals.GrandTotal.String(); got != "0.333" {
		t.Fatalf("grandTotal = %s, want 0.333", got)
	}
	if cents := totals.GrandTotalCents(); cents != 33 {
		t.Fatalf("cents = %d, want 33", cents)
	}
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(model.LineItem{Name: "widget", Quantity: 4, Price: 2.25})
	if got.String() != "9" {
		t.Fatalf("lineTotal = %s, want 9", got)
	}
}
