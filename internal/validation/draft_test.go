package validation

import (
	"testing"

	"github.com/mmeshcher/invoicer-system/internal/model"
)

func validDraft() model.InvoiceDraft {
	return model.InvoiceDraft{
		CustomerName:  "Acme Corp",
		CustomerEmail: "billing@acme.test",
		Items: []model.LineItem{
			{Name: "widget", Quantity: 2, Price: 10},
		},
		TaxPercent: 10,
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *model.InvoiceDraft)
		wantErr string
	}{
		{
			name:    "valid draft",
			mutate:  func(d *model.InvoiceDraft) {},
			wantErr: "",
		},
		{
			name:    "missing customer name",
			mutate:  func(d *model.InvoiceDraft) { d.CustomerName = "" },
			wantErr: "customerName is required",
		},
		{
			name:    "whitespace customer name",
			mutate:  func(d *model.InvoiceDraft) { d.CustomerName = "   " },
			wantErr: "customerName is required",
		},
		{
			name:    "missing customer email",
			mutate:  func(d *model.InvoiceDraft) { d.CustomerEmail = "" },
			wantErr: "customerEmail is required",
		},
		{
			name:    "no items",
			mutate:  func(d *model.InvoiceDraft) { d.Items = nil },
			wantErr: "at least one product is required",
		},
		{
			name:    "item without name",
			mutate:  func(d *model.InvoiceDraft) { d.Items[0].Name = "" },
			wantErr: "products[0].name is required",
		},
		{
			name:    "zero quantity",
			mutate:  func(d *model.InvoiceDraft) { d.Items[0].Quantity = 0 },
			wantErr: "products[0].quantity must be positive",
		},
		{
			name:    "negative quantity",
			mutate:  func(d *model.InvoiceDraft) { d.Items[0].Quantity = -1 },
			wantErr: "products[0].quantity must be positive",
		},
		{
			name:    "negative price",
			mutate:  func(d *model.InvoiceDraft) { d.Items[0].Price = -0.01 },
			wantErr: "products[0].price must not be negative",
		},
		{
			name:    "zero price allowed",
			mutate:  func(d *model.InvoiceDraft) { d.Items[0].Price = 0 },
			wantErr: "",
		},
		{
			name:    "negative tax",
			mutate:  func(d *model.InvoiceDraft) { d.TaxPercent = -5 },
			wantErr: "tax must be between 0 and 100",
		},
		{
			name:    "tax above 100",
			mutate:  func(d *model.InvoiceDraft) { d.TaxPercent = 101 },
			wantErr: "tax must be between 0 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := ValidateDraft(d)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Fatalf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}
