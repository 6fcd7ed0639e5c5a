package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mmeshcher/invoicer-system/internal/model"
)

func TestRender(t *testing.T) {
	inv := model.Invoice{
		ID:            uuid.New(),
		CustomerName:  "Acme Corp",
		CustomerEmail: "billing@acme.test",
		Items: []model.LineItem{
			{Name: "widget", Quantity: 2, Price: 10},
			{Name: "gadget", Quantity: 1, Price: 5},
		},
		TaxPercent: 10,
		Total:      27.5,
		CreatedAt:  time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	doc, err := Render(inv)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if len(doc) == 0 {
		t.Fatalf("empty document")
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("document does not start with PDF magic, got %q", doc[:4])
	}
}

func TestRender_EmptyItems(t *testing.T) {
	inv := model.Invoice{
		ID:           uuid.New(),
		CustomerName: "Acme Corp",
		CreatedAt:    time.Now(),
	}

	doc, err := Render(inv)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("document does not start with PDF magic")
	}
}
