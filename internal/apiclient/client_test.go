package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetInvoice_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/invoices/abc-123" {
			t.Fatalf("path = %s, want /api/invoices/abc-123", r.URL.Path)
		}

		resp := Invoice{
			ID:            "abc-123",
			CustomerName:  "Acme Corp",
			CustomerEmail: "billing@acme.test",
			Products: []LineItem{
				{Name: "widget", Quantity: 2, Price: 10},
			},
			Tax:       10,
			Total:     22,
			CreatedAt: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	inv, err := client.GetInvoice(ctx, "abc-123")
	if err != nil {
		t.Fatalf("GetInvoice error: %v", err)
	}
	if inv.ID != "abc-123" || inv.CustomerName != "Acme Corp" {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
	if len(inv.Products) != 1 || inv.Products[0].Name != "widget" {
		t.Fatalf("unexpected products: %+v", inv.Products)
	}
	if inv.Total != 22 {
		t.Fatalf("total = %v, want 22", inv.Total)
	}
}

func TestGetInvoice_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Invoice not found"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := client.GetInvoice(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGetAllInvoices_Empty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/invoices/all" {
			t.Fatalf("path = %s, want /api/invoices/all", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	invoices, err := client.GetAllInvoices(ctx)
	if err != nil {
		t.Fatalf("GetAllInvoices error: %v", err)
	}
	if len(invoices) != 0 {
		t.Fatalf("expected empty list, got %+v", invoices)
	}
}

func TestClient_NotConfigured(t *testing.T) {
	client := &Client{}

	_, err := client.GetAllInvoices(context.Background())
	if err == nil {
		t.Fatalf("expected error for unconfigured client")
	}
}
