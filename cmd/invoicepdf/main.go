// Package main реализует CLI экспорта инвойсов в PDF.
// Утилита получает инвойс через HTTP API и сохраняет PDF локально;
// в хранилище при этом ничего не записывается.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/invoicer-system/internal/apiclient"
	"github.com/mmeshcher/invoicer-system/internal/config"
	"github.com/mmeshcher/invoicer-system/internal/model"
	"github.com/mmeshcher/invoicer-system/internal/pdf"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	var (
		invoiceID string
		list      bool
		outDir    string
	)
	flag.StringVar(&invoiceID, "id", "", "invoice identifier to export")
	flag.BoolVar(&list, "list", false, "print stored invoices instead of exporting")
	flag.StringVar(&outDir, "o", ".", "output directory for the PDF file")

	// config.Parse регистрирует флаги -a/-d/-b и вызывает flag.Parse.
	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	client := apiclient.NewClient(cfg.APIBaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if list {
		if err := printInvoices(ctx, client); err != nil {
			sugar.Fatalw("list invoices error", "error", err.Error())
		}
		return
	}

	if invoiceID == "" {
		sugar.Fatal("flag -id is required (or use -list)")
	}

	path, err := exportInvoice(ctx, client, invoiceID, outDir)
	if err != nil {
		sugar.Fatalw("export invoice error", "error", err.Error(), "id", invoiceID)
	}

	sugar.Infow("invoice exported", "path", path)
}

func printInvoices(ctx context.Context, client *apiclient.Client) error {
	invoices, err := client.GetAllInvoices(ctx)
	if err != nil {
		return err
	}

	if len(invoices) == 0 {
		fmt.Println("no invoices")
		return nil
	}

	for _, inv := range invoices {
		fmt.Printf("%s\t%s\t%s\t%.2f\n",
			inv.ID, inv.CreatedAt.Format("2006-01-02"), inv.CustomerName, inv.Total)
	}

	return nil
}

func exportInvoice(ctx context.Context, client *apiclient.Client, invoiceID, outDir string) (string, error) {
	inv, err := client.GetInvoice(ctx, invoiceID)
	if err != nil {
		return "", err
	}

	doc, err := pdf.Render(toModel(inv))
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, fmt.Sprintf("invoice_%s.pdf", inv.ID))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	return path, nil
}

func toModel(inv *apiclient.Invoice) model.Invoice {
	items := make([]model.LineItem, 0, len(inv.Products))
	for _, p := range inv.Products {
		items = append(items, model.LineItem{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price,
		})
	}

	// Идентификатор нужен документу только как текст: при ошибке парсинга
	// в шапку попадёт нулевой UUID, содержимое инвойса от этого не зависит.
	id, _ := uuid.Parse(inv.ID)

	return model.Invoice{
		ID:            id,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		Items:         items,
		TaxPercent:    inv.Tax,
		Total:         inv.Total,
		CreatedAt:     inv.CreatedAt,
	}
}
