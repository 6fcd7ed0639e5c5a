// Package pdf отвечает за генерацию PDF-документа инвойса.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/invoicer-system/internal/model"
	"github.com/mmeshcher/invoicer-system/internal/pricing"
)

// Render формирует PDF-документ инвойса: шапку с данными клиента,
// таблицу позиций и итоговый блок. Суммы считаются тем же расчётом,
// что и при сохранении, поэтому документ всегда совпадает с хранимым итогом.
func Render(inv model.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(0, 10, "Invoice")
	doc.Ln(12)

	doc.SetFont("Arial", "", 11)
	doc.Cell(0, 7, "Invoice ID: "+inv.ID.String())
	doc.Ln(7)
	doc.Cell(0, 7, "Customer Name: "+inv.CustomerName)
	doc.Ln(7)
	doc.Cell(0, 7, "Customer Email: "+inv.CustomerEmail)
	doc.Ln(7)
	doc.Cell(0, 7, "Invoice Date: "+inv.CreatedAt.Format("02.01.2006"))
	doc.Ln(12)

	writeItemsTable(doc, inv.Items)

	totals := pricing.Compute(inv.Items, inv.TaxPercent)

	doc.Ln(6)
	doc.SetFont("Arial", "", 11)
	doc.Cell(0, 7, "Subtotal: $"+totals.Subtotal.StringFixed(2))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("Tax (%s%%): $%s",
		decimal.NewFromFloat(inv.TaxPercent), totals.TaxAmount.StringFixed(2)))
	doc.Ln(7)
	doc.SetFont("Arial", "B", 12)
	doc.Cell(0, 8, "Grand Total: $"+totals.GrandTotal.StringFixed(2))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeItemsTable(doc *gofpdf.Fpdf, items []model.LineItem) {
	const (
		nameWidth  = 80.0
		numWidth   = 30.0
		rowHeight  = 8.0
		headHeight = 9.0
	)

	doc.SetFont("Arial", "B", 11)
	doc.SetFillColor(10, 29, 62)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(nameWidth, headHeight, "Product Name", "1", 0, "L", true, 0, "")
	doc.CellFormat(numWidth, headHeight, "Quantity", "1", 0, "R", true, 0, "")
	doc.CellFormat(numWidth, headHeight, "Price ($)", "1", 0, "R", true, 0, "")
	doc.CellFormat(numWidth, headHeight, "Total ($)", "1", 1, "R", true, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(0, 0, 0)
	for _, item := range items {
		doc.CellFormat(nameWidth, rowHeight, item.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(numWidth, rowHeight, decimal.NewFromFloat(item.Quantity).String(), "1", 0, "R", false, 0, "")
		doc.CellFormat(numWidth, rowHeight, decimal.NewFromFloat(item.Price).StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(numWidth, rowHeight, pricing.LineTotal(item).StringFixed(2), "1", 1, "R", false, 0, "")
	}
}
