// Package pricing содержит единый расчёт стоимости инвойса.
// Один и тот же расчёт используется при сохранении, в PDF-документе
// и в экспортирующем CLI, поэтому расхождений между ними нет.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/invoicer-system/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Totals содержит результат расчёта стоимости инвойса.
// Значения хранятся в десятичной арифметике без округления;
// округление выполняется только при отображении.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

// LineTotal возвращает стоимость одной позиции: количество × цена.
func LineTotal(item model.LineItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.Price))
}

// Compute рассчитывает промежуточную сумму, сумму налога и итог
// по списку позиций и ставке налога в процентах.
func Compute(items []model.LineItem, taxPercent float64) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item))
	}

	taxAmount := subtotal.Mul(decimal.NewFromFloat(taxPercent)).Div(hundred)

	return Totals{
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal.Add(taxAmount),
	}
}

// GrandTotalCents возвращает итоговую сумму в копейках для хранения в БД.
// Копейка — точность и хранения, и отображения, поэтому хранимый итог
// совпадает с документом; от точного значения он может отличаться
// не более чем на полкопейки при дробных промежуточных суммах.
func (t Totals) GrandTotalCents() int64 {
	return t.GrandTotal.Mul(hundred).Round(0).IntPart()
}
