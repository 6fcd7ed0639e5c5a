// Package model содержит доменные сущности сервиса инвойсов.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LineItem описывает одну товарную позицию инвойса.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// InvoiceDraft содержит данные инвойса, поступившие от клиента.
// Идентификатор, итоговая сумма и время создания назначаются сервером.
type InvoiceDraft struct {
	CustomerName  string
	CustomerEmail string
	Items         []LineItem
	TaxPercent    float64
}

// Invoice представляет сохранённый инвойс.
// После создания инвойс не изменяется: маршрута обновления не существует,
// удаление выполняется только целиком по идентификатору.
type Invoice struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	Items         []LineItem
	TaxPercent    float64
	Total         float64
	CreatedAt     time.Time
}
