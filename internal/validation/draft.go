// Package validation содержит функции валидации входных данных.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmeshcher/invoicer-system/internal/model"
)

// ValidateDraft проверяет обязательные поля и числовые границы черновика инвойса.
// Возвращает ошибку с текстом для клиента либо nil.
func ValidateDraft(d model.InvoiceDraft) error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return errors.New("customerName is required")
	}
	if strings.TrimSpace(d.CustomerEmail) == "" {
		return errors.New("customerEmail is required")
	}
	if len(d.Items) == 0 {
		return errors.New("at least one product is required")
	}

	for i, item := range d.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("products[%d].name is required", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("products[%d].quantity must be positive", i)
		}
		if item.Price < 0 {
			return fmt.Errorf("products[%d].price must not be negative", i)
		}
	}

	if d.TaxPercent < 0 || d.TaxPercent > 100 {
		return errors.New("tax must be between 0 and 100")
	}

	return nil
}
