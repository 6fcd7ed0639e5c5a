// Package service реализует бизнес-логику сервиса инвойсов.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmeshcher/invoicer-system/internal/model"
	"github.com/mmeshcher/invoicer-system/internal/pricing"
	"github.com/mmeshcher/invoicer-system/internal/validation"
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	InsertInvoice(ctx context.Context, draft model.InvoiceDraft, totalCents int64) (*model.Invoice, error)
	GetInvoices(ctx context.Context) ([]model.Invoice, error)
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// ValidationError описывает ошибку валидации черновика инвойса.
// Текст ошибки предназначен для клиента.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError создаёт ошибку валидации с указанным сообщением.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// Service содержит бизнес-логику сервиса инвойсов.
type Service struct {
	repo Repository
}

// NewService создаёт новый сервис с указанным репозиторием.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// CreateInvoice проверяет черновик и сохраняет инвойс.
// Итоговая сумма всегда пересчитывается на сервере из позиций и налога;
// значение, присланное клиентом, игнорируется.
func (s *Service) CreateInvoice(ctx context.Context, draft model.InvoiceDraft) (*model.Invoice, error) {
	if err := validation.ValidateDraft(draft); err != nil {
		return nil, NewValidationError(err.Error())
	}

	totals := pricing.Compute(draft.Items, draft.TaxPercent)

	return s.repo.InsertInvoice(ctx, draft, totals.GrandTotalCents())
}

// GetInvoices возвращает все инвойсы от новых к старым.
func (s *Service) GetInvoices(ctx context.Context) ([]model.Invoice, error) {
	return s.repo.GetInvoices(ctx)
}

// GetInvoiceByID возвращает инвойс по идентификатору.
func (s *Service) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	return s.repo.GetInvoiceByID(ctx, id)
}

// DeleteInvoice безвозвратно удаляет инвойс по идентификатору.
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}
