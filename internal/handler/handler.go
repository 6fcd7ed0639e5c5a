// Package handler содержит HTTP-обработчики API сервиса инвойсов.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/invoicer-system/internal/model"
	"github.com/mmeshcher/invoicer-system/internal/pdf"
	"github.com/mmeshcher/invoicer-system/internal/repository"
	"github.com/mmeshcher/invoicer-system/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	CreateInvoice(ctx context.Context, draft model.InvoiceDraft) (*model.Invoice, error)
	GetInvoices(ctx context.Context) ([]model.Invoice, error)
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// Handler реализует HTTP-обработчики API сервиса инвойсов.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

type invoiceRequest struct {
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	Products      []model.LineItem `json:"products"`
	Tax           float64          `json:"tax"`
	// Total присылают старые клиенты, считавшие сумму сами.
	// Поле принимается и игнорируется: сумма пересчитывается сервером.
	Total float64 `json:"total"`
}

type invoiceResponse struct {
	ID            string           `json:"_id"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	Products      []model.LineItem `json:"products"`
	Tax           float64          `json:"tax"`
	Total         float64          `json:"total"`
	CreatedAt     string           `json:"createdAt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toInvoiceResponse(inv *model.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:            inv.ID.String(),
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		Products:      inv.Items,
		Tax:           inv.TaxPercent,
		Total:         inv.Total,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// AddInvoice сохраняет новый инвойс из присланного черновика.
func (h *Handler) AddInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	draft := model.InvoiceDraft{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         req.Products,
		TaxPercent:    req.Tax,
	}

	inv, err := h.service.CreateInvoice(r.Context(), draft)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Error()})
			return
		}
		h.logger.Error("create invoice error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save invoice"})
		return
	}

	writeJSON(w, http.StatusCreated, toInvoiceResponse(inv))
}

// GetInvoices возвращает все инвойсы от новых к старым.
// Пустое хранилище — не ошибка: возвращается пустой массив.
func (h *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.GetInvoices(r.Context())
	if err != nil {
		h.logger.Error("get invoices error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load invoices"})
		return
	}

	resp := make([]invoiceResponse, 0, len(invoices))
	for i := range invoices {
		resp = append(resp, toInvoiceResponse(&invoices[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetInvoice возвращает один инвойс по идентификатору.
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.invoiceFromRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// ExportInvoicePDF отдаёт инвойс в виде PDF-документа.
func (h *Handler) ExportInvoicePDF(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.invoiceFromRequest(w, r)
	if !ok {
		return
	}

	doc, err := pdf.Render(*inv)
	if err != nil {
		h.logger.Error("render invoice pdf error", zap.Error(err), zap.String("id", inv.ID.String()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to render pdf"})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", inv.ID))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = w.Write(doc)
}

// DeleteInvoice безвозвратно удаляет инвойс.
// Повторное удаление того же идентификатора возвращает 404.
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Invoice not found"})
		return
	}

	if err := h.service.DeleteInvoice(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "Invoice not found"})
			return
		}
		h.logger.Error("delete invoice error", zap.Error(err), zap.String("id", id.String()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to delete invoice"})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Invoice deleted successfully"})
}

func (h *Handler) invoiceFromRequest(w http.ResponseWriter, r *http.Request) (*model.Invoice, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Invoice not found"})
		return nil, false
	}

	inv, err := h.service.GetInvoiceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse{Message: "Invoice not found"})
			return nil, false
		}
		h.logger.Error("get invoice error", zap.Error(err), zap.String("id", id.String()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load invoice"})
		return nil, false
	}

	return inv, true
}
