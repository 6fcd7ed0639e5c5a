package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	custommiddleware "github.com/mmeshcher/invoicer-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса инвойсов.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Welcome to the Invoice API!"))
	})

	r.Route("/api/invoices", func(r chi.Router) {
		r.Post("/add", h.AddInvoice)
		r.Get("/all", h.GetInvoices)

		r.Get("/{id}", h.GetInvoice)
		r.Get("/{id}/pdf", h.ExportInvoicePDF)
		r.Delete("/{id}", h.DeleteInvoice)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
