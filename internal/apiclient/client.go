// Package apiclient предоставляет клиент HTTP API сервиса инвойсов.
// Используется экспортирующим CLI: сервис не ретраит операции хранилища,
// поэтому повторы сетевых запросов выполняет вызывающая сторона.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrNotFound возвращается, если инвойс с указанным идентификатором не найден.
var ErrNotFound = errors.New("invoice not found")

// Client инкапсулирует HTTP-взаимодействие с API сервиса инвойсов.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// LineItem описывает товарную позицию в ответе API.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// Invoice описывает инвойс в ответе API.
type Invoice struct {
	ID            string     `json:"_id"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	Products      []LineItem `json:"products"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewClient создаёт HTTP-клиент для обращения к сервису инвойсов по указанному адресу.
func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 10 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: rc.StandardClient(),
	}
}

// GetInvoice запрашивает один инвойс по идентификатору.
func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	var inv Invoice
	if err := c.getJSON(ctx, "/api/invoices/"+id, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetAllInvoices запрашивает все инвойсы (от новых к старым).
func (c *Client) GetAllInvoices(ctx context.Context) ([]Invoice, error) {
	var invoices []Invoice
	if err := c.getJSON(ctx, "/api/invoices/all", &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	if c == nil || c.baseURL == "" {
		return fmt.Errorf("api client not configured")
	}

	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
