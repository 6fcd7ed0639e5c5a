// Package repository содержит реализацию хранилища инвойсов в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/mmeshcher/invoicer-system/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrInvoiceNotFound возвращается, если инвойс с указанным идентификатором не найден.
var ErrInvoiceNotFound = errors.New("invoice not found")

// ErrDuplicateID возвращается при коллизии идентификатора инвойса.
var ErrDuplicateID = errors.New("duplicate invoice id")

// PostgresRepository предоставляет доступ к хранилищу инвойсов в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
// Первое подключение выполняется с backoff: при старте через docker-compose
// база может быть ещё не готова принимать соединения.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	backoff := retry.WithMaxRetries(4, retry.NewFibonacci(time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// InsertInvoice сохраняет инвойс, назначая идентификатор и время создания.
// Итоговая сумма передаётся в копейках и уже пересчитана сервисом.
func (r *PostgresRepository) InsertInvoice(ctx context.Context, draft model.InvoiceDraft, totalCents int64) (*model.Invoice, error) {
	itemsJSON, err := json.Marshal(draft.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	id := uuid.New()

	var createdAt time.Time
	err = r.pool.QueryRow(ctx,
		`INSERT INTO invoices (id, customer_name, customer_email, items, tax_percent, total_cents)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		id, draft.CustomerName, draft.CustomerEmail, itemsJSON, draft.TaxPercent, totalCents,
	).Scan(&createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		return nil, fmt.Errorf("insert invoice: %w", err)
	}

	return &model.Invoice{
		ID:            id,
		CustomerName:  draft.CustomerName,
		CustomerEmail: draft.CustomerEmail,
		Items:         draft.Items,
		TaxPercent:    draft.TaxPercent,
		Total:         float64(totalCents) / 100,
		CreatedAt:     createdAt,
	}, nil
}

// GetInvoices возвращает все инвойсы от новых к старым.
// При совпадении created_at порядок определяется порядком вставки.
func (r *PostgresRepository) GetInvoices(ctx context.Context) ([]model.Invoice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, customer_name, customer_email, items, tax_percent, total_cents, created_at
		 FROM invoices
		 ORDER BY created_at DESC, seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select invoices: %w", err)
	}
	defer rows.Close()

	var invoices []model.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return invoices, nil
}

// GetInvoiceByID возвращает инвойс по идентификатору.
func (r *PostgresRepository) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, customer_name, customer_email, items, tax_percent, total_cents, created_at
		 FROM invoices
		 WHERE id = $1`,
		id,
	)

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	return inv, nil
}

// DeleteInvoice безвозвратно удаляет инвойс по идентификатору.
// Повторное удаление того же идентификатора возвращает ErrInvoiceNotFound.
func (r *PostgresRepository) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

func scanInvoice(row pgx.Row) (*model.Invoice, error) {
	var (
		inv        model.Invoice
		itemsJSON  []byte
		totalCents int64
	)

	err := row.Scan(&inv.ID, &inv.CustomerName, &inv.CustomerEmail, &itemsJSON, &inv.TaxPercent, &totalCents, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}

	inv.Total = float64(totalCents) / 100

	return &inv, nil
}
