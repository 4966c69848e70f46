package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"dashboard-backend/internal/metrics"
	"dashboard-backend/internal/models"
)

// invoiceFilter is the one source of truth for the invoices search predicate.
// Both the row query and the count query embed it verbatim; if they ever
// diverge, pagination and the result set drift apart. Non-text columns are
// cast to text so the substring match covers amounts, dates and status alike.
const invoiceFilter = `(
			customers.name ILIKE $1 OR
			customers.email ILIKE $1 OR
			invoices.amount::text ILIKE $1 OR
			invoices.date::text ILIKE $1 OR
			invoices.status ILIKE $1
		)`

const (
	filteredInvoicesSQL = `
		SELECT
			invoices.id, invoices.customer_id, customers.name, customers.email,
			customers.image_url, invoices.date, invoices.status, invoices.amount
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + invoiceFilter + `
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3`

	countInvoicesSQL = `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE ` + invoiceFilter

	// The latest-invoices card shows at most five rows, newest first. Both
	// bounds live here so they can be pinned alongside the filter predicate.
	latestInvoicesSQL = `
		SELECT invoices.id, customers.name, customers.email, customers.image_url,
		       invoices.date, invoices.amount
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT 5`
)

type InvoiceRepository struct {
	DB DB
}

func NewInvoiceRepository(db DB) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// Latest returns the five most recent invoices joined with their customers,
// newest first. Amounts stay in cents; formatting happens in the service layer.
func (r *InvoiceRepository) Latest(ctx context.Context) ([]models.LatestInvoiceRow, error) {
	const op = "failed to fetch the latest invoices"
	defer metrics.ObserveQuery("invoices.latest", time.Now())

	rows, err := r.DB.Query(ctx, latestInvoicesSQL)
	if err != nil {
		return nil, storeFail(op, err)
	}
	defer rows.Close()

	var latest []models.LatestInvoiceRow
	for rows.Next() {
		var inv models.LatestInvoiceRow
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Email, &inv.ImageURL, &inv.Date, &inv.Amount); err != nil {
			return nil, storeFail(op, err)
		}
		latest = append(latest, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFail(op, err)
	}
	return latest, nil
}

// Filtered returns one page of invoices whose customer name, email, amount,
// date or status contains the query, case-insensitively, newest first.
func (r *InvoiceRepository) Filtered(ctx context.Context, query string, limit, offset int) ([]models.InvoiceRow, error) {
	const op = "failed to fetch invoices"
	defer metrics.ObserveQuery("invoices.filtered", time.Now())

	rows, err := r.DB.Query(ctx, filteredInvoicesSQL, likePattern(query), limit, offset)
	if err != nil {
		return nil, storeFail(op, err)
	}
	defer rows.Close()

	var invoices []models.InvoiceRow
	for rows.Next() {
		var inv models.InvoiceRow
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Name, &inv.Email,
			&inv.ImageURL, &inv.Date, &inv.Status, &inv.Amount); err != nil {
			return nil, storeFail(op, err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFail(op, err)
	}
	return invoices, nil
}

// CountFiltered counts the rows matching the same predicate Filtered uses.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int, error) {
	const op = "failed to fetch total number of invoices"
	defer metrics.ObserveQuery("invoices.count_filtered", time.Now())

	var count int
	if err := r.DB.QueryRow(ctx, countInvoicesSQL, likePattern(query)).Scan(&count); err != nil {
		return 0, storeFail(op, err)
	}
	return count, nil
}

// ByID fetches the editable subset of one invoice. A missing invoice is not a
// store failure: it returns (nil, nil) and callers must check for nil.
func (r *InvoiceRepository) ByID(ctx context.Context, id string) (*models.InvoiceFormRow, error) {
	const op = "failed to fetch invoice"
	defer metrics.ObserveQuery("invoices.by_id", time.Now())

	var inv models.InvoiceFormRow
	err := r.DB.QueryRow(ctx,
		`SELECT id, customer_id, amount, status FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeFail(op, err)
	}
	return &inv, nil
}

// Count returns the total number of invoices.
func (r *InvoiceRepository) Count(ctx context.Context) (int, error) {
	const op = "failed to fetch invoice count"
	defer metrics.ObserveQuery("invoices.count", time.Now())

	var count int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, storeFail(op, err)
	}
	return count, nil
}

// Totals computes the paid and pending sums in a single pass over invoices
// rather than two scans. COALESCE keeps the sums at zero on an empty table.
func (r *InvoiceRepository) Totals(ctx context.Context) (paid, pending int64, err error) {
	const op = "failed to fetch invoice totals"
	defer metrics.ObserveQuery("invoices.totals", time.Now())

	err = r.DB.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
		 FROM invoices`,
	).Scan(&paid, &pending)
	if err != nil {
		return 0, 0, storeFail(op, err)
	}
	return paid, pending, nil
}

// likePattern wraps a raw search term for a substring ILIKE match. The term is
// always a bound parameter; an empty term matches every row.
func likePattern(query string) string {
	return "%" + query + "%"
}
