package repositories

import (
	"context"
	"time"

	"dashboard-backend/internal/metrics"
	"dashboard-backend/internal/models"
)

type CustomerRepository struct {
	DB DB
}

func NewCustomerRepository(db DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// All returns every customer as an id/name pair, ordered by name. This feeds
// selection lists, so nothing is formatted.
func (r *CustomerRepository) All(ctx context.Context) ([]models.CustomerField, error) {
	const op = "failed to fetch all customers"
	defer metrics.ObserveQuery("customers.all", time.Now())

	rows, err := r.DB.Query(ctx,
		`SELECT id, name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, storeFail(op, err)
	}
	defer rows.Close()

	var customers []models.CustomerField
	for rows.Next() {
		var c models.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, storeFail(op, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFail(op, err)
	}
	return customers, nil
}

// Filtered returns customers whose name or email contains the query, each with
// its invoice count and pending/paid totals. The LEFT JOIN keeps customers
// with no invoices in the result with zeroed aggregates.
func (r *CustomerRepository) Filtered(ctx context.Context, query string) ([]models.CustomerRow, error) {
	const op = "failed to fetch customer table"
	defer metrics.ObserveQuery("customers.filtered", time.Now())

	rows, err := r.DB.Query(ctx,
		`SELECT
			customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		 FROM customers
		 LEFT JOIN invoices ON customers.id = invoices.customer_id
		 WHERE customers.name ILIKE $1 OR customers.email ILIKE $1
		 GROUP BY customers.id, customers.name, customers.email, customers.image_url
		 ORDER BY customers.name ASC`,
		likePattern(query))
	if err != nil {
		return nil, storeFail(op, err)
	}
	defer rows.Close()

	var customers []models.CustomerRow
	for rows.Next() {
		var c models.CustomerRow
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL,
			&c.TotalInvoices, &c.TotalPending, &c.TotalPaid); err != nil {
			return nil, storeFail(op, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFail(op, err)
	}
	return customers, nil
}

// Count returns the total number of customers.
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	const op = "failed to fetch customer count"
	defer metrics.ObserveQuery("customers.count", time.Now())

	var count int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, storeFail(op, err)
	}
	return count, nil
}
