package models

import "time"

// Invoice statuses form a closed set, enforced by a CHECK constraint in the schema.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// InvoiceRow is an invoice joined with its customer as it comes off the store,
// amount still in cents.
type InvoiceRow struct {
	ID         string
	CustomerID string
	Name       string
	Email      string
	ImageURL   string
	Date       time.Time
	Status     string
	Amount     int64
}

// InvoicesTable is the display-ready invoice row served to the invoices table,
// amount formatted as a currency string.
type InvoicesTable struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	Amount     string    `json:"amount"`
}

// LatestInvoiceRow backs the latest-invoices card, amount still in cents.
type LatestInvoiceRow struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
	Date     time.Time
	Amount   int64
}

// LatestInvoice is the display-ready shape for the latest-invoices card.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

// InvoiceFormRow is the editable subset of an invoice, amount in cents.
type InvoiceFormRow struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     string
}

// InvoiceForm feeds the edit form. Amount is in major units (dollars) because
// the form presents a mutable number, not a display string.
type InvoiceForm struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}
