package models

// CustomerField is the minimal shape used by selection lists.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerRow is a customer with its per-customer invoice aggregates as it
// comes off the store, monetary totals still in cents.
type CustomerRow struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int
	TotalPending  int64
	TotalPaid     int64
}

// CustomersTable is the display-ready customer row, totals formatted.
type CustomersTable struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
