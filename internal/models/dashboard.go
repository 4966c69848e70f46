package models

// CardData is the merged result of the three dashboard card queries.
// It is built whole or not at all; no partial aggregate is ever returned.
type CardData struct {
	NumberOfInvoices     int    `json:"number_of_invoices"`
	NumberOfCustomers    int    `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}
