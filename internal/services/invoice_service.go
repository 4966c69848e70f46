package services

import (
	"context"

	"dashboard-backend/internal/format"
	"dashboard-backend/internal/models"
)

// InvoicesPerPage is the page size shared by the row fetch and the page-count
// calculation. Keeping it in one place preserves paging parity with the
// filter predicate.
const InvoicesPerPage = 6

// InvoiceStore is the slice of the invoice repository the invoice views need.
type InvoiceStore interface {
	Filtered(ctx context.Context, query string, limit, offset int) ([]models.InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	ByID(ctx context.Context, id string) (*models.InvoiceFormRow, error)
}

type InvoiceService struct {
	Repo InvoiceStore
}

func NewInvoiceService(repo InvoiceStore) *InvoiceService {
	return &InvoiceService{Repo: repo}
}

// FetchFilteredInvoices returns one page of the invoices table for a search
// query. Pages are 1-indexed; anything below 1 is clamped to the first page
// rather than turning into a negative offset against the store.
func (s *InvoiceService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]models.InvoicesTable, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * InvoicesPerPage

	rows, err := s.Repo.Filtered(ctx, query, InvoicesPerPage, offset)
	if err != nil {
		return nil, err
	}

	invoices := make([]models.InvoicesTable, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, models.InvoicesTable{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Name:       row.Name,
			Email:      row.Email,
			ImageURL:   row.ImageURL,
			Date:       row.Date,
			Status:     row.Status,
			Amount:     format.Currency(row.Amount),
		})
	}
	return invoices, nil
}

// FetchInvoicesPages returns the number of pages the query's matches span,
// counted with the same predicate FetchFilteredInvoices filters by.
func (s *InvoiceService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	count, err := s.Repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, err
	}
	return (count + InvoicesPerPage - 1) / InvoicesPerPage, nil
}

// FetchInvoiceByID returns one invoice shaped for the edit form, with the
// amount converted from cents to dollars. This is the only fetcher that
// returns a numeric amount; everything display-bound gets a formatted string.
// A missing invoice yields (nil, nil).
func (s *InvoiceService) FetchInvoiceByID(ctx context.Context, id string) (*models.InvoiceForm, error) {
	row, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	return &models.InvoiceForm{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Amount:     float64(row.Amount) / 100,
		Status:     row.Status,
	}, nil
}
