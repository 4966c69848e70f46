package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"dashboard-backend/internal/format"
	"dashboard-backend/internal/models"
)

// InvoiceStats is the slice of the invoice repository the dashboard needs.
type InvoiceStats interface {
	Count(ctx context.Context) (int, error)
	Totals(ctx context.Context) (paid, pending int64, err error)
	Latest(ctx context.Context) ([]models.LatestInvoiceRow, error)
}

// CustomerStats is the slice of the customer repository the dashboard needs.
type CustomerStats interface {
	Count(ctx context.Context) (int, error)
}

// RevenueStore provides the monthly revenue summary.
type RevenueStore interface {
	All(ctx context.Context) ([]models.Revenue, error)
}

type DashboardService struct {
	Invoices  InvoiceStats
	Customers CustomerStats
	Revenue   RevenueStore
}

func NewDashboardService(invoices InvoiceStats, customers CustomerStats, revenue RevenueStore) *DashboardService {
	return &DashboardService{Invoices: invoices, Customers: customers, Revenue: revenue}
}

// FetchCardData runs the three card queries concurrently and merges the
// results once all have completed. The first failure cancels the group and
// fails the whole call; a partial CardData is never returned.
func (s *DashboardService) FetchCardData(ctx context.Context) (*models.CardData, error) {
	var (
		invoiceCount  int
		customerCount int
		paid, pending int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.Invoices.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.Customers.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		paid, pending, err = s.Invoices.Totals(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    format.Currency(paid),
		TotalPendingInvoices: format.Currency(pending),
	}, nil
}

// FetchRevenue returns the monthly revenue rows as stored.
func (s *DashboardService) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	return s.Revenue.All(ctx)
}

// FetchLatestInvoices returns the five most recent invoices with amounts
// formatted for display.
func (s *DashboardService) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	rows, err := s.Invoices.Latest(ctx)
	if err != nil {
		return nil, err
	}

	latest := make([]models.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, models.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
			Amount:   format.Currency(row.Amount),
		})
	}
	return latest, nil
}
