package services

import (
	"context"

	"dashboard-backend/internal/format"
	"dashboard-backend/internal/models"
)

// CustomerStore is the slice of the customer repository the customer views need.
type CustomerStore interface {
	All(ctx context.Context) ([]models.CustomerField, error)
	Filtered(ctx context.Context, query string) ([]models.CustomerRow, error)
}

type CustomerService struct {
	Repo CustomerStore
}

func NewCustomerService(repo CustomerStore) *CustomerService {
	return &CustomerService{Repo: repo}
}

// FetchCustomers returns all customers as id/name pairs for selection lists.
func (s *CustomerService) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	return s.Repo.All(ctx)
}

// FetchFilteredCustomers returns the customers table for a search query, with
// the two monetary aggregates formatted for display.
func (s *CustomerService) FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomersTable, error) {
	rows, err := s.Repo.Filtered(ctx, query)
	if err != nil {
		return nil, err
	}

	customers := make([]models.CustomersTable, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, models.CustomersTable{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  format.Currency(row.TotalPending),
			TotalPaid:     format.Currency(row.TotalPaid),
		})
	}
	return customers, nil
}
