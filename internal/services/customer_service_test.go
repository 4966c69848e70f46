package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"dashboard-backend/internal/models"
)

type fakeCustomerStore struct {
	fields []models.CustomerField
	rows   []models.CustomerRow
	err    error
}

func (f *fakeCustomerStore) All(context.Context) ([]models.CustomerField, error) {
	return f.fields, f.err
}

func (f *fakeCustomerStore) Filtered(context.Context, string) ([]models.CustomerRow, error) {
	return f.rows, f.err
}

func TestFetchFilteredCustomersFormatsTotals(t *testing.T) {
	t.Parallel()

	store := &fakeCustomerStore{rows: []models.CustomerRow{
		{ID: "c1", Name: "Amy", Email: "amy@example.com", TotalInvoices: 3, TotalPending: 12500, TotalPaid: 320000},
		{ID: "c2", Name: "Ben", Email: "ben@example.com"},
	}}
	svc := NewCustomerService(store)

	got, err := svc.FetchFilteredCustomers(context.Background(), "e")
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, 3, got[0].TotalInvoices)
	require.Equal(t, "$125.00", got[0].TotalPending)
	require.Equal(t, "$3,200.00", got[0].TotalPaid)

	// A customer with no invoices shows zeroed, still-formatted totals.
	require.Equal(t, 0, got[1].TotalInvoices)
	require.Equal(t, "$0.00", got[1].TotalPending)
	require.Equal(t, "$0.00", got[1].TotalPaid)
}

func TestFetchCustomersPassesFieldsThrough(t *testing.T) {
	t.Parallel()

	want := []models.CustomerField{{ID: "c1", Name: "Amy"}, {ID: "c2", Name: "Ben"}}
	svc := NewCustomerService(&fakeCustomerStore{fields: want})

	got, err := svc.FetchCustomers(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCustomerServicePropagatesStoreFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("failed to fetch customer table")
	svc := NewCustomerService(&fakeCustomerStore{err: boom})

	_, err := svc.FetchFilteredCustomers(context.Background(), "")
	require.ErrorIs(t, err, boom)
}
