package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dashboard-backend/internal/models"
)

type fakeInvoiceStats struct {
	count     int
	paid      int64
	pending   int64
	latest    []models.LatestInvoiceRow
	countErr  error
	totalsErr error
	latestErr error
}

func (f *fakeInvoiceStats) Count(context.Context) (int, error) {
	return f.count, f.countErr
}

func (f *fakeInvoiceStats) Totals(context.Context) (int64, int64, error) {
	return f.paid, f.pending, f.totalsErr
}

func (f *fakeInvoiceStats) Latest(context.Context) ([]models.LatestInvoiceRow, error) {
	return f.latest, f.latestErr
}

type fakeCustomerStats struct {
	count    int
	countErr error
}

func (f *fakeCustomerStats) Count(context.Context) (int, error) {
	return f.count, f.countErr
}

type fakeRevenueStore struct {
	revenue []models.Revenue
	err     error
}

func (f *fakeRevenueStore) All(context.Context) ([]models.Revenue, error) {
	return f.revenue, f.err
}

func TestFetchCardDataMergesAllThreeQueries(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(
		&fakeInvoiceStats{count: 13, paid: 118600, pending: 125500},
		&fakeCustomerStats{count: 6},
		&fakeRevenueStore{},
	)

	cards, err := svc.FetchCardData(context.Background())
	require.NoError(t, err)
	require.Equal(t, &models.CardData{
		NumberOfInvoices:     13,
		NumberOfCustomers:    6,
		TotalPaidInvoices:    "$1,186.00",
		TotalPendingInvoices: "$1,255.00",
	}, cards)
}

func TestFetchCardDataEmptyStoreYieldsZeroCards(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(&fakeInvoiceStats{}, &fakeCustomerStats{}, &fakeRevenueStore{})

	cards, err := svc.FetchCardData(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, cards.NumberOfInvoices)
	require.Equal(t, 0, cards.NumberOfCustomers)
	require.Equal(t, "$0.00", cards.TotalPaidInvoices)
	require.Equal(t, "$0.00", cards.TotalPendingInvoices)
}

// Any one of the three sub-queries failing must fail the whole call with no
// partial aggregate observable.
func TestFetchCardDataFailsAsAWhole(t *testing.T) {
	t.Parallel()

	boom := errors.New("store failure")

	tests := []struct {
		name      string
		invoices  *fakeInvoiceStats
		customers *fakeCustomerStats
	}{
		{"invoice count fails", &fakeInvoiceStats{countErr: boom}, &fakeCustomerStats{count: 6}},
		{"customer count fails", &fakeInvoiceStats{count: 13}, &fakeCustomerStats{countErr: boom}},
		{"totals fail", &fakeInvoiceStats{count: 13, totalsErr: boom}, &fakeCustomerStats{count: 6}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewDashboardService(tt.invoices, tt.customers, &fakeRevenueStore{})
			cards, err := svc.FetchCardData(context.Background())
			require.ErrorIs(t, err, boom)
			require.Nil(t, cards)
		})
	}
}

func TestFetchLatestInvoicesFormatsAmounts(t *testing.T) {
	t.Parallel()

	day := 24 * time.Hour
	now := time.Now()
	rows := []models.LatestInvoiceRow{
		{ID: "a", Name: "Amy", Email: "amy@example.com", Date: now, Amount: 34450},
		{ID: "b", Name: "Ben", Email: "ben@example.com", Date: now.Add(-day), Amount: 500},
		{ID: "c", Name: "Cid", Email: "cid@example.com", Date: now.Add(-2 * day), Amount: 8945},
	}
	svc := NewDashboardService(&fakeInvoiceStats{latest: rows}, &fakeCustomerStats{}, &fakeRevenueStore{})

	latest, err := svc.FetchLatestInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, latest, 3)
	require.Equal(t, "$344.50", latest[0].Amount)
	require.Equal(t, "$5.00", latest[1].Amount)
	require.Equal(t, "$89.45", latest[2].Amount)

	// Store order (date descending) is passed through untouched.
	require.Equal(t, []string{"a", "b", "c"},
		[]string{latest[0].ID, latest[1].ID, latest[2].ID})
}

func TestFetchRevenuePassesRowsThrough(t *testing.T) {
	t.Parallel()

	want := []models.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}
	svc := NewDashboardService(&fakeInvoiceStats{}, &fakeCustomerStats{}, &fakeRevenueStore{revenue: want})

	got, err := svc.FetchRevenue(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}
