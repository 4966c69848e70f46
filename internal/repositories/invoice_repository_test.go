package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The row query and the count query must filter on the identical predicate, or
// page counts and page contents diverge. Guard the shared fragment and the
// columns it is required to cover.
func TestInvoiceFilterParity(t *testing.T) {
	t.Parallel()

	require.Contains(t, filteredInvoicesSQL, invoiceFilter)
	require.Contains(t, countInvoicesSQL, invoiceFilter)

	// The pattern occupies $1 in both queries; only the row query takes the
	// paging arguments.
	require.Equal(t,
		strings.Count(invoiceFilter, "$1"), strings.Count(countInvoicesSQL, "$1"))
	require.Contains(t, filteredInvoicesSQL, "LIMIT $2 OFFSET $3")
	require.NotContains(t, countInvoicesSQL, "LIMIT")

	for _, column := range []string{
		"customers.name",
		"customers.email",
		"invoices.amount::text",
		"invoices.date::text",
		"invoices.status",
	} {
		require.Contains(t, invoiceFilter, column)
	}
}

// The latest-invoices card is bounded to five rows ordered newest-first; both
// constraints live in the query itself.
func TestLatestInvoicesQueryShape(t *testing.T) {
	t.Parallel()

	require.Contains(t, latestInvoicesSQL, "ORDER BY invoices.date DESC")
	require.Contains(t, latestInvoicesSQL, "LIMIT 5")

	// The cap must apply to the date-ordered rows, not precede the ordering.
	require.Less(t,
		strings.Index(latestInvoicesSQL, "ORDER BY"),
		strings.Index(latestInvoicesSQL, "LIMIT 5"))
}

func TestLikePattern(t *testing.T) {
	t.Parallel()

	require.Equal(t, "%li%", likePattern("li"))
	// An empty query degrades to match-all.
	require.Equal(t, "%%", likePattern(""))
}
