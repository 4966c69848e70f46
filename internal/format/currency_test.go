package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "$0.00"},
		{"sub-dollar", 5, "$0.05"},
		{"dollar fifty", 150, "$1.50"},
		{"negative sub-dollar", -50, "-$0.50"},
		{"plain", 1234, "$12.34"},
		{"thousands grouping", 123456, "$1,234.56"},
		{"negative grouped", -123456, "-$1,234.56"},
		{"million", 100000000, "$1,000,000.00"},
		{"uneven leading group", 1234567890, "$12,345,678.90"},
		{"max int64", math.MaxInt64, "$92,233,720,368,547,758.07"},
		{"min int64", math.MinInt64, "-$92,233,720,368,547,758.08"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Currency(tt.cents))
		})
	}
}
