package format

import (
	"fmt"
	"strconv"
)

// Currency renders an amount in cents as a US-locale dollar string,
// e.g. 123456 -> "$1,234.56". Negative amounts carry a leading minus sign.
// Amounts stay integers until they reach this boundary; nothing downstream
// of a formatted string does arithmetic on it.
func Currency(cents int64) string {
	sign := ""
	// Negate in uint64 space so the magnitude of math.MinInt64 stays
	// representable.
	mag := uint64(cents)
	if cents < 0 {
		sign = "-"
		mag = -mag
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(mag/100), mag%100)
}

func groupThousands(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	out = append(out, s[:first]...)
	for i := first; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
