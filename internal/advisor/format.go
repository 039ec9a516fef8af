package advisor

import (
	"math"
	"strconv"
	"strings"
)

// formatAmount renders a currency amount with two decimals and thousand
// separators, e.g. 1234567.8 -> "1,234,567.80". Total over all float64
// inputs: NaN and infinities render as zero so reply rendering never fails,
// whatever the ledger sums to.
func formatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	if neg {
		return "-" + b.String() + frac
	}
	return b.String() + frac
}
