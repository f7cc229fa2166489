package workflow

import (
	"fmt"
	"strconv"
)

// FormatAmount renders a rupiah amount with dot thousand separators,
// e.g. 7000000 -> "7.000.000".
func FormatAmount(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if negative {
		return "-" + string(out)
	}
	return string(out)
}

// DurationLabel renders a booking duration for display, e.g. "20 Days Working".
func DurationLabel(days int) string {
	return fmt.Sprintf("%d Days Working", days)
}

// PaymentStatusLabel maps the paid flag to its display badge.
func PaymentStatusLabel(isPaid bool) string {
	if isPaid {
		return "SUCCESS"
	}
	return "PENDING"
}
