package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRupiah renders an integer amount the way id-ID prints it: "Rp260.000".
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRp%s", sign, formatThousand(amount))
}

// FormatRupiahPerPerson is the per-seat label used next to option pickers.
func FormatRupiahPerPerson(amount int64) string {
	return FormatRupiah(amount) + "/org"
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
