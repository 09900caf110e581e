package domain

import (
	"fmt"
	"time"
	"unicode"
)

// fallbackCustomerCode is used when a customer name yields no alphanumeric
// characters to build a code from.
const fallbackCustomerCode = "UC"

// CustomerCode derives the identifier prefix from a customer name: the first
// three alphanumeric characters, uppercased. Names with no alphanumeric
// characters fall back to "UC".
func CustomerCode(customer string) string {
	var code []rune
	for _, r := range customer {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			code = append(code, unicode.ToUpper(r))
		}
		if len(code) == 3 {
			break
		}
	}
	if len(code) == 0 {
		return fallbackCustomerCode
	}
	return string(code)
}

// FormatPlanID builds a readable plan identifier of the form
// {CODE}-{YYYY}-{MM}-{SEQ:03d}, e.g. ACM-2025-09-003. Identifiers are
// generated once at creation time and never change.
func FormatPlanID(customer string, at time.Time, seq int) string {
	return fmt.Sprintf("%s-%04d-%02d-%03d", CustomerCode(customer), at.Year(), int(at.Month()), seq)
}
