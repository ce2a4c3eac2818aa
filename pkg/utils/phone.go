package utils

import "strings"

// MaskPhone masks a phone number for logs and user-facing confirmations,
// keeping the country/carrier prefix and the last two digits visible.
// "0500000001" becomes "050*****01".
func MaskPhone(phone string) string {
	if len(phone) <= 5 {
		return strings.Repeat("*", len(phone))
	}
	visible := 3
	tail := 2
	masked := len(phone) - visible - tail
	return phone[:visible] + strings.Repeat("*", masked) + phone[len(phone)-tail:]
}
