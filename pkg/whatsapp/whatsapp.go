// Package whatsapp builds WhatsApp deep links for delegation contacts.
package whatsapp

import (
	"net/url"
	"strings"
)

// BuildURL returns a WhatsApp deep link for the given phone and message.
// With a phone number the link targets that contact; without one it opens the
// share sheet. Everything but digits and a leading + is stripped from the
// phone number.
func BuildURL(phone, message string) string {
	encoded := url.QueryEscape(message)
	if phone != "" {
		return "https://api.whatsapp.com/send/?phone=" + cleanPhone(phone) + "&text=" + encoded
	}
	return "https://wa.me/?text=" + encoded
}

func cleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
