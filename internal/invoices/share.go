package invoices

import (
	"fmt"
	"net/url"
	"strings"
)

// ShareMessage is the pre-filled text sent alongside an invoice link
func ShareMessage(req InvoiceRequest, imageURL string) string {
	return fmt.Sprintf(
		"Hello %s, your trip from %s to %s on %s is confirmed. Amount: %s. Invoice: %s",
		req.CustomerName, req.From, req.To, req.Date, req.Amount.String(), imageURL,
	)
}

// BuildShareURL builds a messaging deep link addressed to contact
func BuildShareURL(baseURL, contact, text string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return baseURL + digitsOnly(contact) + "?text=" + encoded
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
