package invoices

// InvoiceResult carries the retrieval and share links of a rendered invoice
type InvoiceResult struct {
	ImageURL    string `json:"imageUrl"`
	WhatsappURL string `json:"whatsappURL"`
}
