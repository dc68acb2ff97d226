package invoices

import (
	_ "embed"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"
)

//go:embed templates/invoice.html
var defaultTemplate string

// Invoice template tokens
const (
	TokenCustomerName = "customer_name"
	TokenFrom         = "from"
	TokenTo           = "to"
	TokenDate         = "date"
	TokenAmount       = "amount"
	TokenContactNo    = "contact_no"
	TokenInvoiceNo    = "invoice_no"
	TokenIssuedAt     = "issued_at"
)

const (
	tokenStart = "{{"
	tokenEnd   = "}}"
)

// Template performs single-pass named-token substitution. Substituted values
// are never scanned again, so a value that looks like a token stays literal.
// Every value is HTML-escaped on the way in: the browser displays the exact
// input text (O'Brien), while the markup carries the escaped form (O&#39;Brien).
type Template struct {
	tpl *fasttemplate.Template
}

// LoadTemplate reads the template at path, or the built-in one when path is empty
func LoadTemplate(path string) (*Template, error) {
	if path == "" {
		return ParseTemplate(defaultTemplate)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read invoice template: %w", err)
	}
	return ParseTemplate(string(raw))
}

func ParseTemplate(text string) (*Template, error) {
	tpl, err := fasttemplate.NewTemplate(text, tokenStart, tokenEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse invoice template: %w", err)
	}
	return &Template{tpl: tpl}, nil
}

// Render substitutes HTML-escaped values. Unknown tokens are left in place.
func (t *Template) Render(values map[string]string) string {
	return t.tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		value, ok := values[strings.TrimSpace(tag)]
		if !ok {
			return io.WriteString(w, tokenStart+tag+tokenEnd)
		}
		return io.WriteString(w, html.EscapeString(value))
	})
}
