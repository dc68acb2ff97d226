package invoices

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount accepts a JSON number or a numeric string
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("amount must be a number")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("amount must be a number: %w", err)
	}
	*a = Amount(n)
	return nil
}

// String formats the amount without trailing zeros (2500, 99.5)
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

type InvoiceRequest struct {
	ContactNo    string  `json:"contactNo" validate:"required"`
	CustomerName string  `json:"customerName" validate:"required"`
	From         string  `json:"from" validate:"required"`
	To           string  `json:"to" validate:"required"`
	Date         string  `json:"date" validate:"required"`
	Amount       *Amount `json:"amount" validate:"required,min=0" swaggertype:"number"`
}

func (r *InvoiceRequest) trim() {
	r.ContactNo = strings.TrimSpace(r.ContactNo)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)
	r.Date = strings.TrimSpace(r.Date)
}
