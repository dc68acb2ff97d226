package bookings

import (
	"sort"
	"strings"

	"tripbook/internal/shared/apperrors"
)

// validatePatch checks only the fields a patch provides
func validatePatch(req UpdateBookingRequest) error {
	var invalid []string
	for name, val := range map[string]*string{
		"email":   req.Email,
		"contact": req.Contact,
		"from":    req.From,
		"to":      req.To,
	} {
		if val != nil && strings.TrimSpace(*val) == "" {
			invalid = append(invalid, name)
		}
	}
	if req.TripType != nil && !TripType(*req.TripType).IsValid() {
		invalid = append(invalid, "tripType")
	}
	if req.PassengerCount != nil && *req.PassengerCount < 1 {
		invalid = append(invalid, "passenger")
	}
	if req.PaymentAmount != nil && *req.PaymentAmount < 0 {
		invalid = append(invalid, "paymentAmount")
	}
	if req.PaymentStatus != nil && !PaymentStatus(*req.PaymentStatus).IsValid() {
		invalid = append(invalid, "paymentStatus")
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return apperrors.ValidationError{Fields: invalid, Msg: "invalid fields"}
	}
	return nil
}
