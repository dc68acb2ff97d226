package bookings

import (
	"net/http"

	"tripbook/internal/shared/apperrors"
	"tripbook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateBooking handles POST /book
// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking fields"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /book [post]
func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusCreated, "Booking created successfully", "booking", booking)
}

// ListBookings handles GET /bookings
// @Summary List all bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} Booking
// @Failure 500 {object} response.ErrorResponse
// @Router /bookings [get]
func (c *Controller) ListBookings(ctx *gin.Context) {
	bookings, err := c.service.ListBookings(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// UpdateBooking handles PUT /booking/:id
// @Summary Patch a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param patch body UpdateBookingRequest true "Fields to change"
// @Success 200 {object} BookingResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /booking/{id} [put]
func (c *Controller) UpdateBooking(ctx *gin.Context) {
	var req UpdateBookingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	booking, err := c.service.UpdateBooking(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, "Booking updated successfully", "booking", booking)
}

// DeleteBooking handles DELETE /booking/:id
// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /booking/{id} [delete]
func (c *Controller) DeleteBooking(ctx *gin.Context) {
	booking, err := c.service.DeleteBooking(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, "Booking deleted successfully", "booking", booking)
}

// UpdatePayment handles PUT /booking/payment/:id
// @Summary Record payment amount and status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param payment body UpdatePaymentRequest true "Payment fields"
// @Success 200 {object} BookingResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /booking/payment/{id} [put]
func (c *Controller) UpdatePayment(ctx *gin.Context) {
	var req UpdatePaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	booking, err := c.service.UpdatePayment(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, "Payment updated successfully", "booking", booking)
}

// GetBookingForInvoice handles GET /bookings/invoice/:id
// @Summary Fetch a booking for invoicing
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} InvoiceBookingResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /bookings/invoice/{id} [get]
func (c *Controller) GetBookingForInvoice(ctx *gin.Context) {
	booking, err := c.service.GetBooking(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, InvoiceBookingResponse{Booking: booking})
}

// bindJSON decodes the body and writes a 400 on malformed input
func bindJSON(ctx *gin.Context, dest interface{}) bool {
	if err := ctx.ShouldBindJSON(dest); err != nil {
		response.Error(ctx, apperrors.ValidationError{Msg: "invalid request body", Err: err})
		return false
	}
	return true
}
