package invoices

import (
	"fmt"
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

// GenerateInvoice handles POST /generate-invoice
// @Summary Render an invoice image and share link
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body InvoiceRequest true "Invoice fields"
// @Success 200 {object} InvoiceResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /generate-invoice [post]
func (c *Controller) GenerateInvoice(ctx *gin.Context) {
	var req InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, apperrors.ValidationError{Msg: "invalid request body", Err: err})
		return
	}

	result, err := c.service.RenderInvoice(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetReceiptPDF handles GET /bookings/invoice/:id/pdf
// @Summary Download a PDF receipt for a booking
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Booking ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /bookings/invoice/{id}/pdf [get]
func (c *Controller) GetReceiptPDF(ctx *gin.Context) {
	pdf, filename, err := c.service.RenderReceiptPDF(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.Error(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
