package invoices

import "github.com/gin-gonic/gin"

// SetupInvoiceRoutes configures invoice rendering routes
func SetupInvoiceRoutes(rg gin.IRoutes, controller *Controller) {
	rg.POST("/generate-invoice", controller.GenerateInvoice)
	rg.GET("/bookings/invoice/:id/pdf", controller.GetReceiptPDF)
}
