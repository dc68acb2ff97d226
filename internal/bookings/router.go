package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg gin.IRoutes, controller *Controller) {
	rg.POST("/book", controller.CreateBooking)
	rg.GET("/bookings", controller.ListBookings)
	rg.PUT("/booking/:id", controller.UpdateBooking)
	rg.DELETE("/booking/:id", controller.DeleteBooking)
	rg.PUT("/booking/payment/:id", controller.UpdatePayment)
	rg.GET("/bookings/invoice/:id", controller.GetBookingForInvoice)
}

// Route definitions for reference:
//
// POST   /book                    - Create a booking (201)
// GET    /bookings                - List all bookings
// PUT    /booking/:id             - Patch any field except id/createdAt
// DELETE /booking/:id             - Delete, returns the removed booking
// PUT    /booking/payment/:id     - Set paymentAmount and paymentStatus
// GET    /bookings/invoice/:id    - Fetch a booking for invoice rendering
