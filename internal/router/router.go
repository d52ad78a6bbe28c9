// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/eventpass/seat-booking/internal/handler"
)

// RegisterRoutes wires every endpoint of the booking API onto the
// provided Echo instance.  The extra middleware (rate limiting when
// Redis is available) applies to the versioned group only, keeping the
// health check always reachable.
func RegisterRoutes(e *echo.Echo, h *handler.BookingHandler, mw ...echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1", mw...)

	// Seat catalog and the reservation state machine.
	g.GET("/seats", h.GetSeats)
	g.POST("/seats/:id/select", h.SelectSeat)
	g.DELETE("/seats/:id", h.ReleaseSeat)
	g.POST("/booking/confirm", h.ConfirmBooking)

	// Reservation session lifecycle and identity.
	g.GET("/session", h.GetSession)
	g.PUT("/session/identity", h.SetIdentity)
	g.POST("/session/avatar", h.UploadAvatar)
	g.POST("/session/reset", h.ResetSession)

	// Ticket view and artifact downloads.
	g.GET("/ticket", h.GetTicket)
	g.GET("/ticket/png", h.DownloadPNG)
	g.GET("/ticket/pdf", h.DownloadPDF)
}
