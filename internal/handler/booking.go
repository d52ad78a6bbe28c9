// Package handler contains the HTTP handlers of the booking API.
package handler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventpass/seat-booking/internal/booking"
	"github.com/eventpass/seat-booking/internal/model"
	"github.com/eventpass/seat-booking/internal/queue"
	"github.com/eventpass/seat-booking/internal/render"
	queue_publisher "github.com/eventpass/seat-booking/internal/service"
	"github.com/eventpass/seat-booking/internal/ticket"
)

// maxAvatarBytes caps uploaded avatar size.
const maxAvatarBytes = 5 << 20

// BookingHandler exposes the reservation state machine and the ticket
// artifact pipeline over HTTP.  Invalid state transitions are benign:
// the UI guides the actor, so a select on a taken seat or a confirm
// with nothing pending responds 200 with the unchanged state rather
// than an error.
type BookingHandler struct {
	Service  *booking.Service   // reservation state machine and session state
	Renderer *render.Renderer   // raster/PDF capture pipeline
	Event    model.EventInfo    // static venue metadata printed on tickets
	Publish  func(context.Context, queue.BookingConfirmedEvent) error // broker publish hook
}

// NewBookingHandler constructs a BookingHandler.  Service and Renderer
// must be non-nil.  Confirmed bookings are announced through the
// RabbitMQ publisher; failures there never affect the booking itself.
func NewBookingHandler(svc *booking.Service, r *render.Renderer, event model.EventInfo) *BookingHandler {
	if svc == nil || r == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{
		Service:  svc,
		Renderer: r,
		Event:    event,
		Publish:  queue_publisher.PublishBookingConfirmed,
	}
}

// GetSeats handles GET /v1/seats and returns the full ordered seat
// list with statuses.
func (h *BookingHandler) GetSeats(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"seats": h.Service.Seats()})
}

// GetSession handles GET /v1/session and returns the session read
// model used by the presentation layer for routing decisions.
func (h *BookingHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Service.Snapshot())
}

// SetIdentity handles PUT /v1/session/identity.  The body must carry a
// non-empty display name and contact address.
func (h *BookingHandler) SetIdentity(c echo.Context) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	email := strings.TrimSpace(body.Email)
	if name == "" || email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email are required"})
	}
	h.Service.SetIdentity(name, email)
	return c.JSON(http.StatusOK, h.Service.Snapshot())
}

// UploadAvatar handles POST /v1/session/avatar.  It accepts a
// multipart form with an "avatar" file part and stores the raw bytes
// on the session; decoding is deferred to the export pipeline's
// readiness barrier.
func (h *BookingHandler) UploadAvatar(c echo.Context) error {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "avatar file is required"})
	}
	if fh.Size > maxAvatarBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "avatar too large"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read avatar"})
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, maxAvatarBytes+1))
	if err != nil || len(data) == 0 || len(data) > maxAvatarBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not read avatar"})
	}
	h.Service.SetAvatar(data)
	return c.JSON(http.StatusOK, echo.Map{"has_avatar": true})
}

// ResetSession handles POST /v1/session/reset and discards the current
// session; the actor is starting over.
func (h *BookingHandler) ResetSession(c echo.Context) error {
	h.Service.ResetSession()
	return c.JSON(http.StatusOK, h.Service.Snapshot())
}

// SelectSeat handles POST /v1/seats/:id/select.  An unknown seat is
// 404; a seat that is not available leaves all state (including any
// current pending selection) untouched and reports selected=false with
// a 200, since that outcome is an observable result rather than an
// error.
func (h *BookingHandler) SelectSeat(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.Service.Seat(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	}
	selected := h.Service.SelectSeat(id)
	return c.JSON(http.StatusOK, echo.Map{
		"seat_id":  id,
		"selected": selected,
		"seats":    h.Service.Seats(),
	})
}

// ConfirmBooking handles POST /v1/booking/confirm.  With a pending
// seat it books the seat, synthesizes the payment reference and
// announces the confirmation on the broker; with nothing pending it
// responds 200 with confirmed=false and changes nothing.
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	if !h.Service.ConfirmBooking() {
		return c.JSON(http.StatusOK, echo.Map{"confirmed": false})
	}
	sess := h.Service.Session()
	ticketID := ticket.DeriveID(sess.PaymentReference)

	if h.Publish != nil {
		ev := queue.BookingConfirmedEvent{
			SessionID:        sess.ID,
			SeatID:           sess.SelectedSeatID,
			Holder:           sess.Name,
			Email:            sess.Email,
			PaymentReference: sess.PaymentReference,
			TicketID:         ticketID,
			EventName:        h.Event.Name,
			ConfirmedAt:      time.Now().UTC().Format(time.RFC3339),
		}
		go func() { _ = h.Publish(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"confirmed":         true,
		"seat_id":           sess.SelectedSeatID,
		"holder":            sess.Name,
		"payment_reference": sess.PaymentReference,
		"ticket_id":         ticketID,
	})
}

// ReleaseSeat handles DELETE /v1/seats/:id, the administrative release
// path.  The seat returns to available regardless of its current
// status; session bookkeeping is deliberately left alone.
func (h *BookingHandler) ReleaseSeat(c echo.Context) error {
	id := c.Param("id")
	if !h.Service.ReleaseSeat(id) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"seat_id": id, "released": true})
}
