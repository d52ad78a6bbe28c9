package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventpass/seat-booking/internal/model"
	"github.com/eventpass/seat-booking/internal/render"
	"github.com/eventpass/seat-booking/internal/ticket"
)

// GetTicket handles GET /v1/ticket.  The ticket view exists only once
// the booking is complete; until then the handler refuses with the
// incomplete-booking notice and no artifact work happens.
func (h *BookingHandler) GetTicket(c echo.Context) error {
	if !h.Service.Complete() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "incomplete booking"})
	}
	return c.JSON(http.StatusOK, h.ticketDetails(h.Service.Session()))
}

// DownloadPNG handles GET /v1/ticket/png and streams the 2× raster
// capture of the ticket card as an attachment named
// ticket-<seat>.png.
func (h *BookingHandler) DownloadPNG(c echo.Context) error {
	return h.download(c, "png", "image/png", h.Renderer.ExportPNG)
}

// DownloadPDF handles GET /v1/ticket/pdf and streams the single-page
// A4 document embedding the capture, named ticket-<seat>.pdf.
func (h *BookingHandler) DownloadPDF(c echo.Context) error {
	return h.download(c, "pdf", "application/pdf", h.Renderer.ExportPDF)
}

// download runs the shared export path: refuse while the booking is
// incomplete, settle the avatar behind the readiness barrier, then
// hand the card to the requested exporter.
func (h *BookingHandler) download(c echo.Context, ext, contentType string, export func(w io.Writer, card *render.Card) error) error {
	if !h.Service.Complete() {
		return c.JSON(http.StatusConflict, echo.Map{"error": "incomplete booking"})
	}
	sess := h.Service.Session()
	card := h.buildCard(sess)

	var buf bytes.Buffer
	if err := export(&buf, card); err != nil {
		c.Logger().Errorf("ticket export failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	name := ticket.Filename(sess.SelectedSeatID, ext)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

// buildCard assembles the render handle for the session's ticket.  The
// avatar decode goes through the asset barrier: capture starts only
// after every embedded image has settled, and a failed decode settles
// too — the card then falls back to the monogram placeholder.
func (h *BookingHandler) buildCard(sess model.Session) *render.Card {
	assets := render.NewAssetSet()
	if sess.HasAvatar() {
		assets.Add("avatar", bytes.NewReader(sess.Avatar))
	}
	assets.Wait()
	avatar, _ := assets.Image("avatar")
	return &render.Card{
		Details: h.ticketDetails(sess),
		Avatar:  avatar,
	}
}

func (h *BookingHandler) ticketDetails(sess model.Session) ticket.Details {
	return ticket.Details{
		Name:     sess.Name,
		Email:    sess.Email,
		SeatID:   sess.SelectedSeatID,
		TicketID: ticket.DeriveID(sess.PaymentReference),
		Event:    h.Event,
	}
}
