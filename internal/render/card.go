// Package render turns a fully-populated ticket into downloadable
// artifacts: a raster PNG capture of the card and a single-page A4 PDF
// embedding the same capture.
package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/eventpass/seat-booking/internal/ticket"
)

// Logical card geometry.  The bitmap is this multiplied by the scale
// factor, so the default 2× capture is 840×1200 pixels.
const (
	cardWidth  = 420
	cardHeight = 600

	// DefaultScale is the recommended pixel density multiplier.
	DefaultScale = 2
)

// Card is the explicit render handle for an on-screen ticket: the
// populated details plus the settled avatar image (nil when the avatar
// failed to decode, in which case a monogram placeholder is drawn).
// Export functions receive this handle from their caller instead of
// looking anything up themselves.
type Card struct {
	Details ticket.Details
	Avatar  image.Image
}

// Renderer rasterizes ticket cards at a fixed pixel density.
type Renderer struct {
	scale int
}

// NewRenderer returns a renderer capturing at the given scale; values
// below 1 fall back to DefaultScale.
func NewRenderer(scale int) *Renderer {
	if scale < 1 {
		scale = DefaultScale
	}
	return &Renderer{scale: scale}
}

// Scale returns the configured pixel density multiplier.
func (r *Renderer) Scale() int { return r.scale }

// RenderCard draws the ticket card into an RGBA bitmap.  The area
// outside the rounded card outline stays transparent, matching a
// capture with no explicit background.  Rendering is deterministic:
// identical input state produces an identical bitmap.
func (r *Renderer) RenderCard(card Card) *image.RGBA {
	s := float64(r.scale)
	px := func(v float64) float64 { return v * s }

	dc := gg.NewContext(cardWidth*r.scale, cardHeight*r.scale)
	dc.SetFontFace(basicfont.Face7x13)
	d := card.Details

	// Card body with rounded corners on a transparent canvas.
	dc.DrawRoundedRectangle(px(0), px(0), px(cardWidth), px(cardHeight), px(12))
	dc.SetHexColor("#ffffff")
	dc.Fill()

	// Header band.
	dc.DrawRectangle(px(0), px(0), px(cardWidth), px(190))
	dc.SetHexColor("#eff6ff")
	dc.Fill()

	dc.SetHexColor("#2563eb")
	dc.DrawString("EVENT PASS", px(32), px(44))
	dc.SetHexColor("#0f172a")
	dc.DrawString(d.Event.Name, px(32), px(72))

	dc.SetHexColor("#475569")
	dc.DrawString(d.Event.Schedule, px(32), px(128))
	dc.DrawString(d.Event.Venue, px(32), px(156))

	r.drawAvatar(dc, card, px)

	// Details grid: two columns, labels above values.
	labels := []struct {
		label, value string
		x, y         float64
	}{
		{"ATTENDEE NAME", d.Name, 32, 236},
		{"SEAT NUMBER", d.SeatID, 246, 236},
		{"GATE", d.Event.Gate, 32, 300},
		{"TICKET ID", d.TicketID, 246, 300},
	}
	for _, cell := range labels {
		dc.SetHexColor("#94a3b8")
		dc.DrawString(cell.label, px(cell.x), px(cell.y))
		dc.SetHexColor("#1e293b")
		dc.DrawString(cell.value, px(cell.x), px(cell.y+22))
	}

	// Perforation divider with a dashed line between the cutouts.
	dc.SetHexColor("#e2e8f0")
	dc.SetLineWidth(s)
	dc.SetDash(px(5), px(5))
	dc.DrawLine(px(24), px(360), px(cardWidth-24), px(360))
	dc.Stroke()
	dc.SetDash()

	// QR placeholder block with its caption.  Real QR generation is
	// out of scope; the card shows the reserved area only.
	qx := float64(cardWidth-152) / 2
	dc.DrawRoundedRectangle(px(qx), px(396), px(152), px(152), px(10))
	dc.SetHexColor("#ffffff")
	dc.FillPreserve()
	dc.SetHexColor("#e2e8f0")
	dc.SetLineWidth(s)
	dc.Stroke()
	dc.DrawRectangle(px(qx+12), px(408), px(128), px(128))
	dc.SetHexColor("#f1f5f9")
	dc.Fill()
	dc.SetHexColor("#94a3b8")
	dc.DrawStringAnchored("QR", px(cardWidth)/2, px(472), 0.5, 0.5)
	dc.DrawStringAnchored("SCAN AT THE ENTRANCE", px(cardWidth)/2, px(572), 0.5, 0.5)

	img := dc.Image().(*image.RGBA)

	// Side cutouts are punched after drawing so they stay transparent
	// holes rather than filled circles.
	punchHole(img, 0, int(px(360)), int(px(10)))
	punchHole(img, int(px(cardWidth)), int(px(360)), int(px(10)))
	return img
}

// drawAvatar places the attendee avatar in the header's top-right
// corner, scaled into a 64×64 logical box with rounded clipping.  When
// no decoded avatar is available it draws a monogram placeholder from
// the attendee's first initial.
func (r *Renderer) drawAvatar(dc *gg.Context, card Card, px func(float64) float64) {
	const size = 64.0
	x, y := float64(cardWidth)-32-size, 32.0

	dc.DrawRoundedRectangle(px(x), px(y), px(size), px(size), px(8))
	if card.Avatar == nil {
		dc.SetHexColor("#dbeafe")
		dc.Fill()
		initial := "?"
		if name := strings.TrimSpace(card.Details.Name); name != "" {
			initial = strings.ToUpper(string([]rune(name)[0]))
		}
		dc.SetHexColor("#2563eb")
		dc.DrawStringAnchored(initial, px(x+size/2), px(y+size/2), 0.5, 0.5)
		return
	}

	dc.Clip()
	b := card.Avatar.Bounds()
	dc.Push()
	dc.Translate(px(x), px(y))
	dc.Scale(px(size)/float64(b.Dx()), px(size)/float64(b.Dy()))
	dc.DrawImage(card.Avatar, 0, 0)
	dc.Pop()
	dc.ResetClip()
}

// punchHole clears alpha inside a circle, leaving a transparent cutout.
func punchHole(img *image.RGBA, cx, cy, radius int) {
	b := img.Bounds()
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, color.RGBA{})
			}
		}
	}
}
