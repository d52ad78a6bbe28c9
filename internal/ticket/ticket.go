// Package ticket derives the human-facing ticket identity from the
// payment reference and assembles the details printed on the ticket
// card.  Everything here is pure: same input, same output.
package ticket

import (
	"fmt"

	"github.com/eventpass/seat-booking/internal/model"
)

// idPrefix is the brand prefix on every displayed ticket identifier.
const idPrefix = "#EBP-"

// DeriveID turns a payment reference into the display ticket id by
// taking its final four characters: "REF-1700000000123" → "#EBP-0123".
// References shorter than four characters are used whole, without
// padding.  An empty reference yields an empty id, which callers must
// treat as "ticket not yet issued".
func DeriveID(paymentReference string) string {
	if paymentReference == "" {
		return ""
	}
	runes := []rune(paymentReference)
	if len(runes) > 4 {
		runes = runes[len(runes)-4:]
	}
	return idPrefix + string(runes)
}

// Filename builds the artifact file name for a seat and extension,
// e.g. Filename("D2", "png") → "ticket-D2.png".
func Filename(seatID, ext string) string {
	return fmt.Sprintf("ticket-%s.%s", seatID, ext)
}

// Details is the fully-populated content of a ticket card: the
// attendee identity and seat joined with the static event metadata.
type Details struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	SeatID   string          `json:"seat_id"`
	TicketID string          `json:"ticket_id"`
	Event    model.EventInfo `json:"event"`
}
