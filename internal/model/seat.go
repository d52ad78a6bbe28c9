package model

// SeatStatus enumerates the lifecycle states of a seat.  A seat starts
// as available, becomes pending while a session tentatively holds it,
// and becomes booked once the booking is confirmed.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available" // free for selection
	SeatPending   SeatStatus = "pending"   // tentatively held by the current session
	SeatBooked    SeatStatus = "booked"    // confirmed and assigned to a holder
)

// Seat describes a single addressable seat in the venue layout.  Seats
// are identified by a stable label combining the row letter and the
// column number (e.g. "C5").
//
// Fields:
//  ID     – row letter + column number, unique across the catalog.
//  Status – availability status (available, pending, booked).
//  Holder – display name of the confirming attendee; present only
//           while Status is booked.
type Seat struct {
	ID     string     `json:"id"`
	Status SeatStatus `json:"status"`
	Holder string     `json:"holder,omitempty"`
}
