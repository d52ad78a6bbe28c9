// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a seat booking is confirmed.
// It carries enough for downstream consumers to log or notify without
// reaching back into the process-local booking state.
type BookingConfirmedEvent struct {
	SessionID        string `json:"session_id"`
	SeatID           string `json:"seat_id"`
	Holder           string `json:"holder"`
	Email            string `json:"email"`
	PaymentReference string `json:"payment_reference"`
	TicketID         string `json:"ticket_id"`
	EventName        string `json:"event_name"`
	ConfirmedAt      string `json:"confirmed_at"`
}
