// Package booking implements the reservation state machine: a single
// per-actor session holding at most one pending seat against an
// injected seat catalog.  Every operation is a pure local state
// mutation; invalid transitions are benign no-ops reported through
// boolean results, never errors.
package booking

import (
	"sync"

	"github.com/google/uuid"

	"github.com/eventpass/seat-booking/internal/catalog"
	"github.com/eventpass/seat-booking/internal/model"
	"github.com/eventpass/seat-booking/internal/ticket"
)

// Service owns the seat catalog and the reservation session.  The
// booking model is single-actor, but the HTTP surface can reach the
// service from several connections at once, so all state access is
// serialized behind a mutex.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	session model.Session
	refs    *refSource
}

// Snapshot is the read model handed to the presentation layer for
// routing and view decisions.
type Snapshot struct {
	SessionID      string       `json:"session_id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	HasAvatar      bool         `json:"has_avatar"`
	SelectedSeatID string       `json:"selected_seat_id,omitempty"`
	TicketID       string       `json:"ticket_id,omitempty"`
	Seats          []model.Seat `json:"seats"`
}

// NewService constructs a booking service around the provided catalog
// and starts a fresh session.  The catalog must be non-nil.
func NewService(cat *catalog.Catalog) *Service {
	if cat == nil {
		panic("nil catalog passed to NewService")
	}
	return &Service{
		catalog: cat,
		session: model.Session{ID: uuid.NewString()},
		refs:    newRefSource(),
	}
}

// SetIdentity records the attendee display name and contact address.
func (s *Service) SetIdentity(name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Name = name
	s.session.Email = email
}

// SetAvatar stores the raw bytes of the uploaded avatar image.  The
// image is decoded lazily by the export pipeline, not here.
func (s *Service) SetAvatar(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Avatar = data
}

// SelectSeat tentatively holds the named seat for the session.  The
// target must currently be available; in that case the session's
// previous pending seat (if any, and if still pending) reverts to
// available and the target becomes pending, as one atomic replace.
// Selecting an unknown or non-available seat changes nothing at all —
// in particular it does not clear an existing valid pending selection —
// and reports false.
func (s *Service) SelectSeat(seatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.catalog.Get(seatID)
	if !ok || target.Status != model.SeatAvailable {
		return false
	}
	if prev := s.session.SelectedSeatID; prev != "" && prev != seatID {
		if seat, ok := s.catalog.Get(prev); ok && seat.Status == model.SeatPending {
			s.catalog.Transition(prev, model.SeatAvailable, "")
		}
	}
	s.catalog.Transition(seatID, model.SeatPending, "")
	s.session.SelectedSeatID = seatID
	return true
}

// ConfirmBooking finalizes the session's pending seat: the seat becomes
// booked with the session's display name as holder, and a unique
// payment reference is synthesized and pinned to the session.  When no
// seat is pending the call reports false and nothing changes.
func (s *Service) ConfirmBooking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.session.SelectedSeatID
	if id == "" {
		return false
	}
	seat, ok := s.catalog.Get(id)
	if !ok || seat.Status != model.SeatPending {
		return false
	}
	s.catalog.Transition(id, model.SeatBooked, s.session.Name)
	s.session.PaymentReference = s.refs.next()
	return true
}

// ReleaseSeat unconditionally returns the named seat to available and
// clears its holder.  This is the administrative cleanup path: it acts
// on the seat alone and deliberately leaves every session's
// selectedSeatID bookkeeping untouched.  Reports false only for an
// unknown seat id.
func (s *Service) ReleaseSeat(seatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Transition(seatID, model.SeatAvailable, "")
}

// ResetSession discards the current session and starts a fresh one
// with a new id.  A seat the old session still held pending reverts to
// available; booked seats are untouched.
func (s *Service) ResetSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev := s.session.SelectedSeatID; prev != "" {
		if seat, ok := s.catalog.Get(prev); ok && seat.Status == model.SeatPending {
			s.catalog.Transition(prev, model.SeatAvailable, "")
		}
	}
	s.session = model.Session{ID: uuid.NewString()}
}

// Snapshot returns the session read model together with a copy of the
// full seat list.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		SessionID:      s.session.ID,
		Name:           s.session.Name,
		Email:          s.session.Email,
		HasAvatar:      s.session.HasAvatar(),
		SelectedSeatID: s.session.SelectedSeatID,
		TicketID:       ticket.DeriveID(s.session.PaymentReference),
		Seats:          s.catalog.Seats(),
	}
}

// Seats returns a copy of the ordered seat list.
func (s *Service) Seats() []model.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Seats()
}

// Seat returns a copy of the named seat; the second result is false
// for an unknown id.
func (s *Service) Seat(id string) (model.Seat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Get(id)
}

// Complete reports whether the booking holds everything the ticket
// view needs: name, email, avatar, a selected seat and a payment
// reference.  While any of these is missing the presentation layer
// must show an incomplete-booking notice and withhold export actions.
func (s *Service) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Name != "" &&
		s.session.Email != "" &&
		s.session.HasAvatar() &&
		s.session.SelectedSeatID != "" &&
		s.session.PaymentReference != ""
}

// Session returns a copy of the current session record.  The avatar
// byte slice is shared, not copied; callers must treat it as
// read-only.
func (s *Service) Session() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
