package model

// Session is the per-actor, in-memory record of in-progress booking
// state.  It is created when the actor arrives and discarded when the
// actor leaves or explicitly resets.  Nothing here survives a process
// restart.
//
// Fields:
//  ID               – opaque session identifier, regenerated on reset.
//  Name             – attendee display name.
//  Email            – attendee contact address.
//  Avatar           – raw bytes of the uploaded avatar image, nil when
//                     no avatar has been supplied.
//  SelectedSeatID   – id of the seat this session holds or booked;
//                     empty until a seat is selected.
//  PaymentReference – opaque unique token assigned at confirmation
//                     time and immutable thereafter.
type Session struct {
	ID               string
	Name             string
	Email            string
	Avatar           []byte
	SelectedSeatID   string
	PaymentReference string
}

// HasAvatar reports whether the actor supplied an avatar image.
func (s *Session) HasAvatar() bool {
	return len(s.Avatar) > 0
}
