package booking

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpass/seat-booking/internal/catalog"
	"github.com/eventpass/seat-booking/internal/model"
	"github.com/eventpass/seat-booking/internal/ticket"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(catalog.New(10, 10))
}

func pendingSeats(seats []model.Seat) []string {
	var out []string
	for _, s := range seats {
		if s.Status == model.SeatPending {
			out = append(out, s.ID)
		}
	}
	return out
}

func TestSelectSeatHoldsAtMostOnePending(t *testing.T) {
	svc := newTestService(t)

	for _, id := range []string{"A1", "B7", "C5", "D2"} {
		require.True(t, svc.SelectSeat(id))
		assert.Equal(t, []string{id}, pendingSeats(svc.Seats()),
			"after selecting %s exactly that seat must be pending", id)
	}

	snap := svc.Snapshot()
	assert.Equal(t, "D2", snap.SelectedSeatID)
}

func TestSelectSeatOnNonAvailableSeatChangesNothing(t *testing.T) {
	svc := newTestService(t)
	require.True(t, svc.SelectSeat("C5"))
	before := svc.Seats()

	// Re-selecting the pending seat is a no-op that must not clear the
	// valid pending selection.
	assert.False(t, svc.SelectSeat("C5"))
	assert.Equal(t, before, svc.Seats())
	assert.Equal(t, "C5", svc.Snapshot().SelectedSeatID)

	// Same for an unknown seat.
	assert.False(t, svc.SelectSeat("Z99"))
	assert.Equal(t, before, svc.Seats())
	assert.Equal(t, "C5", svc.Snapshot().SelectedSeatID)
}

func TestSelectSeatOnBookedSeatChangesNothing(t *testing.T) {
	svc := newTestService(t)
	svc.SetIdentity("Ada", "ada@example.com")
	require.True(t, svc.SelectSeat("D2"))
	require.True(t, svc.ConfirmBooking())

	before := svc.Seats()
	assert.False(t, svc.SelectSeat("D2"))
	assert.Equal(t, before, svc.Seats())
}

func TestConfirmBookingWithoutPendingSeat(t *testing.T) {
	svc := newTestService(t)
	before := svc.Seats()

	assert.False(t, svc.ConfirmBooking())
	assert.Equal(t, before, svc.Seats())
	assert.Empty(t, svc.Session().PaymentReference)
}

func TestConfirmBookingBooksPendingSeat(t *testing.T) {
	svc := newTestService(t)
	svc.SetIdentity("Ada", "ada@example.com")
	require.True(t, svc.SelectSeat("D2"))
	require.True(t, svc.ConfirmBooking())

	seat, ok := svc.Seat("D2")
	require.True(t, ok)
	assert.Equal(t, model.SeatBooked, seat.Status)
	assert.Equal(t, "Ada", seat.Holder)

	ref := svc.Session().PaymentReference
	require.NotEmpty(t, ref)
	assert.True(t, strings.HasPrefix(ref, "REF-"))

	// Confirming again is a no-op; the seat is booked, not pending.
	assert.False(t, svc.ConfirmBooking())
	assert.Equal(t, ref, svc.Session().PaymentReference)
}

func TestPaymentReferencesAreUniquePerConfirmation(t *testing.T) {
	svc := newTestService(t)
	seen := make(map[string]struct{})

	for i, id := range []string{"A1", "A2", "A3", "A4", "A5"} {
		svc.SetIdentity("Ada", "ada@example.com")
		require.True(t, svc.SelectSeat(id))
		require.True(t, svc.ConfirmBooking())

		ref := svc.Session().PaymentReference
		_, dup := seen[ref]
		assert.False(t, dup, "confirmation %d reused reference %s", i, ref)
		seen[ref] = struct{}{}

		svc.ResetSession()
	}
}

func TestReleaseSeatIsUnconditionalAndLeavesSessionAlone(t *testing.T) {
	svc := newTestService(t)
	svc.SetIdentity("Ada", "ada@example.com")
	require.True(t, svc.SelectSeat("D2"))
	require.True(t, svc.ConfirmBooking())

	require.True(t, svc.ReleaseSeat("D2"))
	seat, _ := svc.Seat("D2")
	assert.Equal(t, model.SeatAvailable, seat.Status)
	assert.Empty(t, seat.Holder)

	// Session bookkeeping is documented as not auto-synced.
	assert.Equal(t, "D2", svc.Snapshot().SelectedSeatID)

	assert.False(t, svc.ReleaseSeat("Z99"))
}

func TestResetSessionRevertsPendingSeatOnly(t *testing.T) {
	svc := newTestService(t)
	oldID := svc.Snapshot().SessionID
	require.True(t, svc.SelectSeat("C5"))

	svc.ResetSession()
	seat, _ := svc.Seat("C5")
	assert.Equal(t, model.SeatAvailable, seat.Status)

	snap := svc.Snapshot()
	assert.NotEqual(t, oldID, snap.SessionID)
	assert.Empty(t, snap.SelectedSeatID)
	assert.Empty(t, snap.Name)
}

func TestCompleteGuard(t *testing.T) {
	svc := newTestService(t)
	assert.False(t, svc.Complete())

	svc.SetIdentity("Ada", "ada@example.com")
	assert.False(t, svc.Complete())

	svc.SetAvatar([]byte{0x89, 0x50})
	assert.False(t, svc.Complete())

	require.True(t, svc.SelectSeat("D2"))
	assert.False(t, svc.Complete(), "payment reference still missing")

	require.True(t, svc.ConfirmBooking())
	assert.True(t, svc.Complete())
}

func TestEndToEndScenario(t *testing.T) {
	svc := newTestService(t)

	require.True(t, svc.SelectSeat("C5"))
	seat, _ := svc.Seat("C5")
	require.Equal(t, model.SeatPending, seat.Status)

	require.True(t, svc.SelectSeat("D2"))
	c5, _ := svc.Seat("C5")
	d2, _ := svc.Seat("D2")
	assert.Equal(t, model.SeatAvailable, c5.Status)
	assert.Equal(t, model.SeatPending, d2.Status)

	svc.SetIdentity("Ada", "ada@example.com")
	require.True(t, svc.ConfirmBooking())

	d2, _ = svc.Seat("D2")
	assert.Equal(t, model.SeatBooked, d2.Status)
	assert.Equal(t, "Ada", d2.Holder)

	ref := svc.Session().PaymentReference
	require.NotEmpty(t, ref)
	id := ticket.DeriveID(ref)
	assert.True(t, strings.HasPrefix(id, "#EBP-"))
	assert.Equal(t, "ticket-D2.png", ticket.Filename("D2", "png"))
}

func TestRefSourceStrictlyIncreasing(t *testing.T) {
	src := newRefSource()
	prev := int64(-1)
	for i := 0; i < 1000; i++ {
		ref := src.next()
		require.True(t, strings.HasPrefix(ref, "REF-"))
		n, err := strconv.ParseInt(strings.TrimPrefix(ref, "REF-"), 10, 64)
		require.NoError(t, err)
		require.Greater(t, n, prev, "references must be strictly increasing")
		prev = n
	}
}
