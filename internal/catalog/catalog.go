// Package catalog generates and owns the fixed set of addressable seats
// for a venue.  The catalog is created exactly once per lifetime;
// building a new catalog discards every existing reservation.
package catalog

import (
	"fmt"

	"github.com/eventpass/seat-booking/internal/model"
)

// Catalog holds the ordered seat list plus an index for O(1) lookup by
// seat id.  All seats are created up front and are never added to or
// removed from afterwards.
type Catalog struct {
	seats []model.Seat
	index map[string]int
}

// New builds a catalog of rows × columnsPerRow seats, all available.
// Non-positive dimensions yield an empty catalog.
func New(rows, columnsPerRow int) *Catalog {
	seats := Generate(rows, columnsPerRow)
	idx := make(map[string]int, len(seats))
	for i, s := range seats {
		idx[s.ID] = i
	}
	return &Catalog{seats: seats, index: idx}
}

// Generate produces the deterministic ordered seat sequence for the
// given layout: rows outer, columns inner, ids "<row-letter><1..cols>"
// (A1, A2, ... B1, ...), every seat initialized to available.
func Generate(rows, columnsPerRow int) []model.Seat {
	if rows < 0 {
		rows = 0
	}
	if columnsPerRow < 0 {
		columnsPerRow = 0
	}
	out := make([]model.Seat, 0, rows*columnsPerRow)
	for r := 0; r < rows; r++ {
		label := rowLabel(r)
		for n := 1; n <= columnsPerRow; n++ {
			out = append(out, model.Seat{
				ID:     fmt.Sprintf("%s%d", label, n),
				Status: model.SeatAvailable,
			})
		}
	}
	return out
}

// rowLabel converts a zero-based row index into its letter label in
// spreadsheet style: 0 → A, 25 → Z, 26 → AA.
func rowLabel(i int) string {
	if i < 0 {
		return ""
	}
	var res []rune
	for {
		res = append(res, rune('A'+i%26))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(res)-1; j < k; j, k = j+1, k-1 {
		res[j], res[k] = res[k], res[j]
	}
	return string(res)
}

// Len returns the total number of seats in the catalog.
func (c *Catalog) Len() int { return len(c.seats) }

// Seats returns a copy of the ordered seat list.  Callers may inspect
// or serialize the copy freely without racing catalog mutations.
func (c *Catalog) Seats() []model.Seat {
	out := make([]model.Seat, len(c.seats))
	copy(out, c.seats)
	return out
}

// Get returns a copy of the seat with the given id.  The second result
// is false when no such seat exists.
func (c *Catalog) Get(id string) (model.Seat, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Seat{}, false
	}
	return c.seats[i], true
}

// Transition applies a status change to the named seat.  It is the
// only write path into the seat list; the booking service serializes
// access to it.  Holder is kept only for booked seats, any other
// status clears it.  Returns false when the seat does not exist.
func (c *Catalog) Transition(id string, status model.SeatStatus, holder string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	if status != model.SeatBooked {
		holder = ""
	}
	c.seats[i].Status = status
	c.seats[i].Holder = holder
	return true
}
