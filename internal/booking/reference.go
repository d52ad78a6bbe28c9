package booking

import (
	"strconv"
	"sync"
	"time"
)

// refSource synthesizes payment references of the form
// "REF-<milliseconds>".  The suffix is seeded from the wall clock but
// forced strictly increasing, so references stay unique under rapid
// repeated confirmation or a clock stepping backwards.
type refSource struct {
	mu   sync.Mutex
	last int64
}

func newRefSource() *refSource {
	return &refSource{}
}

// next returns a fresh, unique payment reference.
func (r *refSource) next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= r.last {
		now = r.last + 1
	}
	r.last = now
	return "REF-" + strconv.FormatInt(now, 10)
}
