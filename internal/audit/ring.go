package audit

// ring is a fixed-size buffer holding the most recent audit entries.
// Callers guard access with their own lock.
type ring struct {
	entries []Entry
	size    int
	pos     int
	full    bool
}

func newRing(n int) *ring {
	if n < 1 {
		n = 1
	}
	return &ring{
		entries: make([]Entry, n),
		size:    n,
	}
}

func (r *ring) add(e Entry) {
	r.entries[r.pos] = e
	r.pos = (r.pos + 1) % r.size
	if r.pos == 0 {
		r.full = true
	}
}

// all returns the stored entries in order, oldest first.
func (r *ring) all() []Entry {
	if !r.full {
		result := make([]Entry, r.pos)
		copy(result, r.entries[:r.pos])
		return result
	}

	result := make([]Entry, r.size)
	copy(result, r.entries[r.pos:])
	copy(result[r.size-r.pos:], r.entries[:r.pos])
	return result
}

// last returns the last n entries. If fewer exist, returns all of them.
func (r *ring) last(n int) []Entry {
	all := r.all()
	if n >= len(all) {
		return all
	}
	return all[len(all)-n:]
}
