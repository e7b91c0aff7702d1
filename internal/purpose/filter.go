package purpose

import "github.com/dshills/framescope/internal/buffer"

// Filter returns the ordered sublist of buffers matching the purpose,
// preserving relative order. A nil purpose (no predicate set) returns a
// copy of the input unchanged.
//
// Filter is idempotent: Filter(Filter(s, p), p) == Filter(s, p).
func Filter(s buffer.Set, p *Purpose) buffer.Set {
	if p == nil || p.predicate == nil {
		return s.Clone()
	}

	out := make(buffer.Set, 0, len(s))
	for _, b := range s {
		if p.predicate(b) {
			out = append(out, b)
		}
	}
	return out
}
