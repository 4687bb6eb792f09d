package buffer

import "golang.org/x/exp/constraints"

// MinScratch is the smallest size a non-empty Scratch buffer will widen
// to.
const MinScratch = 8

// Scratch is a reusable temporary byte buffer that only ever widens. It
// amortizes the allocations an entity encoder backend would otherwise
// make on every call: the encoder widens once to the largest required_len
// it has seen and then reuses the same backing array.
type Scratch struct {
	data []byte
}

// Len reports the current scratch length.
func (s *Scratch) Len() int {
	return len(s.data)
}

// Bytes returns the full scratch slice.
func (s *Scratch) Bytes() []byte {
	return s.data
}

// Widen ensures the scratch buffer is at least n bytes, growing by
// doubling from max(current, MinScratch) and clamping at MaxBuffer. If
// the buffer is already big enough, no allocation happens but its
// contents are zeroed regardless: callers must never assume bytes from a
// previous widen survive. It fails with ErrScratchTooLarge iff n exceeds
// MaxBuffer.
func (s *Scratch) Widen(n int) error {
	if n > MaxBuffer {
		return ErrScratchTooLarge
	}
	if n <= 0 {
		n = 0
	}
	if len(s.data) >= n {
		clearBytes(s.data)
		return nil
	}

	next := maxInt(len(s.data), MinScratch)
	for next < n {
		doubled := next * 2
		if doubled <= next || doubled > MaxBuffer {
			next = MaxBuffer
			break
		}
		next = doubled
	}
	s.data = make([]byte, next) // fresh allocation is already zeroed
	return nil
}

// Reset releases the scratch buffer's backing allocation.
func (s *Scratch) Reset() {
	s.data = nil
}

func clearBytes(p []byte) {
	for i := range p {
		p[i] = 0
	}
}

func maxInt[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}
