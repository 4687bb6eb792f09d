// Package buffer provides the growable output byte buffer and the
// monotonically-widening scratch buffer shared by the scanner, block,
// and entity-encoder packages. Both follow the sticky-error, no-op-after-
// failure discipline of github.com/oy3o/codec's Reader/Writer: callers are
// expected to check the returned error once and stop feeding the buffer
// after the first failure, rather than have the buffer itself retain an
// error.
package buffer

// MaxBuffer is the hard ceiling on buffer capacity. The last slot is
// always reserved for a terminating zero byte, so the largest usable
// payload is MaxBuffer-1 bytes.
const MaxBuffer = 32767

// initialCapacity is the capacity a freshly created Buffer starts with.
const initialCapacity = 32

// Buffer is a growable byte container with a hard maximum size and a
// sticky null-byte-seen flag. The byte at index Len() is always zero.
type Buffer struct {
	data     []byte
	length   int
	nullSeen bool
}

// New creates an empty Buffer at the default initial capacity.
func New() *Buffer {
	return &Buffer{data: make([]byte, initialCapacity)}
}

// Clear resets the buffer to empty and clears the null-seen flag. The
// backing memory is zeroed.
func (b *Buffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.length = 0
	b.nullSeen = false
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	return b.length
}

// NullSeen reports whether a NUL byte has been appended since the last
// Clear.
func (b *Buffer) NullSeen() bool {
	return b.nullSeen
}

// Append appends one byte, growing capacity by doubling (clamped at
// MaxBuffer) as needed. It fails with ErrOutOfRoom when the buffer is
// already at MaxBuffer capacity and the byte would not fit. A failed
// append does not alter the buffer's length.
func (b *Buffer) Append(c byte) error {
	// Need room for the new byte plus the reserved trailing zero.
	if b.length+2 > len(b.data) {
		if err := b.grow(b.length + 2); err != nil {
			return err
		}
	}
	b.data[b.length] = c
	b.length++
	b.data[b.length] = 0
	if c == 0 {
		b.nullSeen = true
	}
	return nil
}

// AppendBytes appends each byte of p in turn, stopping at the first
// failure and returning it.
func (b *Buffer) AppendBytes(p []byte) error {
	for _, c := range p {
		if err := b.Append(c); err != nil {
			return err
		}
	}
	return nil
}

func (b *Buffer) grow(want int) error {
	cur := len(b.data)
	if cur >= MaxBuffer {
		return ErrOutOfRoom
	}
	next := cur
	if next == 0 {
		next = initialCapacity
	}
	for next < want {
		doubled := next * 2
		if doubled <= next || doubled > MaxBuffer {
			next = MaxBuffer
			break
		}
		next = doubled
	}
	if next < want {
		return ErrOutOfRoom
	}
	nd := make([]byte, next)
	copy(nd, b.data[:b.length])
	b.data = nd
	return nil
}

// Bytes returns a view of the held bytes. If wantCString is true and a
// NUL byte has been seen, containsNUL is true and data is nil: a caller
// asking for a C-string view cannot be handed data with an embedded NUL.
func (b *Buffer) Bytes(wantCString bool) (data []byte, containsNUL bool) {
	if wantCString && b.nullSeen {
		return nil, true
	}
	return b.data[:b.length], false
}
