// Package filter implements the Shastina input filter: a pushbackable
// byte reader that strips an optional UTF-8 byte-order mark, normalizes
// every line-ending convention (bare CR, bare LF, CRLF, LFCR) to a single
// LF, and maintains a saturating, one-based line counter.
//
// The sticky-terminal-state discipline (io.EOF and ErrIO never clear once
// latched) mirrors github.com/oy3o/codec's Reader/Writer: once an error
// is observed, every subsequent call returns the same error without
// touching the underlying source again.
package filter

import (
	"bufio"
	"io"
	"math"
)

// RawInput is the raw byte source a Filter pulls from. It is the Go
// analogue of the C callback `fn(ctx) -> int`: io.EOF signals a clean
// end of stream, any other non-nil error is treated as an I/O error.
type RawInput interface {
	ReadByte() (byte, error)
}

// byteReaderAdapter lets a Filter wrap any io.Reader, reusing a
// bufio.Reader's ReadByte when the source doesn't already implement
// io.ByteReader, the same promotion-when-possible idiom oy3o/codec's
// Reader uses for its own backing io.Reader.
type byteReaderAdapter struct {
	io.ByteReader
}

// FromReader adapts an io.Reader into a RawInput, using it directly if it
// already implements io.ByteReader and wrapping it in a bufio.Reader
// otherwise.
func FromReader(r io.Reader) RawInput {
	if br, ok := r.(io.ByteReader); ok {
		return byteReaderAdapter{br}
	}
	return byteReaderAdapter{bufio.NewReader(r)}
}

// Filter is the Shastina input filter.
type Filter struct {
	raw RawInput

	started   bool
	lastWasLF bool
	line      int64

	bomDone bool
	bomSeen bool

	rawHeld bool
	rawByte byte

	pending    bool
	pendByte   byte
	lineAdjust bool

	err error
}

// New creates a Filter reading from raw. The line counter reports 1 even
// before the first byte is read, matching the block reader's own initial
// "Ok at line 1" state; internally no byte having been read yet is
// tracked separately via started.
func New(raw RawInput) *Filter {
	return &Filter{raw: raw, line: 1}
}

// NewFromReader creates a Filter reading from r via FromReader.
func NewFromReader(r io.Reader) *Filter {
	return New(FromReader(r))
}

// BOMSeen reports whether the stream began with a UTF-8 BOM. Valid only
// after the first successful Next call (or a detected BadSignature).
func (f *Filter) BOMSeen() bool {
	return f.bomSeen
}

// Line returns the apparent line number of the most recently delivered
// byte (an LF counts as part of the line it ends), adjusted for a
// pending LF pushback per the Shastina pushback/line-count rule:
// the decrement is a query-time adjustment, never a mutation of the
// stored counter.
func (f *Filter) Line() int64 {
	if f.pending && f.lineAdjust {
		return satDec(f.line)
	}
	return f.line
}

// Err returns the latched terminal error, or nil.
func (f *Filter) Err() error {
	return f.err
}

// Next returns the next normalized byte. Once a terminal error (io.EOF,
// ErrIO, or ErrBadSignature) has been returned, every subsequent call
// returns the same error without reading from raw again.
func (f *Filter) Next() (byte, error) {
	if f.err != nil {
		return 0, f.err
	}
	if !f.bomDone {
		if err := f.consumeBOM(); err != nil {
			f.err = err
			return 0, err
		}
	}

	var b byte
	replay := f.pending
	if f.pending {
		b = f.pendByte
		f.pending = false
		f.lineAdjust = false
	} else {
		nb, err := f.readNormalized()
		if err != nil {
			f.err = err
			return 0, err
		}
		b = nb
	}

	if !f.started {
		f.started = true
	} else if !replay && f.lastWasLF {
		f.line = satInc(f.line)
	}
	f.lastWasLF = b == '\n'
	return b, nil
}

// Pushback returns one byte to the filter, to be redelivered by the next
// Next call without touching raw. It fails if the filter is terminal, a
// pushback is already pending, or no byte has been successfully read yet.
func (f *Filter) Pushback(b byte) error {
	if f.err != nil || f.pending || !f.started {
		return ErrPushbackUnavailable
	}
	f.pending = true
	f.pendByte = b
	f.lineAdjust = b == '\n'
	return nil
}

// consumeBOM performs the pre-read BOM check. It must run exactly once,
// before the first byte is delivered through Next.
func (f *Filter) consumeBOM() error {
	f.bomDone = true

	b, err := f.readRawByte()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	if b != 0xEF {
		f.unreadRaw(b)
		return nil
	}

	b2, err := f.readRawByte()
	if err != nil {
		if err == io.EOF {
			return ErrBadSignature
		}
		return err
	}
	if b2 != 0xBB {
		return ErrBadSignature
	}

	b3, err := f.readRawByte()
	if err != nil {
		if err == io.EOF {
			return ErrBadSignature
		}
		return err
	}
	if b3 != 0xBF {
		return ErrBadSignature
	}

	f.bomSeen = true
	return nil
}

// readNormalized reads one logical byte, collapsing CR, LF, CRLF, and
// LFCR into a single LF.
func (f *Filter) readNormalized() (byte, error) {
	b, err := f.readRawByte()
	if err != nil {
		return 0, err
	}
	if b != '\r' && b != '\n' {
		return b, nil
	}

	b2, err2 := f.readRawByte()
	if err2 != nil {
		if err2 == io.EOF {
			return '\n', nil
		}
		return 0, err2
	}
	if (b == '\r' && b2 == '\n') || (b == '\n' && b2 == '\r') {
		return '\n', nil
	}
	f.unreadRaw(b2)
	return '\n', nil
}

// readRawByte reads one unnormalized byte, consulting the internal
// one-byte lookahead slot used by CRLF pairing and BOM detection before
// falling through to raw. This slot is independent of the public
// single-slot Pushback.
func (f *Filter) readRawByte() (byte, error) {
	if f.rawHeld {
		f.rawHeld = false
		return f.rawByte, nil
	}
	b, err := f.raw.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, ErrIO
	}
	return b, nil
}

func (f *Filter) unreadRaw(b byte) {
	f.rawHeld = true
	f.rawByte = b
}

func satInc(n int64) int64 {
	if n >= math.MaxInt64 {
		return math.MaxInt64
	}
	return n + 1
}

func satDec(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return n - 1
}
