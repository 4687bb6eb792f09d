// Package block implements the block-level façade: a Reader that owns
// an output buffer and a scratch buffer, drives the scanner and decoder
// packages to read one token or one string literal at a time, and
// latches the first failure it encounters exactly like
// github.com/oy3o/codec's Reader/Writer do for wire decoding.
package block

import (
	"github.com/canidlogic/shastina-go/buffer"
	"github.com/canidlogic/shastina-go/decode"
	"github.com/canidlogic/shastina-go/entity"
	"github.com/canidlogic/shastina-go/filter"
	"github.com/canidlogic/shastina-go/scanner"
)

// ErrorKind identifies the kind of failure latched by a Reader. ErrNone
// means no failure has occurred.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrIO
	ErrUnexpectedEOF
	ErrBadSignature
	ErrOpenString
	ErrHugeBlock
	ErrNullChar
	ErrDeepCurly
	ErrBadChar
	ErrLongToken
	ErrTrailingContent
	ErrTokenChar
	ErrUnmappedEscape
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrIO:
		return "io error"
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrBadSignature:
		return "bad BOM signature"
	case ErrOpenString:
		return "unterminated string"
	case ErrHugeBlock:
		return "block too large"
	case ErrNullChar:
		return "NUL byte in string"
	case ErrDeepCurly:
		return "curly string nested too deep"
	case ErrBadChar:
		return "illegal character"
	case ErrLongToken:
		return "token too large"
	case ErrTrailingContent:
		return "trailing content after terminator"
	case ErrTokenChar:
		return "illegal character in token"
	case ErrUnmappedEscape:
		return "unmapped escape sequence"
	default:
		return "unknown error"
	}
}

// StringType selects which of the three string literal forms ReadString
// reads.
type StringType int

const (
	StringDoubleQuote StringType = iota
	StringApostrophe
	StringCurly
)

// EncodingTableFunc is the caller's entity encoding table, forwarded to
// entity.Encoder.
type EncodingTableFunc = entity.EncodingTableFunc

// StringSpec configures one ReadString call: which literal form to
// read, which decoding map resolves escapes, and how resolved entities
// are encoded to bytes.
type StringSpec struct {
	Type          StringType
	Output        entity.Override
	Strict        bool
	EncodingTable EncodingTableFunc
	Map           decode.Map
}

// Reader is the block-level façade. The zero value is not usable; use
// NewReader.
type Reader struct {
	// Scanner configures the token scanner's comment-introducer dialect.
	// Callers may set Scanner.CommentIntroducer before the first read.
	Scanner scanner.Scanner

	buf     *buffer.Buffer
	scratch *buffer.Scratch

	kind ErrorKind
	err  error
	line int64
}

// NewReader creates a Reader ready to read from any filter.Filter.
func NewReader() *Reader {
	return &Reader{
		buf:     buffer.New(),
		scratch: &buffer.Scratch{},
		line:    1,
	}
}

// Status reports the latched error kind (ErrNone if none) and the line
// number it was detected on.
func (r *Reader) Status() (ErrorKind, int64) {
	return r.kind, r.line
}

// Count returns the number of bytes currently held in the output
// buffer.
func (r *Reader) Count() int {
	return r.buf.Len()
}

// Bytes returns a view of the output buffer, per buffer.Buffer.Bytes.
func (r *Reader) Bytes(wantCString bool) (data []byte, containsNUL bool) {
	return r.buf.Bytes(wantCString)
}

// Line returns the line number of the most recently read token or
// string.
func (r *Reader) Line() int64 {
	return r.line
}

// latch records err as the Reader's terminal failure, classifying it
// into an ErrorKind, capturing f's current line, and clearing the output
// buffer. It has no effect if err is a plain io.EOF, which is never
// latched: a clean end of input leaves the Reader able to report ErrNone.
func (r *Reader) latch(f *filter.Filter, err error) {
	if isCleanEOF(err) {
		return
	}
	r.kind = classify(err)
	r.err = err
	r.line = f.Line()
	r.buf.Clear()
}

// ReadToken reads one simple token (or the |; terminator) into the
// output buffer. Once a failure has been latched, it is a no-op that
// returns the same error again without touching f.
func (r *Reader) ReadToken(f *filter.Filter) error {
	if r.kind != ErrNone {
		return r.err
	}
	r.buf.Clear()
	line, err := r.Scanner.ReadToken(f, r.buf)
	r.line = line
	if err != nil {
		r.latch(f, err)
		return err
	}
	return nil
}

// ReadString reads one string literal body (quoted or curly, per
// spec.Type) into the output buffer, decoding escapes through spec.Map
// and encoding entities through an entity.Encoder built from the rest
// of spec. The opening delimiter must already have been consumed by a
// prior ReadToken call. Once a failure has been latched, it is a no-op
// that returns the same error again without touching f.
func (r *Reader) ReadString(f *filter.Filter, spec StringSpec) error {
	if r.kind != ErrNone {
		return r.err
	}
	r.buf.Clear()
	r.line = f.Line()

	enc := &entity.Encoder{
		Table:  spec.EncodingTable,
		Output: spec.Output,
		Strict: spec.Strict,
	}

	var err error
	switch spec.Type {
	case StringDoubleQuote:
		err = r.Scanner.ReadQuotedString(f, '"', r.buf, r.scratch, spec.Map, enc)
	case StringApostrophe:
		err = r.Scanner.ReadQuotedString(f, '\'', r.buf, r.scratch, spec.Map, enc)
	default: // StringCurly
		err = r.Scanner.ReadCurlyString(f, r.buf, r.scratch, spec.Map, enc)
	}

	if err != nil {
		r.latch(f, err)
		return err
	}
	return nil
}
