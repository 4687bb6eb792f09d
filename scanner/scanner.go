// Package scanner implements the token-level lexical layer that sits on
// top of filter.Filter: skipping whitespace and comments, splitting the
// input into simple tokens, and recognizing the |; terminator. Quoted
// and curly string bodies are read by this package too, but delegate
// entity resolution to decode.Walk and entity.Encoder.
package scanner

import (
	"errors"
	"io"
	"math"

	"github.com/canidlogic/shastina-go/buffer"
	"github.com/canidlogic/shastina-go/decode"
	"github.com/canidlogic/shastina-go/entity"
	"github.com/canidlogic/shastina-go/filter"
)

const defaultCommentIntroducer = '#'

// Scanner holds the small amount of configuration the token scanner
// needs. The zero value is ready to use with '#' as the comment
// introducer.
type Scanner struct {
	// CommentIntroducer selects the byte that starts a line comment. Zero
	// means '#', matching the common dialect; set it to '&' (or any other
	// byte) to scan the other documented dialect.
	CommentIntroducer byte
}

func (s *Scanner) commentChar() byte {
	if s.CommentIntroducer == 0 {
		return defaultCommentIntroducer
	}
	return s.CommentIntroducer
}

// skip consumes whitespace and comments until it finds a byte that
// begins a token, then pushes that byte back. It returns nil once such
// a byte has been found and pushed back, or the underlying read error
// (typically io.EOF) if the input ends first.
func (s *Scanner) skip(f *filter.Filter) error {
	for {
		b, err := f.Next()
		if err != nil {
			return err
		}
		if isWhitespace(b) {
			continue
		}
		if b == s.commentChar() {
			if err := s.skipComment(f); err != nil {
				return err
			}
			continue
		}
		return f.Pushback(b)
	}
}

func (s *Scanner) skipComment(f *filter.Filter) error {
	for {
		b, err := f.Next()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

// ReadToken skips leading whitespace and comments, then reads one
// simple token into buf (which the caller is responsible for clearing
// first). It returns the line number the token started on.
func (s *Scanner) ReadToken(f *filter.Filter, buf *buffer.Buffer) (int64, error) {
	// A clean end of input here means no token was even started: that is
	// ordinary end-of-document, not ErrUnexpectedEOF, so the skip error is
	// returned unwrapped.
	if err := s.skip(f); err != nil {
		return 0, err
	}
	line := f.Line()

	c0, err := f.Next()
	if err != nil {
		return line, wrapEOF(err)
	}
	if !isLegalVisible(c0) {
		return line, ErrBadChar
	}
	if err := buf.Append(c0); err != nil {
		return line, classifyAppendErr(err, true)
	}

	if isAtomic(c0) {
		return line, nil
	}

	if c0 == '|' {
		c1, err := f.Next()
		if err != nil {
			return line, wrapEOF(err)
		}
		if c1 == ';' {
			if err := buf.Append(c1); err != nil {
				return line, classifyAppendErr(err, true)
			}
			return line, nil
		}
		if err := f.Pushback(c1); err != nil {
			return line, err
		}
	}

	for {
		b, err := f.Next()
		if err != nil {
			return line, wrapEOF(err)
		}
		if isWhitespace(b) || s.isExclusiveStop(b) {
			if err := f.Pushback(b); err != nil {
				return line, err
			}
			return line, nil
		}
		if isInclusiveStop(b) {
			if err := buf.Append(b); err != nil {
				return line, classifyAppendErr(err, true)
			}
			return line, nil
		}
		if !isLegalVisible(b) {
			return line, ErrTokenChar
		}
		if err := buf.Append(b); err != nil {
			return line, classifyAppendErr(err, true)
		}
	}
}

// ExpectEOFAfterTerminator skips trailing whitespace and comments after
// a |; token and fails with ErrTrailingContent if anything else
// follows before end of input.
func (s *Scanner) ExpectEOFAfterTerminator(f *filter.Filter) error {
	if err := s.skip(f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return ErrTrailingContent
}

func wrapEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrUnexpectedEOF
	}
	return err
}

func classifyAppendErr(err error, isToken bool) error {
	if errors.Is(err, buffer.ErrOutOfRoom) {
		if isToken {
			return ErrLongToken
		}
		return ErrHugeBlock
	}
	return err
}

// ReadQuotedString reads the body of a quoted string literal up to and
// including its closing delim, decoding escapes through dm and
// appending the resulting entities to buf through enc. The opening
// delimiter must already have been consumed by the caller.
func (s *Scanner) ReadQuotedString(f *filter.Filter, delim byte, buf *buffer.Buffer, scratch *buffer.Scratch, dm decode.Map, enc *entity.Encoder) error {
	for {
		b, err := f.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrOpenString
			}
			return err
		}
		if b == delim {
			return nil
		}
		if b == 0 {
			return ErrNullChar
		}
		if err := f.Pushback(b); err != nil {
			return err
		}

		e, err := decode.Walk(f, dm)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrOpenString
			}
			if errors.Is(err, decode.ErrUnmappedEscape) {
				return err
			}
			return err
		}
		if err := enc.Encode(e, buf, scratch); err != nil {
			if errors.Is(err, buffer.ErrOutOfRoom) {
				return ErrHugeBlock
			}
			return err
		}
	}
}

// ReadCurlyString reads the body of a curly-brace string, tracking
// nesting depth so that embedded, non-terminal { and } bytes are
// decoded as ordinary entities while the matching outer } ends the
// literal. The opening { must already have been consumed by the
// caller.
func (s *Scanner) ReadCurlyString(f *filter.Filter, buf *buffer.Buffer, scratch *buffer.Scratch, dm decode.Map, enc *entity.Encoder) error {
	depth := int64(1)
	for {
		b, err := f.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrOpenString
			}
			return err
		}
		if b == 0 {
			return ErrNullChar
		}

		switch b {
		case '{':
			if depth == math.MaxInt64 {
				return ErrDeepCurly
			}
			depth++
		case '}':
			depth--
			if depth == 0 {
				return nil
			}
		}

		if err := f.Pushback(b); err != nil {
			return err
		}
		e, err := decode.Walk(f, dm)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrOpenString
			}
			if errors.Is(err, decode.ErrUnmappedEscape) {
				return err
			}
			return err
		}
		if err := enc.Encode(e, buf, scratch); err != nil {
			if errors.Is(err, buffer.ErrOutOfRoom) {
				return ErrHugeBlock
			}
			return err
		}
	}
}
