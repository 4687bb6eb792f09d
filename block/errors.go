package block

import (
	"errors"
	"io"

	"github.com/canidlogic/shastina-go/decode"
	"github.com/canidlogic/shastina-go/filter"
	"github.com/canidlogic/shastina-go/scanner"
)

// classify maps an error surfaced by the filter, scanner, or decode
// packages to the ErrorKind a Reader latches. Plain io.EOF never reaches
// here: callers check for it before classifying.
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, filter.ErrBadSignature):
		return ErrBadSignature
	case errors.Is(err, filter.ErrIO):
		return ErrIO
	case errors.Is(err, scanner.ErrUnexpectedEOF):
		return ErrUnexpectedEOF
	case errors.Is(err, scanner.ErrOpenString):
		return ErrOpenString
	case errors.Is(err, scanner.ErrHugeBlock):
		return ErrHugeBlock
	case errors.Is(err, scanner.ErrNullChar):
		return ErrNullChar
	case errors.Is(err, scanner.ErrDeepCurly):
		return ErrDeepCurly
	case errors.Is(err, scanner.ErrBadChar):
		return ErrBadChar
	case errors.Is(err, scanner.ErrLongToken):
		return ErrLongToken
	case errors.Is(err, scanner.ErrTrailingContent):
		return ErrTrailingContent
	case errors.Is(err, scanner.ErrTokenChar):
		return ErrTokenChar
	case errors.Is(err, decode.ErrUnmappedEscape):
		return ErrUnmappedEscape
	default:
		return ErrIO
	}
}

// isCleanEOF reports whether err is a plain end of input rather than a
// failure that should be latched.
func isCleanEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
