package scanner

import "errors"

var (
	// ErrBadChar is returned when the first byte of a token (or a byte
	// encountered outside a string/comment more generally) is neither
	// visible-print ASCII nor whitespace.
	ErrBadChar = errors.New("scanner: illegal byte outside string or comment")

	// ErrTokenChar is returned when a non-visible-print, non-stop byte is
	// encountered while accumulating the body of a token.
	ErrTokenChar = errors.New("scanner: non-visible-print byte while reading a token")

	// ErrLongToken is returned when a token's byte count would exceed the
	// block buffer's capacity.
	ErrLongToken = errors.New("scanner: token exceeds maximum buffer capacity")

	// ErrHugeBlock is returned when a string literal's decoded output
	// would exceed the block buffer's capacity.
	ErrHugeBlock = errors.New("scanner: block output exceeds maximum buffer capacity")

	// ErrUnexpectedEOF is returned when the input ends mid-token. An end
	// of input reached while skipping whitespace and comments, before any
	// token byte has been read, is returned by ReadToken as plain io.EOF,
	// not as ErrUnexpectedEOF.
	ErrUnexpectedEOF = errors.New("scanner: unexpected end of input while reading a token")

	// ErrTrailingContent is returned when non-whitespace, non-comment
	// bytes follow the |; terminator.
	ErrTrailingContent = errors.New("scanner: non-whitespace content follows the |; terminator")

	// ErrOpenString is returned when the input ends before a string
	// literal's closing delimiter is found.
	ErrOpenString = errors.New("scanner: unterminated string literal")

	// ErrNullChar is returned when a NUL byte appears inside a string
	// literal.
	ErrNullChar = errors.New("scanner: NUL byte inside string literal")

	// ErrDeepCurly is returned when a curly string's nesting counter would
	// overflow.
	ErrDeepCurly = errors.New("scanner: curly string nesting too deep")
)
