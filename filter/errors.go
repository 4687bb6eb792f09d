package filter

import "errors"

var (
	// ErrIO is returned when the raw input source reported an error other
	// than a clean end-of-stream.
	ErrIO = errors.New("filter: underlying raw input reported an error")

	// ErrBadSignature is returned when the stream begins with 0xEF but the
	// following two bytes are not the remainder of a UTF-8 BOM (0xBB 0xBF).
	ErrBadSignature = errors.New("filter: partial UTF-8 byte-order-mark signature")

	// ErrPushbackUnavailable is returned by Pushback when the filter is in a
	// terminal state, a pushback is already pending, or no byte has been
	// successfully read yet.
	ErrPushbackUnavailable = errors.New("filter: pushback unavailable")
)
