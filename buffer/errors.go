package buffer

import "errors"

var (
	// ErrOutOfRoom is returned by Buffer.Append when the buffer is already at
	// MaxBuffer capacity and cannot grow to hold one more byte.
	ErrOutOfRoom = errors.New("buffer: out of room, at maximum capacity")

	// ErrScratchTooLarge is returned by Scratch.Widen when the requested size
	// exceeds MaxBuffer.
	ErrScratchTooLarge = errors.New("buffer: requested scratch size exceeds maximum")
)
