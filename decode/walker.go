package decode

import (
	"errors"
	"io"

	"github.com/canidlogic/shastina-go/entity"
)

// ByteSource is the one-byte-at-a-time, single-slot-pushback reader the
// walker drives. *filter.Filter satisfies this interface.
type ByteSource interface {
	Next() (byte, error)
	Pushback(b byte) error
}

// Walk performs one greedy longest-match walk: it resets m to the root,
// feeds bytes from src to m.Branch until a byte fails to extend the
// match, pushes that byte back, and resolves the current node to an
// entity. It returns ErrUnmappedEscape if the matched prefix has no
// entity. An io.EOF after at least one byte has extended the match ends
// the walk the same way a non-matching byte does; an io.EOF before any
// byte matched, and any other error from src, is returned as-is. The
// walker only consumes bytes that participate in the matched prefix, so
// the first non-matching byte is always available to the next Walk call
// or to the caller's end-of-literal detection.
func Walk(src ByteSource, m Map) (entity.Code, error) {
	m.Reset()
	matched := false
	for {
		b, err := src.Next()
		if err != nil {
			if matched && errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if m.Branch(b) {
			matched = true
			continue
		}
		if err := src.Pushback(b); err != nil {
			return 0, err
		}
		break
	}

	e, ok := m.Entity()
	if !ok {
		return 0, ErrUnmappedEscape
	}
	return e, nil
}
