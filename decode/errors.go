package decode

import "errors"

// ErrUnmappedEscape is returned when the decoding map resolves to "no
// entity" at the node reached by the longest matched prefix.
var ErrUnmappedEscape = errors.New("decode: no entity mapped for matched prefix")
