// Package decode implements the decoding-map walker: a greedy
// longest-match driver over a caller-supplied trie, expressed as three
// callbacks rather than a concrete data structure so the core never
// needs to inspect the caller's keys.
package decode

import "github.com/canidlogic/shastina-go/entity"

// Map is the caller-supplied decoding trie. It is opaque to the walker:
// Reset moves to the root, Branch attempts to advance to a child on byte
// b (returning false and leaving the position unchanged if there is no
// such child), and Entity reports whether the current node resolves to
// an entity code.
type Map interface {
	Reset()
	Branch(b byte) bool
	Entity() (entity.Code, bool)
}
