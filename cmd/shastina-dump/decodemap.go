package main

import "github.com/canidlogic/shastina-go/entity"

// trieNode is one node of the default decoding map below.
type trieNode struct {
	children  map[byte]*trieNode
	code      entity.Code
	hasEntity bool
}

// defaultMap is a minimal decode.Map for the dump CLI: every printable
// ASCII byte passes through unchanged, plus the common backslash
// escapes. A real caller parsing a specific Shastina dialect would
// supply its own map; this one only exists so the CLI has something to
// decode string literals with out of the box.
type defaultMap struct {
	root *trieNode
	cur  *trieNode
}

func newDefaultMap() *defaultMap {
	m := &defaultMap{root: &trieNode{}}
	m.cur = m.root
	for b := byte(0x20); b <= 0x7E; b++ {
		m.add(string([]byte{b}), entity.Code(b))
	}
	m.add(`\n`, entity.Code('\n'))
	m.add(`\t`, entity.Code('\t'))
	m.add(`\r`, entity.Code('\r'))
	m.add(`\\`, entity.Code('\\'))
	m.add(`\"`, entity.Code('"'))
	m.add(`\'`, entity.Code('\''))
	m.add(`\{`, entity.Code('{'))
	m.add(`\}`, entity.Code('}'))
	return m
}

func (m *defaultMap) add(key string, code entity.Code) {
	n := m.root
	for i := 0; i < len(key); i++ {
		b := key[i]
		if n.children == nil {
			n.children = make(map[byte]*trieNode)
		}
		child, ok := n.children[b]
		if !ok {
			child = &trieNode{}
			n.children[b] = child
		}
		n = child
	}
	n.code = code
	n.hasEntity = true
}

func (m *defaultMap) Reset() {
	m.cur = m.root
}

func (m *defaultMap) Branch(b byte) bool {
	if m.cur.children == nil {
		return false
	}
	child, ok := m.cur.children[b]
	if !ok {
		return false
	}
	m.cur = child
	return true
}

func (m *defaultMap) Entity() (entity.Code, bool) {
	return m.cur.code, m.cur.hasEntity
}
