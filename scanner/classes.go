package scanner

// isWhitespace reports whether b is horizontal tab, space, or line feed.
// The filter has already normalized all line-ending forms to bare LF by
// the time bytes reach the scanner.
func isWhitespace(b byte) bool {
	return b == '\t' || b == ' ' || b == '\n'
}

// isLegalVisible reports whether b is visible-print ASCII (0x21-0x7E).
func isLegalVisible(b byte) bool {
	return b >= 0x21 && b <= 0x7E
}

// isAtomic reports whether b forms a complete one-byte token whenever it
// is the first byte read: it never combines with what follows. This
// includes every inclusive- and exclusive-stop character too, since
// those rules only govern continuation bytes, not c0.
func isAtomic(b byte) bool {
	switch b {
	case '(', ')', '[', ']', ',', '%', ';', '"', '\'', '`', '{', '}':
		return true
	}
	return false
}

// isInclusiveStop reports whether b both ends the current simple token
// and is itself appended to it before the scanner returns. Applies only
// to continuation bytes (c0 is handled by isAtomic).
func isInclusiveStop(b byte) bool {
	switch b {
	case '"', '\'', '`', '{':
		return true
	}
	return false
}

// isExclusiveStop reports whether b ends the current simple token
// without being consumed: it is pushed back for the next read.
func (s *Scanner) isExclusiveStop(b byte) bool {
	if isWhitespace(b) {
		return true
	}
	switch b {
	case '(', ')', '[', ']', ',', '%', ';', '}':
		return true
	}
	return b == s.commentChar()
}
