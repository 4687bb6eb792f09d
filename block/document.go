package block

import (
	"github.com/canidlogic/shastina-go/filter"
)

// Token is one token delivered by ReadDocument: its bytes (valid only
// for the duration of the callback) and the line it started on.
type Token struct {
	Bytes []byte
	Line  int64
}

// IsTerminator reports whether t is the |; terminator token.
func (t Token) IsTerminator() bool {
	return len(t.Bytes) == 2 && t.Bytes[0] == '|' && t.Bytes[1] == ';'
}

// ReadDocument drives r to read every token up to and including the |;
// terminator, calling emit for each one (including the terminator
// itself), then requires that only whitespace and comments follow
// before end of input. This is the shastina.c-level composite built on
// top of Reader's bare ReadToken primitive; callers that only need the
// block-level semantics (e.g. a caller reading string literals
// token-by-token) should call Reader.ReadToken/ReadString directly
// instead.
func ReadDocument(r *Reader, f *filter.Filter, emit func(Token) error) error {
	for {
		if err := r.ReadToken(f); err != nil {
			return err
		}

		data, _ := r.Bytes(false)
		tok := Token{Bytes: append([]byte(nil), data...), Line: r.Line()}
		if err := emit(tok); err != nil {
			return err
		}

		if tok.IsTerminator() {
			return r.Scanner.ExpectEOFAfterTerminator(f)
		}
	}
}
