package filter

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFilter(s string) *Filter {
	return NewFromReader(bytes.NewReader([]byte(s)))
}

func TestEmptyFileIsImmediateEOF(t *testing.T) {
	f := newFilter("")
	_, err := f.Next()
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, int64(1), f.Line())
}

func TestBOMOnlyIsEOFAfterBOM(t *testing.T) {
	f := newFilter("\xEF\xBB\xBF")
	_, err := f.Next()
	require.ErrorIs(t, err, io.EOF)
	assert.True(t, f.BOMSeen())
}

func TestBadSignature(t *testing.T) {
	f := newFilter("\xEF\xBB")
	_, err := f.Next()
	require.ErrorIs(t, err, ErrBadSignature)
	assert.Equal(t, int64(1), f.Line())
}

func TestBOMIsStrippedFromOutput(t *testing.T) {
	f := newFilter("\xEF\xBB\xBFa")
	b, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), b)
	assert.True(t, f.BOMSeen())
}

func TestStickySentinels(t *testing.T) {
	f := newFilter("a")
	_, err := f.Next()
	require.NoError(t, err)
	_, err = f.Next()
	require.ErrorIs(t, err, io.EOF)
	// Further reads must keep returning the same sentinel without
	// consulting raw again.
	_, err = f.Next()
	require.ErrorIs(t, err, io.EOF)
}

func readAllBytes(t *testing.T, f *Filter) []byte {
	t.Helper()
	var out []byte
	for {
		b, err := f.Next()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			return out
		}
		out = append(out, b)
	}
}

func TestLineEndingNormalization(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare LF", "a\nb", "a\nb"},
		{"bare CR", "a\rb", "a\nb"},
		{"CRLF", "a\r\nb", "a\nb"},
		{"LFCR", "a\n\rb", "a\nb"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFilter(c.in)
			assert.Equal(t, []byte(c.want), readAllBytes(t, f))
		})
	}
}

func TestLineCounting(t *testing.T) {
	// "a\nb\r\nc\n\rd" => tokens a b c d on lines 1,2,3,4.
	f := newFilter("a\nb\r\nc\n\rd")

	var lines []int64
	var chars []byte
	for {
		b, err := f.Next()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		if b != '\n' {
			chars = append(chars, b)
			lines = append(lines, f.Line())
		}
	}
	assert.Equal(t, []byte("abcd"), chars)
	assert.Equal(t, []int64{1, 2, 3, 4}, lines)
}

func TestPushbackRedeliversByte(t *testing.T) {
	f := newFilter("ab")
	b, err := f.Next()
	require.NoError(t, err)
	require.Equal(t, byte('a'), b)

	require.NoError(t, f.Pushback(b))
	again, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), again)

	next, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('b'), next)
}

func TestPushbackLFDecrementsApparentLine(t *testing.T) {
	f := newFilter("a\nb")
	_, err := f.Next() // 'a', line 1
	require.NoError(t, err)
	lf, err := f.Next() // '\n', line still 1
	require.NoError(t, err)
	require.Equal(t, byte('\n'), lf)

	_, err = f.Next() // 'b', line 2
	require.NoError(t, err)
	require.Equal(t, int64(2), f.Line())

	// Can't meaningfully push back 'b' and then re-push the LF in this
	// simple reader; instead verify the query-time rule directly: push
	// back an LF right after it was delivered and check Line() drops by
	// one without mutating subsequent counting.
	g := newFilter("a\nb")
	_, _ = g.Next() // 'a'
	lfg, _ := g.Next()
	require.Equal(t, byte('\n'), lfg)
	require.NoError(t, g.Pushback(lfg))
	assert.Equal(t, int64(0), g.Line(), "pushed-back LF decrements the apparent line")
	redelivered, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), redelivered)
	assert.Equal(t, int64(1), g.Line(), "line restored once the LF is actually redelivered")
}

func TestPushbackUnavailableBeforeFirstRead(t *testing.T) {
	f := newFilter("a")
	err := f.Pushback('x')
	require.ErrorIs(t, err, ErrPushbackUnavailable)
}

func TestPushbackUnavailableWhenAlreadyPending(t *testing.T) {
	f := newFilter("ab")
	b, _ := f.Next()
	require.NoError(t, f.Pushback(b))
	err := f.Pushback('z')
	require.ErrorIs(t, err, ErrPushbackUnavailable)
}

func TestPushbackUnavailableAfterTerminal(t *testing.T) {
	f := newFilter("")
	_, err := f.Next()
	require.ErrorIs(t, err, io.EOF)
	err = f.Pushback('x')
	require.ErrorIs(t, err, ErrPushbackUnavailable)
}

type ioErrReader struct{}

func (ioErrReader) Read(p []byte) (int, error) { return 0, assert.AnError }

func TestIOErrorIsSticky(t *testing.T) {
	f := NewFromReader(ioErrReader{})
	_, err := f.Next()
	require.ErrorIs(t, err, ErrIO)
	_, err = f.Next()
	require.ErrorIs(t, err, ErrIO)
}
