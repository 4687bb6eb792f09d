package scanner_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/canidlogic/shastina-go/buffer"
	"github.com/canidlogic/shastina-go/decode"
	"github.com/canidlogic/shastina-go/entity"
	"github.com/canidlogic/shastina-go/filter"
	"github.com/canidlogic/shastina-go/internal/testdecode"
	"github.com/canidlogic/shastina-go/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readToken(t *testing.T, s *scanner.Scanner, src string) (string, int64) {
	t.Helper()
	f := filter.NewFromReader(bytes.NewReader([]byte(src)))
	buf := buffer.New()
	line, err := s.ReadToken(f, buf)
	require.NoError(t, err)
	data, _ := buf.Bytes(false)
	return string(data), line
}

func TestSkipsWhitespaceAndComment(t *testing.T) {
	s := &scanner.Scanner{}
	tok, line := readToken(t, s, "  # a comment\n\tabc\n")
	assert.Equal(t, "abc", tok)
	assert.Equal(t, int64(2), line)
}

func TestAtomicTokenIsSingleByte(t *testing.T) {
	s := &scanner.Scanner{}
	tok, _ := readToken(t, s, "(rest")
	assert.Equal(t, "(", tok)
}

func TestInclusiveStopAsFirstByteIsSingleByte(t *testing.T) {
	s := &scanner.Scanner{}
	tok, _ := readToken(t, s, `"body`)
	assert.Equal(t, `"`, tok)
}

func TestSemicolonAsFirstByteIsSingleByte(t *testing.T) {
	// ';' is also an exclusive-stop character for continuation bytes, but
	// as c0 it is atomic: a standalone ";" token, not the start of ";abc".
	s := &scanner.Scanner{}
	tok, _ := readToken(t, s, ";abc")
	assert.Equal(t, ";", tok)
}

func TestCloseBraceAsFirstByteIsSingleByte(t *testing.T) {
	s := &scanner.Scanner{}
	tok, _ := readToken(t, s, "}tail")
	assert.Equal(t, "}", tok)
}

func TestBacktickMidTokenEndsAndIsAppended(t *testing.T) {
	s := &scanner.Scanner{}
	tok, _ := readToken(t, s, "abc`rest")
	assert.Equal(t, "abc`", tok)
}

func TestInclusiveStopEndsAndIsAppended(t *testing.T) {
	s := &scanner.Scanner{}
	tok, _ := readToken(t, s, `abc{rest`)
	assert.Equal(t, "abc{", tok)
}

func TestExclusiveStopEndsWithoutAppending(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte("abc)def")))
	buf := buffer.New()
	_, err := s.ReadToken(f, buf)
	require.NoError(t, err)
	data, _ := buf.Bytes(false)
	assert.Equal(t, "abc", string(data))

	b, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, byte(')'), b)
}

func TestTerminatorToken(t *testing.T) {
	s := &scanner.Scanner{}
	tok, _ := readToken(t, s, "|; trailing")
	assert.Equal(t, "|;", tok)
}

func TestPipeWithoutSemicolonContinuesAsSimpleToken(t *testing.T) {
	s := &scanner.Scanner{}
	tok, _ := readToken(t, s, "|abc def")
	assert.Equal(t, "|abc", tok)
}

func TestBadCharOnFirstByte(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte{0x01}))
	buf := buffer.New()
	_, err := s.ReadToken(f, buf)
	require.ErrorIs(t, err, scanner.ErrBadChar)
}

func TestTokenCharOnLaterByte(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte{'a', 0x01}))
	buf := buffer.New()
	_, err := s.ReadToken(f, buf)
	require.ErrorIs(t, err, scanner.ErrTokenChar)
}

func TestUnexpectedEOFMidToken(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte("abc")))
	buf := buffer.New()
	_, err := s.ReadToken(f, buf)
	require.ErrorIs(t, err, scanner.ErrUnexpectedEOF)
}

func TestEOFBeforeAnyTokenIsPlainEOF(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader(nil))
	buf := buffer.New()
	_, err := s.ReadToken(f, buf)
	require.ErrorIs(t, err, io.EOF)
	require.NotErrorIs(t, err, scanner.ErrUnexpectedEOF)
}

func TestAmpersandCommentDialect(t *testing.T) {
	s := &scanner.Scanner{CommentIntroducer: '&'}
	f := filter.NewFromReader(bytes.NewReader([]byte("& hash is not a comment here\n# abc")))
	buf := buffer.New()
	_, err := s.ReadToken(f, buf)
	require.NoError(t, err)
	data, _ := buf.Bytes(false)
	assert.Equal(t, "#", string(data))
}

func TestExpectEOFAfterTerminatorClean(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte("  \n# trailing comment only\n")))
	require.NoError(t, s.ExpectEOFAfterTerminator(f))
}

func TestExpectEOFAfterTerminatorTrailingContent(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte("  y")))
	err := s.ExpectEOFAfterTerminator(f)
	require.ErrorIs(t, err, scanner.ErrTrailingContent)
}

func TestReadQuotedStringPlain(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte(`hello"rest`)))
	buf := buffer.New()
	var scr buffer.Scratch
	dm := testdecode.Standard()
	enc := &entity.Encoder{Output: entity.OverrideUTF8}
	err := s.ReadQuotedString(f, '"', buf, &scr, dm, enc)
	require.NoError(t, err)
	data, _ := buf.Bytes(false)
	assert.Equal(t, "hello", string(data))

	b, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('r'), b)
}

func TestReadQuotedStringEscapedDelimiterDoesNotClose(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte(`a\"b"`)))
	buf := buffer.New()
	var scr buffer.Scratch
	dm := testdecode.Standard()
	enc := &entity.Encoder{Output: entity.OverrideUTF8}
	err := s.ReadQuotedString(f, '"', buf, &scr, dm, enc)
	require.NoError(t, err)
	data, _ := buf.Bytes(false)
	assert.Equal(t, `a"b`, string(data))
}

func TestReadQuotedStringOpenString(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte("abc")))
	buf := buffer.New()
	var scr buffer.Scratch
	dm := testdecode.Standard()
	enc := &entity.Encoder{Output: entity.OverrideUTF8}
	err := s.ReadQuotedString(f, '"', buf, &scr, dm, enc)
	require.ErrorIs(t, err, scanner.ErrOpenString)
}

func TestReadQuotedStringNullChar(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte{'a', 0, '"'}))
	buf := buffer.New()
	var scr buffer.Scratch
	dm := testdecode.Standard()
	enc := &entity.Encoder{Output: entity.OverrideUTF8}
	err := s.ReadQuotedString(f, '"', buf, &scr, dm, enc)
	require.ErrorIs(t, err, scanner.ErrNullChar)
}

func TestReadCurlyStringNesting(t *testing.T) {
	// {a{b}c} with the outer { already consumed.
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte(`a{b}c}`)))
	buf := buffer.New()
	var scr buffer.Scratch
	dm := testdecode.Standard()
	enc := &entity.Encoder{Output: entity.OverrideUTF8}
	err := s.ReadCurlyString(f, buf, &scr, dm, enc)
	require.NoError(t, err)
	data, _ := buf.Bytes(false)
	assert.Equal(t, "a{b}c", string(data))
}

func TestReadCurlyStringOpenString(t *testing.T) {
	s := &scanner.Scanner{}
	f := filter.NewFromReader(bytes.NewReader([]byte("a{b")))
	buf := buffer.New()
	var scr buffer.Scratch
	dm := testdecode.Standard()
	enc := &entity.Encoder{Output: entity.OverrideUTF8}
	err := s.ReadCurlyString(f, buf, &scr, dm, enc)
	require.ErrorIs(t, err, scanner.ErrOpenString)
}

func TestReadQuotedStringUnmappedEscape(t *testing.T) {
	s := &scanner.Scanner{}
	m := testdecode.New() // no mappings at all
	f := filter.NewFromReader(bytes.NewReader([]byte(`z"`)))
	buf := buffer.New()
	var scr buffer.Scratch
	enc := &entity.Encoder{Output: entity.OverrideUTF8}
	err := s.ReadQuotedString(f, '"', buf, &scr, m, enc)
	require.ErrorIs(t, err, decode.ErrUnmappedEscape)
}
