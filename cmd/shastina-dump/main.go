// Command shastina-dump reads a Shastina structured-source file and
// prints every token and decoded string literal it contains, one per
// line. It is a demonstration driver for the block package, not a
// parser: it has no notion of the surrounding document grammar beyond
// the |; terminator.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/canidlogic/shastina-go/block"
	"github.com/canidlogic/shastina-go/entity"
	"github.com/canidlogic/shastina-go/filter"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("shastina-dump: ")

	input := flag.String("input", "-", "input file, or - for stdin")
	commentChar := flag.String("comment-char", "#", "comment introducer byte (# or &)")
	outputEncoding := flag.String("output-encoding", "utf8", "entity output encoding: utf8, cesu8, utf16le, utf16be, utf32le, utf32be")
	strict := flag.Bool("strict", false, "force unpaired surrogates through the encoding table instead of the output encoding")
	flag.Parse()

	if len(*commentChar) != 1 {
		log.Fatalf("-comment-char must be exactly one byte, got %q", *commentChar)
	}
	override, err := parseOverride(*outputEncoding)
	if err != nil {
		log.Fatal(err)
	}

	r, err := openInput(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	if err := dump(r, (*commentChar)[0], override, *strict); err != nil {
		log.Fatal(err)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

func parseOverride(name string) (entity.Override, error) {
	switch name {
	case "utf8":
		return entity.OverrideUTF8, nil
	case "cesu8":
		return entity.OverrideCESU8, nil
	case "utf16le":
		return entity.OverrideUTF16LE, nil
	case "utf16be":
		return entity.OverrideUTF16BE, nil
	case "utf32le":
		return entity.OverrideUTF32LE, nil
	case "utf32be":
		return entity.OverrideUTF32BE, nil
	default:
		return 0, fmt.Errorf("unknown -output-encoding %q", name)
	}
}

// dump reads one complete document from src, printing each token and
// string literal it contains.
func dump(src io.Reader, commentChar byte, override entity.Override, strict bool) error {
	f := filter.NewFromReader(src)
	rd := block.NewReader()
	rd.Scanner.CommentIntroducer = commentChar
	dm := newDefaultMap()

	for {
		if err := rd.ReadToken(f); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("unexpected end of input before |; terminator")
			}
			kind, line := rd.Status()
			return fmt.Errorf("line %d: %s", line, kind)
		}

		tokData, _ := rd.Bytes(false)
		tokenLine := rd.Line()
		tokenStr := string(tokData)

		stringType, isString := stringTypeFor(tokenStr)
		if !isString {
			fmt.Printf("%d token %q\n", tokenLine, tokenStr)
			if tokenStr == "|;" {
				if err := rd.Scanner.ExpectEOFAfterTerminator(f); err != nil {
					return fmt.Errorf("trailing content after |;: %w", err)
				}
				return nil
			}
			continue
		}

		if err := rd.ReadString(f, block.StringSpec{
			Type:   stringType,
			Output: override,
			Strict: strict,
			Map:    dm,
		}); err != nil {
			kind, line := rd.Status()
			return fmt.Errorf("line %d: %s", line, kind)
		}
		strData, _ := rd.Bytes(false)
		fmt.Printf("%d string %q\n", tokenLine, strData)
	}
}

func stringTypeFor(token string) (block.StringType, bool) {
	switch token {
	case `"`:
		return block.StringDoubleQuote, true
	case `'`:
		return block.StringApostrophe, true
	case `{`:
		return block.StringCurly, true
	default:
		return 0, false
	}
}
