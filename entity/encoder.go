package entity

import (
	"encoding/binary"

	"github.com/canidlogic/shastina-go/buffer"
)

// EncodingTableFunc is the caller-supplied encoding table: given an
// entity code and a candidate output buffer, it returns the number of
// bytes required to encode e. If len(out) >= the returned length, the
// first that-many bytes of out already hold the encoding; otherwise
// nothing was written and the caller must retry with a larger buffer. A
// returned length of 0 means the entity is deliberately dropped.
type EncodingTableFunc func(e Code, out []byte) (requiredLen int)

// Encoder dispatches entity codes to one of seven backends: the
// caller's encoding table, or one of six fixed Unicode transforms
// selected by Output.
type Encoder struct {
	Table  EncodingTableFunc
	Output Override
	Strict bool
}

// Encode appends the byte encoding of e to buf, widening scratch as
// needed for encoding-table retries. Overrides apply only to Unicode
// entities (e <= MaxUnicode); surrogate codepoints bypass the override
// and fall back to the encoding table when Strict is set.
func (enc *Encoder) Encode(e Code, buf *buffer.Buffer, scratch *buffer.Scratch) error {
	mode := enc.Output
	if e > MaxUnicode {
		mode = OverrideNone
	} else if enc.Strict && e.IsSurrogate() {
		mode = OverrideNone
	}

	switch mode {
	case OverrideUTF8:
		return appendUTF8(uint32(e), buf)
	case OverrideCESU8:
		return encodeCESU8(e, buf)
	case OverrideUTF16LE:
		return encodeUTF16(e, buf, binary.LittleEndian)
	case OverrideUTF16BE:
		return encodeUTF16(e, buf, binary.BigEndian)
	case OverrideUTF32LE:
		return encodeUTF32(e, buf, binary.LittleEndian)
	case OverrideUTF32BE:
		return encodeUTF32(e, buf, binary.BigEndian)
	default:
		return enc.encodeTable(e, buf, scratch)
	}
}

// encodeTable drives the caller's encoding table, widening scratch and
// retrying until the table reports a length the scratch buffer can hold.
func (enc *Encoder) encodeTable(e Code, buf *buffer.Buffer, scratch *buffer.Scratch) error {
	if enc.Table == nil {
		return nil
	}
	if scratch.Len() == 0 {
		if err := scratch.Widen(buffer.MinScratch); err != nil {
			return err
		}
	}
	for {
		need := enc.Table(e, scratch.Bytes())
		if need == 0 {
			return nil
		}
		if need <= scratch.Len() {
			return buf.AppendBytes(scratch.Bytes()[:need])
		}
		if err := scratch.Widen(need); err != nil {
			return err
		}
	}
}

// encodeCESU8 matches UTF-8 below the supplementary plane and, at or
// above it, UTF-8-encodes the surrogate pair independently rather than
// emitting the 4-byte UTF-8 form.
func encodeCESU8(e Code, buf *buffer.Buffer) error {
	if e < 0x10000 {
		return appendUTF8(uint32(e), buf)
	}
	high, low := SplitSurrogate(e)
	if err := appendUTF8(uint32(high), buf); err != nil {
		return err
	}
	return appendUTF8(uint32(low), buf)
}

func encodeUTF16(e Code, buf *buffer.Buffer, order binary.ByteOrder) error {
	if e < 0x10000 {
		return appendUint16(uint16(e), buf, order)
	}
	high, low := SplitSurrogate(e)
	if err := appendUint16(high, buf, order); err != nil {
		return err
	}
	return appendUint16(low, buf, order)
}

func encodeUTF32(e Code, buf *buffer.Buffer, order binary.ByteOrder) error {
	var tmp [4]byte
	order.PutUint32(tmp[:], uint32(e))
	return buf.AppendBytes(tmp[:])
}

func appendUint16(v uint16, buf *buffer.Buffer, order binary.ByteOrder) error {
	var tmp [2]byte
	order.PutUint16(tmp[:], v)
	return buf.AppendBytes(tmp[:])
}

// appendUTF8 appends the standard 1-4 byte UTF-8 encoding of a
// codepoint, including values outside the Unicode range strict UTF-8
// normally rejects (e.g. unpaired surrogates reaching this backend with
// strict mode off).
func appendUTF8(cp uint32, buf *buffer.Buffer) error {
	switch {
	case cp < 0x80:
		return buf.Append(byte(cp))
	case cp < 0x800:
		return buf.AppendBytes([]byte{
			byte(0xC0 | (cp >> 6)),
			byte(0x80 | (cp & 0x3F)),
		})
	case cp < 0x10000:
		return buf.AppendBytes([]byte{
			byte(0xE0 | (cp >> 12)),
			byte(0x80 | ((cp >> 6) & 0x3F)),
			byte(0x80 | (cp & 0x3F)),
		})
	default:
		return buf.AppendBytes([]byte{
			byte(0xF0 | (cp >> 18)),
			byte(0x80 | ((cp >> 12) & 0x3F)),
			byte(0x80 | ((cp >> 6) & 0x3F)),
			byte(0x80 | (cp & 0x3F)),
		})
	}
}
