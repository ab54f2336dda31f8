package cesu8

import (
	"unicode/utf8"
	"unsafe"

	"github.com/wippyai/cesu8/internal/surrogate"
)

// Encode converts a UTF-8 string to its CESU-8 byte sequence. Encoding
// cannot fail: every valid string is representable.
//
// When the string's CESU-8 form is identical to its UTF-8 bytes (no
// supplementary scalars, and no NUL in the Java variant) the bytes are
// returned unchanged; with ZeroCopy set that fast path aliases the
// string's backing bytes and performs no allocation. Otherwise a
// single buffer of exactly EncodedLen bytes is allocated and each
// supplementary scalar is expanded to its 6-byte surrogate pair form.
//
// The string is assumed to be valid UTF-8, which is the decoder's job
// to establish. Bytes that do not form a valid sequence are copied
// through verbatim.
func (e *Encoder) Encode(s string) []byte {
	if validVariant(s, e.opts.Variant) {
		if e.opts.ZeroCopy {
			return unsafe.Slice(unsafe.StringData(s), len(s))
		}
		return []byte(s)
	}
	return e.encodeSlow(s)
}

func (e *Encoder) encodeSlow(s string) []byte {
	out := make([]byte, 0, encodedLen(s, e.opts.Variant))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			// Invalid byte: pass through, see Encode.
			out = append(out, s[i])
			i++
			continue
		}
		switch {
		case r == 0 && e.opts.Variant == Java:
			out = append(out, 0xC0, 0x80)
		case r < surrogate.Self:
			out = append(out, s[i:i+size]...)
		default:
			hi, lo := surrogate.Split(r)
			out = surrogate.AppendTriple(out, hi)
			out = surrogate.AppendTriple(out, lo)
		}
		i += size
	}
	return out
}

// EncodedLen returns the number of bytes Encode will produce for s.
func (e *Encoder) EncodedLen(s string) int {
	return encodedLen(s, e.opts.Variant)
}

// EncodedLen returns the number of bytes the Standard-variant Encode
// will produce for s.
func EncodedLen(s string) int {
	return encodedLen(s, Standard)
}

func encodedLen(s string, variant Variant) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			n++
			i++
			continue
		}
		switch {
		case r == 0 && variant == Java:
			n += 2
		case r < surrogate.Self:
			n += size
		default:
			n += 6
		}
		i += size
	}
	return n
}

// AppendEncode appends the CESU-8 form of s to dst and returns the
// extended slice.
func (e *Encoder) AppendEncode(dst []byte, s string) []byte {
	if validVariant(s, e.opts.Variant) {
		return append(dst, s...)
	}
	return append(dst, e.encodeSlow(s)...)
}
