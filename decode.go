package cesu8

import (
	"unicode/utf8"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/cesu8/errors"
	"github.com/wippyai/cesu8/internal/surrogate"
)

// Decode converts a CESU-8 byte sequence to a UTF-8 string.
//
// Input that is already well-formed UTF-8 contains no surrogate
// encodings and is returned as-is without transcoding; that fast path
// performs no allocation when the Decoder was built with ZeroCopy set.
// Otherwise the buffer is re-scanned surrogate-aware into a single
// freshly allocated buffer, combining each 6-byte surrogate pair into
// the scalar's 4-byte UTF-8 form.
//
// The first invalid sequence aborts the call with a *errors.Error
// carrying the failure kind and the byte offset of the sequence start.
// No partial output is ever returned.
func (d *Decoder) Decode(b []byte) (string, error) {
	if utf8.Valid(b) {
		if d.opts.ZeroCopy {
			return unsafe.String(unsafe.SliceData(b), len(b)), nil
		}
		return string(b), nil
	}
	return d.decodeSlow(b)
}

// decodeSlow is the surrogate-aware scan, entered only when the input
// is not plain UTF-8.
func (d *Decoder) decodeSlow(b []byte) (string, error) {
	logger().Debug("surrogate-aware decode", zap.Int("input_len", len(b)))

	buf := make([]byte, 0, len(b))
	i := 0
	for i < len(b) {
		c := b[i]
		switch {
		case c < 0x80:
			buf = append(buf, c)
			i++

		case c < 0xC0:
			// Continuation byte with no lead before it.
			return "", errors.InvalidLead(i, c)

		case c < 0xC2:
			// C0 and C1 can only introduce overlong 2-byte forms. The
			// Java variant carves out exactly one: C0 80 for U+0000.
			if c == 0xC0 && d.opts.Variant == Java {
				if i+1 >= len(b) {
					return "", errors.Incomplete(i, 2, len(b)-i)
				}
				if b[i+1] != 0x80 {
					return "", errors.Overlong(i, c)
				}
				buf = append(buf, 0x00)
				i += 2
				continue
			}
			return "", errors.Overlong(i, c)

		case c < 0xE0:
			if i+1 >= len(b) {
				return "", errors.Incomplete(i, 2, len(b)-i)
			}
			if !isCont(b[i+1]) {
				return "", errors.InvalidContinuation(i, b[i+1])
			}
			buf = append(buf, c, b[i+1])
			i += 2

		case c < 0xF0:
			var err *errors.Error
			buf, i, err = d.decodeTriple(buf, b, i)
			if err != nil {
				return "", err
			}

		case c < 0xF5:
			// Valid UTF-8 4-byte lead, but CESU-8 carries
			// supplementary scalars as surrogate pairs.
			return "", errors.SupplementaryLead(i, c)

		case c < 0xFE:
			return "", errors.OutOfRange(i, c)

		default:
			return "", errors.InvalidLead(i, c)
		}
	}

	return unsafe.String(unsafe.SliceData(buf), len(buf)), nil
}

// decodeTriple consumes one 3-byte sequence starting at i, or six bytes
// when the sequence is a high surrogate followed by its low partner.
// The lead byte b[i] is known to be in E0..EF.
func (d *Decoder) decodeTriple(buf, b []byte, i int) ([]byte, int, *errors.Error) {
	c := b[i]
	if i+1 >= len(b) {
		return nil, 0, errors.Incomplete(i, 3, len(b)-i)
	}
	second := b[i+1]
	if !isCont(second) {
		return nil, 0, errors.InvalidContinuation(i, second)
	}

	// Second-byte range checks per lead, before touching the third
	// byte: E0 with A0..BF (80..9F is overlong), ED with 80..9F
	// (A0..BF is the surrogate range), everything else 80..BF.
	surrogateClass := byte(0) // 0 plain, 'h' high, 'l' low
	switch {
	case c == 0xE0:
		if second < 0xA0 {
			return nil, 0, errors.Overlong(i, c)
		}
	case c == surrogate.Lead:
		switch {
		case second < 0xA0:
			// U+D000..U+D7FF, plain.
		case second < 0xB0:
			surrogateClass = 'h'
		default:
			surrogateClass = 'l'
		}
	}

	if i+2 >= len(b) {
		return nil, 0, errors.Incomplete(i, 3, len(b)-i)
	}
	third := b[i+2]
	if !isCont(third) {
		return nil, 0, errors.InvalidContinuation(i, third)
	}

	switch surrogateClass {
	case 'h':
		hi := surrogate.DecodeTriple(second, third)
		if i+5 < len(b) && b[i+3] == surrogate.Lead && b[i+4] >= 0xB0 && b[i+4] <= 0xBF && isCont(b[i+5]) {
			lo := surrogate.DecodeTriple(b[i+4], b[i+5])
			return utf8.AppendRune(buf, surrogate.Combine(hi, lo)), i + 6, nil
		}
		if d.opts.Policy == PreserveUnpaired {
			return append(buf, c, second, third), i + 3, nil
		}
		return nil, 0, errors.UnpairedHigh(i, hi)

	case 'l':
		if d.opts.Policy == PreserveUnpaired {
			return append(buf, c, second, third), i + 3, nil
		}
		return nil, 0, errors.UnpairedLow(i, surrogate.DecodeTriple(second, third))

	default:
		return append(buf, c, second, third), i + 3, nil
	}
}
