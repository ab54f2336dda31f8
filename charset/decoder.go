package charset

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/wippyai/cesu8"
	"github.com/wippyai/cesu8/errors"
	"github.com/wippyai/cesu8/internal/surrogate"
)

// decodeTransformer converts CESU-8 to UTF-8 one sequence at a time.
// It consumes nothing of a sequence it cannot finish, so no state is
// carried between Transform calls.
type decodeTransformer struct {
	transform.NopResetter
	variant cesu8.Variant
	policy  cesu8.SurrogatePolicy
}

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch {
		case c < 0x80:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++

		case c < 0xC0:
			return nDst, nSrc, errors.InvalidLead(nSrc, c)

		case c < 0xC2:
			if c == 0xC0 && t.variant == cesu8.Java {
				if nSrc+1 >= len(src) {
					if !atEOF {
						return nDst, nSrc, transform.ErrShortSrc
					}
					return nDst, nSrc, errors.Incomplete(nSrc, 2, len(src)-nSrc)
				}
				if src[nSrc+1] != 0x80 {
					return nDst, nSrc, errors.Overlong(nSrc, c)
				}
				if nDst >= len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = 0x00
				nDst++
				nSrc += 2
				continue
			}
			return nDst, nSrc, errors.Overlong(nSrc, c)

		case c < 0xE0:
			if nSrc+1 >= len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, errors.Incomplete(nSrc, 2, len(src)-nSrc)
			}
			if !isCont(src[nSrc+1]) {
				return nDst, nSrc, errors.InvalidContinuation(nSrc, src[nSrc+1])
			}
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			dst[nDst+1] = src[nSrc+1]
			nDst += 2
			nSrc += 2

		case c < 0xF0:
			n, written, err := t.triple(dst[nDst:], src[nSrc:], nSrc, atEOF)
			if err != nil {
				return nDst, nSrc, err
			}
			nDst += written
			nSrc += n

		case c < 0xF5:
			// Well-formed 4-byte UTF-8 passes through, as in the
			// one-shot fast path.
			n, written, err := passSupplementary(dst[nDst:], src[nSrc:], nSrc, atEOF)
			if err != nil {
				return nDst, nSrc, err
			}
			nDst += written
			nSrc += n

		case c < 0xFE:
			return nDst, nSrc, errors.OutOfRange(nSrc, c)

		default:
			return nDst, nSrc, errors.InvalidLead(nSrc, c)
		}
	}
	return nDst, nSrc, nil
}

// triple consumes a 3-byte sequence (or a 6-byte surrogate pair) from
// the front of src, writing its UTF-8 form to dst. off is the offset
// of src's start within the Transform call, for error reporting.
// Returns bytes consumed and bytes written.
func (t *decodeTransformer) triple(dst, src []byte, off int, atEOF bool) (int, int, error) {
	if len(src) < 3 {
		if !atEOF {
			return 0, 0, transform.ErrShortSrc
		}
		// Check the bytes that did arrive before calling the
		// sequence incomplete.
		if len(src) >= 2 {
			if !isCont(src[1]) {
				return 0, 0, errors.InvalidContinuation(off, src[1])
			}
			if src[0] == 0xE0 && src[1] < 0xA0 {
				return 0, 0, errors.Overlong(off, src[0])
			}
		}
		return 0, 0, errors.Incomplete(off, 3, len(src))
	}

	c, second, third := src[0], src[1], src[2]
	if !isCont(second) {
		return 0, 0, errors.InvalidContinuation(off, second)
	}
	if c == 0xE0 && second < 0xA0 {
		return 0, 0, errors.Overlong(off, c)
	}
	if !isCont(third) {
		return 0, 0, errors.InvalidContinuation(off, third)
	}

	if c == surrogate.Lead && second >= 0xA0 {
		if second < 0xB0 {
			return t.highSurrogate(dst, src, off, atEOF)
		}
		if t.policy == cesu8.PreserveUnpaired {
			return copyBytes(dst, src[:3])
		}
		return 0, 0, errors.UnpairedLow(off, surrogate.DecodeTriple(second, third))
	}

	return copyBytes(dst, src[:3])
}

// highSurrogate handles a complete high-surrogate triple at the front
// of src, pairing it with the following low-surrogate triple when one
// is present.
func (t *decodeTransformer) highSurrogate(dst, src []byte, off int, atEOF bool) (int, int, error) {
	hi := surrogate.DecodeTriple(src[1], src[2])

	// Decide whether a low surrogate follows. With fewer than 6 bytes
	// in hand the answer may still change, unless the bytes already
	// present rule a pair out.
	paired := false
	switch {
	case len(src) >= 6:
		paired = src[3] == surrogate.Lead && src[4] >= 0xB0 && src[4] <= 0xBF && isCont(src[5])
	case !atEOF:
		if len(src) >= 4 && src[3] != surrogate.Lead {
			break // no pair, decidable now
		}
		if len(src) >= 5 && (src[4] < 0xB0 || src[4] > 0xBF) {
			break
		}
		return 0, 0, transform.ErrShortSrc
	}

	if paired {
		r := surrogate.Combine(hi, surrogate.DecodeTriple(src[4], src[5]))
		if len(dst) < utf8.UTFMax {
			return 0, 0, transform.ErrShortDst
		}
		return 6, utf8.EncodeRune(dst, r), nil
	}
	if t.policy == cesu8.PreserveUnpaired {
		return copyBytes(dst, src[:3])
	}
	return 0, 0, errors.UnpairedHigh(off, hi)
}

// passSupplementary validates and copies a 4-byte UTF-8 sequence.
func passSupplementary(dst, src []byte, off int, atEOF bool) (int, int, error) {
	c := src[0]
	if len(src) >= 2 {
		second := src[1]
		if !isCont(second) {
			return 0, 0, errors.InvalidContinuation(off, second)
		}
		if c == 0xF0 && second < 0x90 {
			return 0, 0, errors.Overlong(off, c)
		}
		if c == 0xF4 && second > 0x8F {
			return 0, 0, errors.OutOfRange(off, c)
		}
	}
	if len(src) < 4 {
		if !atEOF {
			return 0, 0, transform.ErrShortSrc
		}
		if len(src) >= 3 && !isCont(src[2]) {
			return 0, 0, errors.InvalidContinuation(off, src[2])
		}
		return 0, 0, errors.Incomplete(off, 4, len(src))
	}
	if !isCont(src[2]) {
		return 0, 0, errors.InvalidContinuation(off, src[2])
	}
	if !isCont(src[3]) {
		return 0, 0, errors.InvalidContinuation(off, src[3])
	}
	return copyBytes(dst, src[:4])
}

func copyBytes(dst, seq []byte) (int, int, error) {
	if len(dst) < len(seq) {
		return 0, 0, transform.ErrShortDst
	}
	copy(dst, seq)
	return len(seq), len(seq), nil
}

func isCont(b byte) bool {
	return b&0xC0 == 0x80
}
