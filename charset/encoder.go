package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/wippyai/cesu8"
	"github.com/wippyai/cesu8/internal/surrogate"
)

// encodeTransformer converts UTF-8 to CESU-8. It runs behind
// encoding.UTF8Validator in a transform.Chain, so by the time bytes
// arrive here every complete rune is well-formed.
type encodeTransformer struct {
	transform.NopResetter
	variant cesu8.Variant
}

func (t *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < 0x80 {
			if c == 0x00 && t.variant == cesu8.Java {
				if nDst+2 > len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = 0xC0
				dst[nDst+1] = 0x80
				nDst += 2
				nSrc++
				continue
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		if !utf8.FullRune(src[nSrc:]) {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, encoding.ErrInvalidUTF8
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			return nDst, nSrc, encoding.ErrInvalidUTF8
		}

		if r < surrogate.Self {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			copy(dst[nDst:], src[nSrc:nSrc+size])
			nDst += size
		} else {
			if nDst+6 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			hi, lo := surrogate.Split(r)
			surrogate.PutTriple(dst[nDst:], hi)
			surrogate.PutTriple(dst[nDst+3:], lo)
			nDst += 6
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
