package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/wippyai/cesu8"
)

// CESU8 is the strict Standard-variant CESU-8 encoding.
var CESU8 encoding.Encoding = &Encoding{}

// JavaCESU8 is the Java modified UTF-8 dialect (U+0000 as C0 80).
var JavaCESU8 encoding.Encoding = &Encoding{Variant: cesu8.Java}

// Encoding is an x/text encoding.Encoding for CESU-8. The zero value
// is the strict Standard variant; fields follow cesu8.Options.
type Encoding struct {
	Variant cesu8.Variant
	Policy  cesu8.SurrogatePolicy
}

// NewDecoder returns a streaming CESU-8 to UTF-8 decoder.
func (e *Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decodeTransformer{
		variant: e.Variant,
		policy:  e.Policy,
	}}
}

// NewEncoder returns a streaming UTF-8 to CESU-8 encoder. Input is
// validated by encoding.UTF8Validator, so ill-formed UTF-8 fails with
// encoding.ErrInvalidUTF8 rather than being passed through.
func (e *Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: transform.Chain(
		encoding.UTF8Validator,
		&encodeTransformer{variant: e.Variant},
	)}
}

func (e *Encoding) String() string {
	if e.Variant == cesu8.Java {
		return "Java CESU-8"
	}
	return "CESU-8"
}
