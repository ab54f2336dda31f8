package cesu8

// Variant selects which dialect of the encoding the codec speaks.
type Variant uint8

const (
	// Standard is CESU-8 as described in Unicode Technical Report #26.
	Standard Variant = iota

	// Java is the modified UTF-8 dialect used by the JVM and JNI:
	// identical to Standard except that U+0000 is encoded as the
	// 2-byte pair C0 80 so that encoded strings never contain a NUL
	// byte.
	Java
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Java:
		return "java"
	default:
		return "unknown"
	}
}

// SurrogatePolicy controls what the decoder does with a surrogate
// encoding that has no partner.
type SurrogatePolicy uint8

const (
	// RejectUnpaired fails decoding with an unpaired-surrogate error.
	// This is the default and the only policy under which decode
	// output is guaranteed to be valid UTF-8.
	RejectUnpaired SurrogatePolicy = iota

	// PreserveUnpaired copies a lone surrogate's 3-byte encoding
	// through to the output unchanged, WTF-8 style. Conversion is
	// lossless but the output is not valid UTF-8 wherever a lone
	// surrogate occurred.
	PreserveUnpaired
)

func (p SurrogatePolicy) String() string {
	switch p {
	case RejectUnpaired:
		return "reject"
	case PreserveUnpaired:
		return "preserve"
	default:
		return "unknown"
	}
}

// Options configures a Decoder or Encoder. The zero value is the
// strict Standard-variant codec with copying fast paths.
type Options struct {
	Variant Variant
	Policy  SurrogatePolicy

	// ZeroCopy makes the fast paths alias the caller's buffer instead
	// of copying it: Decode returns a string sharing the input slice's
	// backing array and Encode returns a slice sharing the input
	// string's bytes. The caller must not mutate the input while the
	// output is live, and must not mutate Encode's output at all.
	ZeroCopy bool
}

// A Decoder converts CESU-8 byte sequences to UTF-8 strings. Decoders
// are immutable after construction and safe for concurrent use.
type Decoder struct {
	opts Options
}

// NewDecoder returns a Decoder with the given options.
func NewDecoder(opts Options) *Decoder {
	return &Decoder{opts: opts}
}

// An Encoder converts UTF-8 strings to CESU-8 byte sequences. Encoders
// are immutable after construction and safe for concurrent use.
type Encoder struct {
	opts Options
}

// NewEncoder returns an Encoder with the given options.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts}
}

var (
	defaultDecoder = NewDecoder(Options{})
	defaultEncoder = NewEncoder(Options{})
)

// Decode converts CESU-8 bytes to a UTF-8 string using the strict
// Standard-variant defaults. See Decoder.Decode.
func Decode(b []byte) (string, error) {
	return defaultDecoder.Decode(b)
}

// Encode converts a UTF-8 string to CESU-8 bytes using the
// Standard-variant defaults. See Encoder.Encode.
func Encode(s string) []byte {
	return defaultEncoder.Encode(s)
}

func isCont(b byte) bool {
	return b&0xC0 == 0x80
}
