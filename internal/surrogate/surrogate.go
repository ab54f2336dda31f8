package surrogate

const (
	// HighMin..HighMax encode the high 10 bits of a pair.
	// LowMin..LowMax encode the low 10 bits of a pair.
	// The combined value is those 20 bits plus Self.
	HighMin = 0xD800
	HighMax = 0xDBFF
	LowMin  = 0xDC00
	LowMax  = 0xDFFF

	// Self is the smallest scalar that requires a surrogate pair.
	Self = 0x10000
)

// Lead is the lead byte shared by every 3-byte surrogate encoding:
// all of 0xD800..0xDFFF fall into the 0xED row of UTF-8.
const Lead = 0xED

const contTag = 0x80 // 10xxxxxx

// IsHigh reports whether u is a high (leading) surrogate.
func IsHigh(u uint16) bool {
	return HighMin <= u && u <= HighMax
}

// IsLow reports whether u is a low (trailing) surrogate.
func IsLow(u uint16) bool {
	return LowMin <= u && u <= LowMax
}

// Combine returns the supplementary scalar represented by the pair
// hi, lo. Both arguments must be in their respective surrogate ranges.
func Combine(hi, lo uint16) rune {
	return Self + (rune(hi)-HighMin)<<10 | (rune(lo) - LowMin)
}

// Split decomposes a scalar r >= Self into its surrogate pair.
func Split(r rune) (hi, lo uint16) {
	v := r - Self
	return uint16(HighMin + v>>10), uint16(LowMin + v&0x3FF)
}

// DecodeTriple returns the 16-bit value of a 3-byte sequence whose lead
// byte is Lead. Only the payload bits of b2 and b3 are read; callers
// must have verified the continuation-byte tags.
func DecodeTriple(b2, b3 byte) uint16 {
	return 0xD000 | uint16(b2&0x3F)<<6 | uint16(b3&0x3F)
}

// AppendTriple appends the 3-byte encoding of the 16-bit code unit u.
// u must be in 0x0800..0xFFFF; surrogate values are the intended use.
func AppendTriple(dst []byte, u uint16) []byte {
	return append(dst,
		0xE0|byte(u>>12),
		contTag|byte(u>>6)&0x3F,
		contTag|byte(u)&0x3F,
	)
}

// PutTriple writes the 3-byte encoding of u into p, which must have
// room for 3 bytes.
func PutTriple(p []byte, u uint16) {
	_ = p[2]
	p[0] = 0xE0 | byte(u>>12)
	p[1] = contTag | byte(u>>6)&0x3F
	p[2] = contTag | byte(u)&0x3F
}
