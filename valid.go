package cesu8

// Valid reports whether s's UTF-8 bytes are already identical to its
// Standard-variant CESU-8 form, i.e. the string contains no
// supplementary-plane scalar. When Valid returns true, Encode returns
// the string's bytes unchanged.
func Valid(s string) bool {
	return validVariant(s, Standard)
}

// Valid reports whether s's UTF-8 bytes are already identical to its
// CESU-8 form under the Encoder's variant.
func (e *Encoder) Valid(s string) bool {
	return validVariant(s, e.opts.Variant)
}

func validVariant(s string, variant Variant) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		// A 4-byte UTF-8 lead means a supplementary scalar, which
		// CESU-8 re-encodes; bytes above 0xF4 cannot appear in output
		// either way, so any byte >= 0xF0 forces the slow path.
		if c >= 0xF0 {
			return false
		}
		if c == 0x00 && variant == Java {
			return false
		}
	}
	return true
}
