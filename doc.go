// Package cesu8 converts between CESU-8 and UTF-8.
//
// CESU-8 (Compatibility Encoding Scheme for UTF-16: 8-Bit, Unicode
// Technical Report #26) encodes Basic Multilingual Plane code points
// exactly like UTF-8, but a supplementary code point in
// U+10000..U+10FFFF is first split into a UTF-16 surrogate pair and
// each surrogate is then encoded as its own 3-byte sequence. A scalar
// UTF-8 spells in 4 bytes therefore takes 6 bytes of CESU-8. The
// format exists for systems that bolted UTF-8 storage onto UTF-16
// internals (the JVM, some databases) and is meant for internal
// interchange only, never as a public wire format.
//
// # Architecture Overview
//
// The module is organized into a small set of packages:
//
//	cesu8/                Root package: one-shot Decode/Encode and the
//	                      Decoder/Encoder configured values
//	├── charset/          golang.org/x/text encoding.Encoding and
//	│                     streaming transform.Transformer adapters
//	├── errors/           Structured decode errors (kind + byte offset)
//	├── internal/         Surrogate pair arithmetic shared by the
//	│     surrogate/      codec and the charset transformers
//	└── cmd/cesu8/        CLI wrapper and interactive byte inspector
//
// # Quick Start
//
// Convert in one shot with the strict Standard-variant defaults:
//
//	s, err := cesu8.Decode(data)
//	if err != nil {
//		var derr *errors.Error
//		stderrors.As(err, &derr) // derr.Kind, derr.Offset
//	}
//	out := cesu8.Encode(s)
//
// Or configure a codec:
//
//	dec := cesu8.NewDecoder(cesu8.Options{
//		Variant: cesu8.Java,
//		Policy:  cesu8.PreserveUnpaired,
//	})
//
// # Fast Paths
//
// Input that needs no transcoding (decode input that is already valid
// UTF-8, encode input with no supplementary scalar) is returned
// unchanged after a single validation pass. With Options.ZeroCopy the
// returned value aliases the caller's buffer and the fast path
// performs zero allocations; the caller takes on the aliasing
// obligations documented on Options.
//
// # Strictness
//
// Decoding rejects malformed input at the first bad sequence with a
// structured error carrying the byte offset; nothing is repaired or
// replaced. CESU-8 is a trusted-boundary format, so malformed data is
// either a bug or an attempted smuggling of ill-formed text past
// validation, and both should fail loudly. The only relaxations are
// explicit opt-ins: the Java variant's C0 80 NUL and the
// PreserveUnpaired surrogate policy.
//
// # Thread Safety
//
// Decoder and Encoder values are immutable and safe for concurrent
// use. The streaming transformers in the charset package carry state
// and need one instance per goroutine.
package cesu8
