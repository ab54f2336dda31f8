// Package errors provides the structured error type returned by CESU-8
// decoding.
//
// Errors are categorized by Kind (what was wrong with the byte
// sequence) and carry the zero-based byte offset of the start of the
// failing sequence. Construction follows a small fluent style:
//
//	err := errors.New(errors.KindOverlongEncoding, 4).
//		Detail("0xE0 0x%02X starts an overlong 3-byte sequence", b)
//
// All errors implement the standard error interface; errors.Is matches
// Kind-wise and errors.As recovers the offset:
//
//	var derr *errors.Error
//	if stderrors.As(err, &derr) {
//		fmt.Println(derr.Kind, derr.Offset)
//	}
//
// The decoder fails atomically on the first invalid sequence, so at
// most one Error is produced per call.
package errors
