// Package charset exposes the CESU-8 codec through the
// golang.org/x/text encoding interfaces.
//
// CESU8 and JavaCESU8 satisfy encoding.Encoding, so they plug into
// anything that consumes x/text encodings:
//
//	utf8Bytes, err := charset.CESU8.NewDecoder().Bytes(cesu8Bytes)
//	r := transform.NewReader(file, charset.CESU8.NewDecoder())
//
// The decoder and encoder are streaming transform.Transformers: a
// surrogate pair or multi-byte sequence split across Transform calls
// is held back with transform.ErrShortSrc until enough input arrives.
// Unlike the one-shot codec in the root package, transformers carry
// per-stream state and need one instance per goroutine; error offsets
// they report are relative to the current Transform call's input
// window, not the whole stream.
//
// Mirroring the root package's fast path, which accepts any input that
// is already well-formed UTF-8, the streaming decoder passes
// well-formed 4-byte UTF-8 sequences through unchanged.
package charset
