package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes a decode failure.
type Kind string

const (
	KindInvalidLeadByte     Kind = "invalid lead byte"
	KindIncompleteSequence  Kind = "incomplete sequence"
	KindInvalidContinuation Kind = "invalid continuation byte"
	KindOverlongEncoding    Kind = "overlong encoding"
	KindOutOfRangeScalar    Kind = "out-of-range scalar"
	KindUnpairedHigh        Kind = "unpaired high surrogate"
	KindUnpairedLow         Kind = "unpaired low surrogate"
)

// Error is the structured error type returned by the decoder. Offset is
// the zero-based byte offset of the start of the failing sequence in
// the input buffer.
type Error struct {
	Cause  error
	Detail string
	Kind   Kind
	Offset int
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("cesu8: ")
	b.WriteString(string(e.Kind))
	fmt.Fprintf(&b, " at byte %d", e.Offset)

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match when
// their Kinds are equal, so sentinel comparisons like
// errors.Is(err, &Error{Kind: KindUnpairedLow}) work without caring
// about the offset.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder for a failure of the given kind at
// the given byte offset.
func New(kind Kind, offset int) *Builder {
	return &Builder{
		err: Error{
			Kind:   kind,
			Offset: offset,
		},
	}
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the decoder's failure sites.

// InvalidLead creates an invalid lead byte error.
func InvalidLead(offset int, lead byte) *Error {
	return &Error{
		Kind:   KindInvalidLeadByte,
		Offset: offset,
		Detail: fmt.Sprintf("0x%02X does not start a valid CESU-8 sequence", lead),
	}
}

// SupplementaryLead creates an invalid lead byte error for a 4-byte
// UTF-8 lead, which CESU-8 replaces with a surrogate pair.
func SupplementaryLead(offset int, lead byte) *Error {
	return &Error{
		Kind:   KindInvalidLeadByte,
		Offset: offset,
		Detail: fmt.Sprintf("0x%02X starts a 4-byte UTF-8 sequence; supplementary scalars must be encoded as surrogate pairs", lead),
	}
}

// Incomplete creates an incomplete sequence error for input that ends
// before the sequence's continuation bytes.
func Incomplete(offset, want, have int) *Error {
	return &Error{
		Kind:   KindIncompleteSequence,
		Offset: offset,
		Detail: fmt.Sprintf("sequence needs %d bytes, %d available", want, have),
	}
}

// InvalidContinuation creates an invalid continuation byte error.
func InvalidContinuation(offset int, got byte) *Error {
	return &Error{
		Kind:   KindInvalidContinuation,
		Offset: offset,
		Detail: fmt.Sprintf("0x%02X is not a continuation byte", got),
	}
}

// Overlong creates an overlong encoding error.
func Overlong(offset int, lead byte) *Error {
	return &Error{
		Kind:   KindOverlongEncoding,
		Offset: offset,
		Detail: fmt.Sprintf("sequence starting 0x%02X encodes a scalar representable in fewer bytes", lead),
	}
}

// OutOfRange creates an out-of-range scalar error for lead bytes that
// can only encode values above U+10FFFF.
func OutOfRange(offset int, lead byte) *Error {
	return &Error{
		Kind:   KindOutOfRangeScalar,
		Offset: offset,
		Detail: fmt.Sprintf("0x%02X can only encode scalars above U+10FFFF", lead),
	}
}

// UnpairedHigh creates an unpaired high surrogate error.
func UnpairedHigh(offset int, unit uint16) *Error {
	return &Error{
		Kind:   KindUnpairedHigh,
		Offset: offset,
		Detail: fmt.Sprintf("high surrogate 0x%04X is not followed by a low surrogate", unit),
	}
}

// UnpairedLow creates an unpaired low surrogate error.
func UnpairedLow(offset int, unit uint16) *Error {
	return &Error{
		Kind:   KindUnpairedLow,
		Offset: offset,
		Detail: fmt.Sprintf("low surrogate 0x%04X has no preceding high surrogate", unit),
	}
}
