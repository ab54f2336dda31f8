package charset

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/wippyai/cesu8"
	"github.com/wippyai/cesu8/errors"
)

func TestDecoderMatchesCodec(t *testing.T) {
	inputs := [][]byte{
		[]byte("plain ascii"),
		[]byte("héllo 日本語"),
		{0xED, 0xA0, 0x81, 0xED, 0xB0, 0x80},
		append([]byte("around "), 0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80, ' ', 'x'),
		[]byte("four byte pass-through \U0001F600"),
	}

	for _, in := range inputs {
		want, err := cesu8.Decode(in)
		if err != nil {
			t.Fatalf("codec Decode(% X) failed: %v", in, err)
		}
		got, err := CESU8.NewDecoder().Bytes(in)
		if err != nil {
			t.Fatalf("charset Decode(% X) failed: %v", in, err)
		}
		if string(got) != want {
			t.Errorf("charset Decode(% X) = %q, codec = %q", in, got, want)
		}
	}
}

func TestEncoderMatchesCodec(t *testing.T) {
	inputs := []string{
		"plain",
		"日本語",
		"a\U00010400b",
		"\U0010FFFF",
	}

	for _, s := range inputs {
		want := cesu8.Encode(s)
		got, err := CESU8.NewEncoder().Bytes([]byte(s))
		if err != nil {
			t.Fatalf("charset Encode(%q) failed: %v", s, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("charset Encode(%q) = % X, codec = % X", s, got, want)
		}
	}
}

func TestDecoderShortSrc(t *testing.T) {
	dec := &decodeTransformer{}
	pair := []byte{0xED, 0xA0, 0x81, 0xED, 0xB0, 0x80}
	dst := make([]byte, 16)

	// Every strict prefix of a surrogate pair must be held back, not
	// consumed, until the pair can be decided.
	for cut := 1; cut < len(pair); cut++ {
		nDst, nSrc, err := dec.Transform(dst, pair[:cut], false)
		if err != transform.ErrShortSrc {
			t.Fatalf("cut %d: err = %v, want ErrShortSrc", cut, err)
		}
		if nDst != 0 || nSrc != 0 {
			t.Fatalf("cut %d: consumed %d produced %d, want 0/0", cut, nSrc, nDst)
		}
	}

	// The full window decodes in one step.
	nDst, nSrc, err := dec.Transform(dst, pair, true)
	if err != nil {
		t.Fatalf("full pair: %v", err)
	}
	if nSrc != 6 || string(dst[:nDst]) != "\U00010400" {
		t.Errorf("full pair: consumed %d, output %q", nSrc, dst[:nDst])
	}
}

func TestDecoderShortDst(t *testing.T) {
	dec := &decodeTransformer{}
	pair := []byte{0xED, 0xA0, 0x81, 0xED, 0xB0, 0x80}

	nDst, nSrc, err := dec.Transform(make([]byte, 3), pair, true)
	if err != transform.ErrShortDst {
		t.Fatalf("err = %v, want ErrShortDst", err)
	}
	if nDst != 0 || nSrc != 0 {
		t.Errorf("consumed %d produced %d, want 0/0", nSrc, nDst)
	}
}

func TestDecoderStrictErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		kind  errors.Kind
	}{
		{"lone low surrogate", []byte{0xED, 0xB0, 0x80}, errors.KindUnpairedLow},
		{"lone high surrogate", []byte{0xED, 0xA0, 0x80}, errors.KindUnpairedHigh},
		{"overlong", []byte{0xE0, 0x80, 0x80}, errors.KindOverlongEncoding},
		{"bad lead", []byte{0xFF}, errors.KindInvalidLeadByte},
		{"truncated at eof", []byte{0xE2, 0x82}, errors.KindIncompleteSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CESU8.NewDecoder().Bytes(tt.input)
			if !stderrors.Is(err, &errors.Error{Kind: tt.kind}) {
				t.Errorf("err = %v, want kind %q", err, tt.kind)
			}
		})
	}
}

func TestDecoderLenient(t *testing.T) {
	enc := &Encoding{Policy: cesu8.PreserveUnpaired}
	in := []byte{'a', 0xED, 0xA0, 0x80, 'b'}
	got, err := enc.NewDecoder().Bytes(in)
	if err != nil {
		t.Fatalf("lenient decode failed: %v", err)
	}
	if !bytes.Equal(got, in) {
		t.Errorf("lenient decode = % X, want pass-through", got)
	}
}

func TestEncoderInvalidUTF8(t *testing.T) {
	_, err := CESU8.NewEncoder().Bytes([]byte{'a', 0xFF, 'b'})
	if err == nil {
		t.Fatal("encoder accepted invalid UTF-8")
	}
	if err != encoding.ErrInvalidUTF8 {
		t.Errorf("err = %v, want encoding.ErrInvalidUTF8", err)
	}
}

func TestJavaEncodingNUL(t *testing.T) {
	got, err := JavaCESU8.NewEncoder().Bytes([]byte("a\x00b"))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	want := []byte{'a', 0xC0, 0x80, 'b'}
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}

	back, err := JavaCESU8.NewDecoder().Bytes(want)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(back) != "a\x00b" {
		t.Errorf("round trip = %q", back)
	}
}

func TestStreamingReader(t *testing.T) {
	var in bytes.Buffer
	for i := 0; i < 100; i++ {
		in.WriteString("chunk boundary test ")
		in.Write([]byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80})
	}
	want := strings.Repeat("chunk boundary test \U0001F600", 100)

	r := transform.NewReader(bytes.NewReader(in.Bytes()), CESU8.NewDecoder())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("streaming read failed: %v", err)
	}
	if string(got) != want {
		t.Error("streaming decode disagrees with expected output")
	}
}

func TestEncodingString(t *testing.T) {
	if CESU8.(*Encoding).String() != "CESU-8" {
		t.Error("CESU8 name mismatch")
	}
	if JavaCESU8.(*Encoding).String() != "Java CESU-8" {
		t.Error("JavaCESU8 name mismatch")
	}
}
