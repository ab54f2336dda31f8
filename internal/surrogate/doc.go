// Package surrogate provides UTF-16 surrogate pair arithmetic and the
// 3-byte wire form each surrogate takes in CESU-8.
//
// A supplementary-plane scalar (U+10000..U+10FFFF) is carried in CESU-8
// as two code units, a high surrogate in 0xD800..0xDBFF followed by a
// low surrogate in 0xDC00..0xDFFF, each encoded as its own 3-byte
// sequence. This package holds the range constants, the combine/split
// formulas, and the triple encode/decode helpers shared by the one-shot
// codec and the streaming charset transformers.
//
// This package is internal to the cesu8 module.
package surrogate
