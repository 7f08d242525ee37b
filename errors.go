package lzw

import "errors"

var (
	// ErrOutputExhausted is returned when emitting a code or a decoded byte
	// would exceed the caller-provided destination buffer's capacity. The
	// destination buffer's contents up to the point of failure are
	// undefined.
	ErrOutputExhausted = errors.New("lzw: output buffer exhausted")

	// ErrMalformedInput is returned when the decoder encounters a
	// sequencing violation it can detect cheaply: a control code or an
	// out-of-range code where the first code of a pass is expected.
	ErrMalformedInput = errors.New("lzw: malformed input")

	// ErrCorruptCode is returned when a data code could never have been
	// produced by this encoder: a code greater than next_code, or a
	// dictionary walk that fails to terminate within tableSize steps.
	ErrCorruptCode = errors.New("lzw: corrupt code")
)
