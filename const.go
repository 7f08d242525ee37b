package lzw

// Wire-format constants. Values 256-259 and the code-width schedule are part
// of the on-wire contract and must never be renumbered.
const (
	// eosCode terminates a compressed payload.
	eosCode = 256
	// bumpCode signals the decoder to increase the code width by one bit.
	bumpCode = 257
	// flushCode signals the decoder to reinitialize the dictionary.
	flushCode = 258
	// firstCode is the first code assigned to a learned string.
	firstCode = 259

	// maxCode is the largest code value the 15-bit code space can hold.
	maxCode = 1<<15 - 1

	// tableSize is the fixed capacity of the encoder's hash table. It must
	// remain 35023 for on-wire compatibility: the probing sequence is part
	// of the observable encoder behavior.
	tableSize = 35023

	minCodeBits = 9
	maxCodeBits = 15

	// unusedCode marks an empty dictionary slot.
	unusedCode = -1
)
