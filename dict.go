package lzw

/*
 * Dictionary: a fixed-capacity hashed prefix-extension table for the
 * encoder, and a flat code-indexed parent/character table for the decoder.
 * The two structures share no storage (see DESIGN.md, "two indexing
 * regimes on one table"). The hash probe below is part of the on-wire
 * contract: it determines which codes the encoder assigns for a given
 * input, so it must be reproduced bit-for-bit by any re-implementation.
 */

// dictEntry is one slot of the encoder's hash table.
type dictEntry struct {
	code   int32 // unusedCode marks an empty slot
	parent int32
	char   byte
}

// dictionary is the encoder-side open-addressed hash table.
type dictionary struct {
	entries      [tableSize]dictEntry
	nextCode     int32
	codeBits     uint
	nextBumpCode int32
}

func (d *dictionary) reset() {
	for i := range d.entries {
		d.entries[i].code = unusedCode
	}
	d.nextCode = firstCode
	d.codeBits = minCodeBits
	d.nextBumpCode = 1<<minCodeBits - 1
}

// findChild returns the slot index for (parent, char): either the slot
// already holding that pair (hit) or the first empty slot along the probe
// (miss, ready for insertion by the caller).
func (d *dictionary) findChild(parent int32, char byte) (slot int, hit bool) {
	index := int32(char)<<(maxCodeBits-8) ^ parent
	var step int32
	if index == 0 {
		step = 1
	} else {
		step = tableSize - index
	}
	for {
		e := &d.entries[index]
		if e.code == unusedCode {
			return int(index), false
		}
		if e.parent == parent && e.char == char {
			return int(index), true
		}
		index -= step
		if index < 0 {
			index += tableSize
		}
	}
}

// insert records a new entry at the slot found by findChild, assigning it
// the next available code.
func (d *dictionary) insert(slot int, parent int32, char byte) int32 {
	code := d.nextCode
	d.entries[slot] = dictEntry{code: code, parent: parent, char: char}
	d.nextCode++
	return code
}

// codeTable is the decoder-side flat parent/character table, addressed
// directly by code value. Sized to hold every code the 15-bit code space
// can produce; reset must be called before use to set nextCode and codeBits.
type codeTable struct {
	parent   [maxCode + 1]int32
	char     [maxCode + 1]byte
	nextCode int32
	codeBits uint
}

func (t *codeTable) reset() {
	t.nextCode = firstCode
	t.codeBits = minCodeBits
}

// insert records the entry for the next code, learned from old_code and
// the first byte of the string that extended it. No width-bump or flush
// check is performed here: the decoder relies entirely on explicit
// BUMP_CODE/FLUSH_CODE markers in the stream.
func (t *codeTable) insert(parent int32, char byte) int32 {
	code := t.nextCode
	t.parent[code] = parent
	t.char[code] = char
	t.nextCode++
	return code
}

func (t *codeTable) at(code int32) (parent int32, char byte) {
	return t.parent[code], t.char[code]
}
