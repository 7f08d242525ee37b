package lzw

import (
	"io"
)

/*
 * Expander consumes codes from a bitReader, reconstructs strings via
 * dictionary walks into a reversal stack, writes output bytes, and
 * responds to control codes.
 */
type Expander struct {
	table codeTable
	stack [tableSize]byte
}

// Expand fills dst with the decompressed form of src and returns the
// number of bytes written. It fails with ErrOutputExhausted if dst is too
// small, or ErrMalformedInput/ErrCorruptCode if src is not a well-formed
// stream produced by this codec.
func Expand(src, dst []byte) (int, error) {
	e := &Expander{}
	br := newBitReader(src)
	out := newByteWriter(dst)

	for {
		e.table.reset()

		oldCode, ok := br.readBits(e.table.codeBits)
		if !ok || oldCode == eosCode {
			return out.written(), nil
		}
		if oldCode == bumpCode || oldCode == flushCode || oldCode >= firstCode {
			return 0, ErrMalformedInput
		}
		if err := out.putByte(byte(oldCode)); err != nil {
			return 0, err
		}
		character := byte(oldCode)
		old := int32(oldCode)

		for {
			newCode, ok := br.readBits(e.table.codeBits)
			if !ok || newCode == eosCode {
				return out.written(), nil
			}
			if newCode == flushCode {
				break
			}
			if newCode == bumpCode {
				e.table.codeBits++
				continue
			}

			nc := int32(newCode)
			if nc > e.table.nextCode {
				return 0, ErrCorruptCode
			}

			var count int
			var ok2 bool
			if nc == e.table.nextCode {
				count, ok2 = e.decodeStringSeeded(character, old)
			} else {
				count, ok2 = e.decodeString(nc)
			}
			if !ok2 {
				return 0, ErrCorruptCode
			}

			character = e.stack[count-1]
			for k := count - 1; k >= 0; k-- {
				if err := out.putByte(e.stack[k]); err != nil {
					return 0, err
				}
			}

			e.table.insert(old, character)
			old = nc
		}
	}
}

// decodeString walks code -> parent_code -> ... into e.stack, appending
// each character encountered and stopping at a literal (code <= 255). It
// returns the number of bytes written to the stack, filled such that the
// forward byte sequence is obtained by reading from index count-1 down to
// 0. A walk exceeding tableSize steps indicates corruption.
func (e *Expander) decodeString(code int32) (count int, ok bool) {
	for code > 255 {
		if count >= tableSize-1 {
			return 0, false
		}
		parent, char := e.table.at(code)
		e.stack[count] = char
		count++
		code = parent
	}
	e.stack[count] = byte(code)
	count++
	return count, true
}

// decodeStringSeeded handles the C+S+C+S+C exception, where the encoder
// just defined the code it is emitting next: seed holds the byte that
// closes the string before old_code's expansion is walked.
func (e *Expander) decodeStringSeeded(seed byte, oldCode int32) (count int, ok bool) {
	e.stack[0] = seed
	count = 1
	code := oldCode
	for code > 255 {
		if count >= tableSize-1 {
			return 0, false
		}
		parent, char := e.table.at(code)
		e.stack[count] = char
		count++
		code = parent
	}
	e.stack[count] = byte(code)
	count++
	return count, true
}

// maxDecompressedSize is a heuristic first guess at the decompressed size:
// one byte of output per bit of compressed input, plus slack. It is not an
// upper bound; NewReader doubles it while Expand reports ErrOutputExhausted.
func maxDecompressedSize(compressedLen int) int {
	return compressedLen*8 + 64
}

// Reader is an eager, non-streaming decompressor: all of r is read and
// decompressed up front, before NewReader returns.
type Reader struct {
	data      []byte
	readIndex int
}

// NewReader reads all of r, decompresses it, and returns an io.ReadCloser
// over the result.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	capacity := maxDecompressedSize(len(compressed))
	for {
		dst := make([]byte, capacity)
		n, err := Expand(compressed, dst)
		if err == nil {
			return &Reader{data: dst[:n]}, nil
		}
		if err != ErrOutputExhausted || capacity > 1<<28 {
			return nil, err
		}
		capacity *= 2
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.readIndex >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.readIndex:])
	r.readIndex += n
	return n, nil
}

func (r *Reader) Close() error {
	return nil
}
