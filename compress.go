package lzw

import (
	"bytes"
	"io"
)

/*
 * Compressor consumes input bytes, tracks a running prefix code, drives
 * dictionary growth, and emits data codes and control codes through a
 * bitWriter.
 */
type Compressor struct {
	dict dictionary
}

// Compress fills dst with the compressed form of src and returns the
// number of bytes written. It fails with ErrOutputExhausted if dst is not
// large enough to hold the compressed output.
func Compress(src, dst []byte) (int, error) {
	c := &Compressor{}
	c.dict.reset()

	bw := newBitWriter(dst)
	in := newByteReader(src)

	prefix := int32(eosCode)
	if b, ok := in.nextByte(); ok {
		prefix = int32(b)
	}

	for {
		b, ok := in.nextByte()
		if !ok {
			break
		}
		slot, hit := c.dict.findChild(prefix, b)
		if hit {
			prefix = c.dict.entries[slot].code
			continue
		}

		c.dict.insert(slot, prefix, b)
		if err := bw.writeBits(uint32(prefix), c.dict.codeBits); err != nil {
			return 0, err
		}
		prefix = int32(b)

		if c.dict.nextCode > maxCode {
			if err := bw.writeBits(flushCode, c.dict.codeBits); err != nil {
				return 0, err
			}
			c.dict.reset()
		} else if c.dict.nextCode > c.dict.nextBumpCode {
			if err := bw.writeBits(bumpCode, c.dict.codeBits); err != nil {
				return 0, err
			}
			c.dict.codeBits++
			c.dict.nextBumpCode = c.dict.nextBumpCode<<1 | 1
			reportBump()
		}
	}

	if prefix != eosCode {
		if err := bw.writeBits(uint32(prefix), c.dict.codeBits); err != nil {
			return 0, err
		}
	}
	if err := bw.writeBits(eosCode, c.dict.codeBits); err != nil {
		return 0, err
	}

	return bw.close(), nil
}

// maxCompressedSize bounds how large the compressed form of n input bytes
// can possibly be: at most one code per input byte (a hit never emits),
// each code at most maxCodeBits wide, plus a few control codes of slack.
func maxCompressedSize(n int) int {
	return (n+4)*maxCodeBits/8 + maxCodeBits
}

// Writer is a buffered, eager compressor: writes are accumulated and the
// compressed form is produced in one shot on Close, rather than streamed.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
	err error
}

// NewWriter creates a Writer. Writes to the returned Writer are buffered;
// the compressed form is written to w when Close is called.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(p)
}

// Close compresses everything written so far and flushes it to the
// underlying io.Writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	data := w.buf.Bytes()
	capacity := maxCompressedSize(len(data))
	for {
		dst := make([]byte, capacity)
		n, err := Compress(data, dst)
		if err == nil {
			_, werr := w.w.Write(dst[:n])
			return werr
		}
		if err != ErrOutputExhausted || capacity > 1<<28 {
			w.err = err
			return err
		}
		capacity *= 2
	}
}
