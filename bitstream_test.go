package lzw

import "testing"

func TestBitWriterReaderRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	w := newBitWriter(buf)

	codes := []uint32{65, 257, 511, 0, 32767}
	widths := []uint{9, 9, 9, 9, 15}

	for i, c := range codes {
		if err := w.writeBits(c, widths[i]); err != nil {
			t.Fatalf("writeBits(%d): %v", c, err)
		}
	}
	n := w.close()

	r := newBitReader(buf[:n])
	for i, want := range codes {
		got, ok := r.readBits(widths[i])
		if !ok {
			t.Fatalf("readBits[%d]: exhausted early", i)
		}
		if got != want {
			t.Errorf("readBits[%d]: found=%d : expected=%d", i, got, want)
		}
	}
}

func TestBitWriterOutputExhausted(t *testing.T) {
	buf := make([]byte, 1)
	w := newBitWriter(buf)
	if err := w.writeBits(0x1ff, 9); err != ErrOutputExhausted {
		t.Errorf("found=%v : expected=%v", err, ErrOutputExhausted)
	}
}

func TestBitReaderExhausted(t *testing.T) {
	buf := []byte{0xff}
	r := newBitReader(buf)
	if _, ok := r.readBits(9); ok {
		t.Error("expected readBits to report exhaustion past the buffer end")
	}
}

func TestByteWriterOutputExhausted(t *testing.T) {
	w := newByteWriter(make([]byte, 2))
	if err := w.putByte('a'); err != nil {
		t.Fatalf("putByte: %v", err)
	}
	if err := w.putByte('b'); err != nil {
		t.Fatalf("putByte: %v", err)
	}
	if err := w.putByte('c'); err != ErrOutputExhausted {
		t.Errorf("found=%v : expected=%v", err, ErrOutputExhausted)
	}
	if w.written() != 2 {
		t.Errorf("written=%d : expected=2", w.written())
	}
}
