package lzw

import (
	"io"
	"os"
	"sync/atomic"
)

/*
 * Verbose diagnostics: a process-wide level and destination writer, in
 * the spirit of the classic Unix compress utility's verbose-mode dots.
 * Level 0 (the default) or below emits nothing; a positive level prints one marker
 * per dictionary width bump, giving a cheap progress indicator on long
 * runs without the cost of structured logging on the hot path.
 */

var verboseLevel int32

var verboseWriter atomic.Value // holds io.Writer

func init() {
	verboseWriter.Store(io.Writer(os.Stderr))
}

// SetVerbose sets the process-wide verbosity level. level <= 0 disables
// diagnostic output; level >= 1 reports each dictionary width bump.
func SetVerbose(level int) {
	atomic.StoreInt32(&verboseLevel, int32(level))
}

// SetVerboseWriter redirects diagnostic output. The default is os.Stderr.
func SetVerboseWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	verboseWriter.Store(w)
}

// reportBump is called by the compressor every time the dictionary's code
// width grows by one bit.
func reportBump() {
	if atomic.LoadInt32(&verboseLevel) <= 0 {
		return
	}
	w := verboseWriter.Load().(io.Writer)
	io.WriteString(w, ".")
}
