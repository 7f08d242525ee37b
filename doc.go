// Package lzw implements the adaptive, variable-width LZW codec used to
// compress composite radar and meteorology raster imagery.
//
// Codes start at 9 bits and grow to 15 as the dictionary fills, signaled
// in-stream by an explicit bump code rather than an implicit threshold the
// decoder must re-derive. A flush code clears the dictionary outright when
// it runs out of room, letting an encoder keep compressing past the point
// a fixed-size table would otherwise force it to fall back to literals.
//
// Compress and Expand operate on caller-supplied buffers for callers that
// already know a safe upper bound on output size; Writer and Reader wrap
// them in the more familiar io.Writer/io.Reader shape for everything else.
package lzw
