// Package decode implements the first pipeline stage: a lenient,
// chunk-boundary-tolerant UTF-8 byte decoder.
package decode

import (
	"context"
	"errors"
	"io"
	"log"
	"unicode/utf8"

	"webvtt.im/webvtt/internal/buffer"
)

// DefaultChunkSize is the number of bytes read from the source on each
// iteration. It is intentionally small, matching the source
// implementation's default, so that split multi-byte sequences at chunk
// boundaries are exercised routinely rather than only in pathological
// inputs.
const DefaultChunkSize = 10

// ErrTruncated is logged (never returned) when trailing bytes at
// end-of-input form an incomplete or invalid UTF-8 sequence. It is
// non-fatal: the bytes are discarded and decoding otherwise completes
// normally.
var ErrTruncated = errors.New("decode: truncated UTF-8 sequence discarded at end of input")

// Run decodes bytes read from r into codepoints written to out, then marks
// out ended. It always returns once r is drained or ctx is canceled;
// non-fatal decode errors are reported to logger rather than returned.
//
// Run is meant to be the body of the decoder goroutine described in the
// pipeline's concurrency model; callers typically invoke it with `go
// decode.Run(...)`.
func Run(ctx context.Context, r io.Reader, out *buffer.SyncBuffer[rune], chunkSize int, logger *log.Logger) {
	defer out.SetEnded()
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var pending []byte
	chunk := make([]byte, chunkSize)
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := r.Read(chunk)
		if n > 0 {
			pending = append(pending, chunk[:n]...)
			valid, rest := splitValidPrefix(pending)
			if len(valid) > 0 {
				out.WriteMultiple(ctx, valid)
			}
			pending = rest
		}
		if err != nil {
			if len(pending) > 0 {
				logger.Printf("%s: %d byte(s)", ErrTruncated, len(pending))
			}
			return
		}
	}
}

// splitValidPrefix scans data for the first invalid or incomplete UTF-8
// sequence and returns every complete, valid codepoint before that point
// plus the unconsumed remainder (which may still become valid once more
// bytes are appended on a later call).
func splitValidPrefix(data []byte) (valid []rune, remainder []byte) {
	i := 0
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		valid = append(valid, r)
		i += size
	}
	return valid, data[i:]
}
