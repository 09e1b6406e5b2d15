package webvtt

import (
	"io"
	"log"

	"golang.org/x/text/language"
)

// Option configures a Parser at construction. The zero value of every
// option is the documented default, the way conn.Option configures a
// connection in the mellium/xmpp client.
type Option func(*options)

type options struct {
	logger      *log.Logger
	lang        language.Tag
	chunkSize   int
	bufferLimit int
}

func getOpts(opts ...Option) options {
	var o options
	for _, f := range opts {
		f(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}
	return o
}

// Logger sets the logger the parser reports truncated UTF-8 input and the
// fatal FileFormatError to. Malformed settings, rules, timestamps and
// dropped cues are not logged. The default discards everything.
func Logger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Language sets the predefined default language applied to the root of
// every cue-text tree that has no enclosing <lang> tag. It is read once
// at parser construction and never mutated afterward.
func Language(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

// ChunkSize sets the number of bytes the decoder reads from the source
// per iteration. It exists mainly so tests can force split multi-byte
// sequences at chunk boundaries; most callers should leave it at the
// default.
func ChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// BufferSize bounds how many buffered-but-unread elements each
// inter-stage SyncBuffer may hold before its writer blocks. Zero (the
// default) means unbounded, matching the source's SyncBuffer.
func BufferSize(n int) Option {
	return func(o *options) { o.bufferLimit = n }
}
