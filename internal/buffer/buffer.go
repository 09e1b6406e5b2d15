// Package buffer implements the bounded, blocking FIFO that glues the
// decode/preprocess/collect pipeline stages together.
package buffer

import (
	"context"
	"sync"
)

// SyncBuffer is an ordered, blocking FIFO of T with a sticky end-of-input
// flag. Writers append; readers block until data is available or the
// buffer is marked ended. The read cursor is a monotonically advancing
// logical position that callers may save and later restore, as long as the
// underlying storage has not since been compacted past that position.
//
// A zero SyncBuffer is not usable; construct one with New.
type SyncBuffer[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond

	data []T // data[i] holds logical element base+i
	base int // logical index of data[0]
	pos  int // logical index of the next element to be read

	limit int // if > 0, Write blocks while the unread count is at limit
	ended bool
}

// New returns an empty SyncBuffer. A non-positive limit means the buffer
// never blocks writers (the source's SyncBuffer is unbounded); a positive
// limit bounds the number of buffered-but-unread elements.
func New[T any](limit int) *SyncBuffer[T] {
	b := &SyncBuffer[T]{limit: limit}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// WriteOne appends a single element and wakes any blocked readers.
func (b *SyncBuffer[T]) WriteOne(ctx context.Context, v T) {
	b.WriteMultiple(ctx, []T{v})
}

// WriteMultiple appends zero or more elements atomically.
func (b *SyncBuffer[T]) WriteMultiple(ctx context.Context, vs []T) {
	if len(vs) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.limit > 0 && b.unreadLocked() >= b.limit && !b.ended {
		if !b.waitLocked(ctx) {
			return
		}
	}
	b.data = append(b.data, vs...)
	b.cond.Broadcast()
}

// waitLocked blocks on the condition variable until woken, returning false
// if ctx is done first. b.mu must be held; it is re-acquired before
// returning, per sync.Cond.Wait's contract.
func (b *SyncBuffer[T]) waitLocked(ctx context.Context) bool {
	if ctx != nil && ctx.Err() != nil {
		return false
	}
	if ctx != nil {
		stop := context.AfterFunc(ctx, func() {
			b.mu.Lock()
			b.cond.Broadcast()
			b.mu.Unlock()
		})
		defer stop()
	}
	b.cond.Wait()
	return ctx == nil || ctx.Err() == nil
}

// unreadLocked reports how many buffered elements have not yet been read.
// b.mu must be held.
func (b *SyncBuffer[T]) unreadLocked() int {
	return b.base + len(b.data) - b.pos
}

// ReadOne blocks until one element is available or the buffer is ended,
// returning ok=false once the buffer is ended and fully drained, or if ctx
// is done while it waits.
func (b *SyncBuffer[T]) ReadOne(ctx context.Context) (v T, ok bool) {
	vs, ok := b.ReadMultiple(ctx, 1)
	if !ok || len(vs) == 0 {
		var zero T
		return zero, false
	}
	return vs[0], true
}

// ReadMultiple blocks until at least one element is available or the
// buffer is ended, then returns at most n elements. ok is false when the
// buffer is ended with nothing left to read, or if ctx is done while it
// waits.
func (b *SyncBuffer[T]) ReadMultiple(ctx context.Context, n int) (vs []T, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.unreadLocked() == 0 && !b.ended {
		if !b.waitLocked(ctx) {
			return nil, false
		}
	}
	if b.unreadLocked() == 0 {
		return nil, false
	}
	if n <= 0 || n > b.unreadLocked() {
		n = b.unreadLocked()
	}
	start := b.pos - b.base
	out := make([]T, n)
	copy(out, b.data[start:start+n])
	b.pos += n
	b.cond.Broadcast()
	return out, true
}

// PeekOne blocks like ReadOne but does not advance the read cursor.
func (b *SyncBuffer[T]) PeekOne(ctx context.Context) (v T, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.unreadLocked() == 0 && !b.ended {
		if !b.waitLocked(ctx) {
			var zero T
			return zero, false
		}
	}
	if b.unreadLocked() == 0 {
		var zero T
		return zero, false
	}
	return b.data[b.pos-b.base], true
}

// ReadUntil blocks, reading and consuming elements (advancing the cursor)
// until match reports true for an element or the buffer ends. The matched
// terminator element is consumed but not included in the returned slice.
// ok is false only if the buffer ended before any element (matching or
// not) was read.
func (b *SyncBuffer[T]) ReadUntil(ctx context.Context, match func(T) bool) (vs []T, ok bool) {
	for {
		v, readOK := b.ReadOne(ctx)
		if !readOK {
			if len(vs) == 0 {
				return nil, false
			}
			return vs, true
		}
		if match(v) {
			return vs, true
		}
		vs = append(vs, v)
	}
}

// Position returns the current logical read cursor.
func (b *SyncBuffer[T]) Position() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pos
}

// SetPosition rewinds (or fast-forwards) the read cursor to pos. It
// reports false without changing the cursor if pos refers to data already
// discarded by ClearUntilPosition, or to data not yet written.
func (b *SyncBuffer[T]) SetPosition(pos int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pos < b.base || pos > b.base+len(b.data) {
		return false
	}
	b.pos = pos
	return true
}

// ClearUntilPosition compacts the underlying storage, discarding every
// element before the current read cursor. This invalidates any saved
// position earlier than the cursor: a later SetPosition to such a position
// will fail.
func (b *SyncBuffer[T]) ClearUntilPosition() {
	b.mu.Lock()
	defer b.mu.Unlock()
	drop := b.pos - b.base
	if drop <= 0 {
		return
	}
	b.data = append(b.data[:0:0], b.data[drop:]...)
	b.base = b.pos
	b.cond.Broadcast()
}

// SetEnded marks the buffer as having no further writes. It is sticky and
// wakes all blocked readers and writers.
func (b *SyncBuffer[T]) SetEnded() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ended = true
	b.cond.Broadcast()
}

// Ended reports whether SetEnded has been called.
func (b *SyncBuffer[T]) Ended() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ended
}
