package rawmem

import (
	"unsafe"

	"github.com/rs/zerolog"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is one block of raw storage owned by an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // first unused byte
}

// Arena hands out raw storage for the range operations. It is a chunked bump
// allocator: regions are carved from the current chunk and only returned in
// bulk, by Reset or Release. Not goroutine-safe; see SafeArena.
type Arena struct {
	chunks    []chunk
	chunkSize int
	current   *chunk
	heapSlots int
	log       zerolog.Logger
}

// Option configures an Arena.
type Option func(*Arena)

// WithChunkSize overrides the chunk size passed to NewArena.
func WithChunkSize(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.chunkSize = n
		}
	}
}

// WithLogger sets the logger used for chunk growth, reset and release events.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Arena) { a.log = l }
}

// NewArena creates an Arena. If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int, opts ...Option) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	a.grow(a.chunkSize)
	return a
}

// acquireBytes returns n raw bytes aligned to align, which must be a power of
// two.
func (a *Arena) acquireBytes(n int, align uintptr) []byte {
	a.panicIfReleased()
	if n <= 0 {
		return nil
	}

	if c := a.current; c != nil {
		off := alignUp(c.offset, align)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			c.offset = off + uintptr(n)
			return unsafe.Slice(&c.buf[off], n)
		}
	}

	// A fresh chunk starts on an allocator boundary, so padding by align is
	// always enough.
	a.grow(n + int(align))
	c := a.current
	off := alignUp(c.offset, align)
	c.offset = off + uintptr(n)
	return unsafe.Slice(&c.buf[off], n)
}

// EnsureCapacity makes sure the current chunk has n free bytes, growing the
// arena if it does not.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := a.current
	if c == nil || alignUp(c.offset, ptrAlign)+uintptr(n) > uintptr(len(c.buf)) {
		a.grow(n)
	}
}

// Reset returns every region to raw storage at once. Chunks are kept for
// reuse. Values still live in the regions are abandoned, not destroyed; call
// DestroyRange first if their types need it.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = &a.chunks[0]
	a.heapSlots = 0
	a.log.Debug().Int("chunks", len(a.chunks)).Msg("arena reset")
}

// Release drops all chunks. Any later use of the arena panics.
func (a *Arena) Release() {
	a.log.Debug().Int("chunks", len(a.chunks)).Int("capacity", a.Capacity()).Msg("arena released")
	a.chunks = nil
	a.current = nil
}

// grow appends a chunk of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.current = &a.chunks[len(a.chunks)-1]
	a.log.Debug().Int("size", size).Int("chunks", len(a.chunks)).Msg("arena grew")
}

func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("rawmem: use after Release()")
	}
}

const ptrAlign = unsafe.Alignof(uintptr(0))

// alignUp rounds off up to a multiple of align.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}
