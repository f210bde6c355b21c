package rawmem

import "sync"

// SafeArena is a mutex-protected Arena for callers that share one storage
// provider between goroutines. The range operations themselves never lock; a
// region returned here belongs to the goroutine that acquired it.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a goroutine-safe arena. Options are those of NewArena.
func NewSafeArena(chunkSize int, opts ...Option) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize, opts...)}
}

// SafeAcquireSlice is AcquireSlice under the arena's lock.
func SafeAcquireSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AcquireSlice[T](s.a, n)
}

// SafeAcquire is Acquire under the arena's lock.
func SafeAcquire[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Acquire[T](s.a)
}

func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Metrics returns a snapshot of the wrapped arena's usage.
func (s *SafeArena) Metrics() StorageMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
