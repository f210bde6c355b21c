package rawmem

// StorageMetrics is a snapshot of an arena's usage.
type StorageMetrics struct {
	BytesInUse  int     // bytes handed out from chunks, including alignment padding
	Capacity    int     // total bytes across all chunks
	NumChunks   int     // chunks allocated
	ChunkSize   int     // default chunk size
	HeapSlots   int     // slots served from the Go heap since the last Reset
	Utilization float64 // BytesInUse / Capacity, 0 when there is no capacity
}

// BytesInUse returns the bytes handed out from chunks since the last Reset.
func (a *Arena) BytesInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks; 0 after Release.
func (a *Arena) NumChunks() int { return len(a.chunks) }

// Capacity returns the total size of all chunks in bytes.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// ChunkSize returns the arena's default chunk size.
func (a *Arena) ChunkSize() int { return a.chunkSize }

// Utilization returns BytesInUse / Capacity, or 0 for a released arena.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.BytesInUse()) / float64(capacity)
}

// Metrics returns a snapshot of the arena's usage.
func (a *Arena) Metrics() StorageMetrics {
	return StorageMetrics{
		BytesInUse:  a.BytesInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.chunkSize,
		HeapSlots:   a.heapSlots,
		Utilization: a.Utilization(),
	}
}
