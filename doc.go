// Package rawmem brings raw storage to life and walks ranges of it.
//
// # Overview
//
// The package sits underneath container types. It answers two questions:
//
//   - how to turn raw, unconstructed storage into live values from a source,
//     and how to undo the work if a construction fails part way
//   - how far apart two cursors are, and how to move a cursor, when cursors
//     differ in how they can move
//
// Every operation picks between a bulk path and an element-by-element path
// once per call, from what is known about the element type or cursor type.
//
// # Element types
//
// FactsOf reports what is known about an element type. Built-in numeric types,
// bool and pointers are plain old data (POD); a type can declare its own facts
// by implementing FactsProvider. Anything else is treated as non-trivial, which
// is always safe and only costs speed.
//
// Types whose lifecycle does more than assign implement the hooks on their
// pointer type: Initializer, Copier, Mover and Destroyer.
//
// # Basic Usage
//
//	a := rawmem.NewArena(0)
//	defer a.Release()
//
//	src := []Order{...}
//	dst := rawmem.AcquireSlice[Order](a, len(src))
//	n, err := rawmem.Copy(rawmem.Begin(src), rawmem.End(src), dst)
//	if err != nil {
//		// dst is raw again; nothing to clean up
//	}
//	defer rawmem.DestroyRange(dst[:n])
//
// # Rollback
//
// Copy, CopyN, Fill, FillN, Move, MoveN and ConstructRange construct into the
// destination from the front. If slot k fails, slots 0..k-1 are destroyed in
// order and a *ConstructionError naming slot k is returned. A panicking hook
// gets the same cleanup before the panic continues.
//
// # Cursors
//
// Cursors are values. Cursor gives single steps forward, BidiCursor adds Prev
// and RandomCursor adds Jump and Sub. TagOf picks the most specific Tag a
// cursor supports, and Distance and Advance use it to choose O(1) or O(n)
// algorithms. SliceCursor, ListCursor and SeqCursor cover slices,
// container/list and iter.Seq.
//
// # Preconditions
//
// Nothing here validates ranges: last must be reachable from first, source
// and destination must not overlap, and counts must not be negative. The
// layer holds no state and takes no locks; concurrent calls are fine as long
// as they touch disjoint storage.
//
// # Storage
//
// Arena is a chunked bump allocator that hands out raw regions for the range
// operations; SafeArena wraps it with a mutex. The operations themselves
// never allocate.
package rawmem
