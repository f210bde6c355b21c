package rawmem

import "fmt"

// ConstructionError reports the slot at which a range operation failed. By
// the time it is returned every slot the operation constructed has been
// destroyed again.
type ConstructionError struct {
	Op    string // "copy", "fill", "move" or "construct"
	Index int    // 0-based index of the slot that failed
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("rawmem: %s: slot %d: %v", e.Op, e.Index, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }
