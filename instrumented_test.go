package rawmem

import "errors"

var errBoom = errors.New("boom")

// ledger counts lifecycle events for tracked values.
type ledger struct {
	attempts  int   // construction attempts, including failed ones
	failAt    int   // 1-based attempt that fails; 0 never fails
	panicAt   int   // 1-based attempt that panics; 0 never panics
	destroyed []int // ids in destruction order
}

func (l *ledger) attempt() error {
	l.attempts++
	if l.attempts == l.panicAt {
		panic(errBoom)
	}
	if l.attempts == l.failAt {
		return errBoom
	}
	return nil
}

// tracked is a non-trivial element type with every lifecycle hook.
type tracked struct {
	id    int
	live  bool
	moved bool
	l     *ledger
}

func (t *tracked) CopyFrom(src *tracked) error {
	// Half-built state, visible if the attempt fails.
	t.id, t.l = src.id, src.l
	if err := src.l.attempt(); err != nil {
		return err
	}
	*t = tracked{id: src.id, live: true, l: src.l}
	return nil
}

func (t *tracked) MoveFrom(src *tracked) error {
	// Half-built state, visible if the attempt fails.
	t.id, t.l = src.id, src.l
	if err := src.l.attempt(); err != nil {
		return err
	}
	*t = tracked{id: src.id, live: true, l: src.l}
	src.moved = true
	return nil
}

func (t *tracked) Destroy() {
	t.l.destroyed = append(t.l.destroyed, t.id)
	t.live = false
}

func trackedSeq(l *ledger, n int) []tracked {
	s := make([]tracked, n)
	for i := range s {
		s[i] = tracked{id: i + 1, live: true, l: l}
	}
	return s
}

// defaultLedger backs initTracked, whose Init has no receiver state to reach
// a ledger through.
var defaultLedger *ledger

type initTracked struct {
	id   int
	live bool
}

func (t *initTracked) Init() error {
	t.live = true
	if err := defaultLedger.attempt(); err != nil {
		return err
	}
	t.id = defaultLedger.attempts
	t.live = true
	return nil
}

func (t *initTracked) Destroy() {
	defaultLedger.destroyed = append(defaultLedger.destroyed, t.id)
}

// presetInit declares a trivial default but still sets itself up in Init.
type presetInit struct {
	v int
}

func (presetInit) CapabilityFacts() Facts { return Facts{TrivialDefault: true} }

func (p *presetInit) Init() error {
	p.v = 7
	return nil
}

// trivialTracked claims trivial destruction but still counts Destroy calls,
// to show range destruction never visits its elements.
type trivialTracked struct {
	n *int
}

func (trivialTracked) CapabilityFacts() Facts {
	return Facts{TrivialDefault: true, TrivialCopy: true, TrivialAssign: true, TrivialDestroy: true}
}

func (t *trivialTracked) Destroy() { *t.n++ }

// counted is non-trivial and counts Destroy calls.
type counted struct {
	n *int
}

func (t *counted) Destroy() { *t.n++ }

// slowInt is a named integer. Named types are not registered, so it takes the
// elementwise path with the same bytes as int64.
type slowInt int64
