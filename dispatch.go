package rawmem

// lifecycle is the per-type strategy table. It is resolved once per call from
// the type's facts and hook interfaces, so loops over elements never re-check
// which path to take.
type lifecycle[T any] struct {
	facts   Facts
	hasInit bool
	init    func(p *T) error
	copy    func(dst, src *T) error
	move    func(dst, src *T) error
	destroy func(p *T)
}

func lifecycleOf[T any]() lifecycle[T] {
	var probe *T
	_, hasInit := any(probe).(Initializer)
	_, hasCopy := any(probe).(Copier[T])
	_, hasMove := any(probe).(Mover[T])
	_, hasDestroy := any(probe).(Destroyer)

	lc := lifecycle[T]{facts: FactsOf[T](), hasInit: hasInit}

	if hasInit {
		lc.init = func(p *T) error {
			return constructIn(p, any(p).(Initializer).Init)
		}
	} else {
		lc.init = func(p *T) error {
			var zero T
			*p = zero
			return nil
		}
	}

	if hasCopy {
		lc.copy = func(dst, src *T) error {
			return constructIn(dst, func() error { return any(dst).(Copier[T]).CopyFrom(src) })
		}
	} else {
		lc.copy = func(dst, src *T) error {
			*dst = *src
			return nil
		}
	}

	switch {
	case hasMove:
		lc.move = func(dst, src *T) error {
			return constructIn(dst, func() error { return any(dst).(Mover[T]).MoveFrom(src) })
		}
	case lc.facts.POD:
		lc.move = lc.copy
	default:
		lc.move = func(dst, src *T) error {
			var zero T
			*dst = *src
			*src = zero
			return nil
		}
	}

	trivial := lc.facts.TrivialDestroy
	lc.destroy = func(p *T) {
		if hasDestroy {
			any(p).(Destroyer).Destroy()
		}
		if !trivial {
			var zero T
			*p = zero
		}
	}
	return lc
}

// constructIn zeroes p and runs hook on it. Unless hook returns nil, p is
// zeroed again on the way out, whether hook failed or panicked.
func constructIn[T any](p *T, hook func() error) error {
	var zero T
	*p = zero
	ok := false
	defer func() {
		if !ok {
			*p = zero
		}
	}()
	if err := hook(); err != nil {
		return err
	}
	ok = true
	return nil
}

// destroyRange destroys live in forward order unless the type's destruction is
// known to be free of side effects.
func destroyRange[T any](lc lifecycle[T], live []T) {
	if lc.facts.TrivialDestroy {
		return
	}
	for i := range live {
		lc.destroy(&live[i])
	}
}
