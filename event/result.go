package event

// Callback is an action triggered by a consumed event. It closes over
// the application root and is safe to store, copy and invoke later
// from the dispatch loop.
type Callback func()

// Result is a view's answer to an event: either the event was ignored
// and the parent may keep handling it, or it was consumed, optionally
// with a callback to run once routing is over.
//
// A consumed result without callback still stops propagation; it is
// not the same as an ignored result.
type Result struct {
	consumed bool
	cb       Callback
}

// Ignored returns the not-consumed result.
func Ignored() Result {
	return Result{}
}

// Consumed returns a consumed result with no callback.
func Consumed() Result {
	return Result{consumed: true}
}

// ConsumedWith returns a consumed result carrying a callback.
func ConsumedWith(cb Callback) Result {
	return Result{consumed: true, cb: cb}
}

// IsConsumed reports whether the event was consumed.
func (r Result) IsConsumed() bool {
	return r.consumed
}

// HasCallback reports whether a callback is attached.
func (r Result) HasCallback() bool {
	return r.cb != nil
}

// Process runs the attached callback, if any.
func (r Result) Process() {
	if r.cb != nil {
		r.cb()
	}
}

// OrElse returns r if it was consumed, otherwise evaluates f.
func (r Result) OrElse(f func() Result) Result {
	if r.consumed {
		return r
	}
	return f()
}

// And merges two results. Ignored is the identity; two callbacks merge
// into one that runs both in order.
func (r Result) And(other Result) Result {
	switch {
	case !r.consumed:
		return other
	case !other.consumed:
		return r
	case r.cb == nil:
		return other
	case other.cb == nil:
		return r
	}
	first, second := r.cb, other.cb
	return ConsumedWith(func() {
		first()
		second()
	})
}

// Combine merges any number of results. If all are ignored it returns
// Ignored; otherwise it returns one consumed result whose callback
// runs every attached callback in the original order.
func Combine(results ...Result) Result {
	var cbs []Callback
	consumed := false
	for _, r := range results {
		if !r.consumed {
			continue
		}
		consumed = true
		if r.cb != nil {
			cbs = append(cbs, r.cb)
		}
	}
	if !consumed {
		return Ignored()
	}
	return ConsumedWith(func() {
		for _, cb := range cbs {
			cb()
		}
	})
}
