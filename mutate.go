package pipefx

import "iter"

// Mutate drives fn over a single object: for each value x of driver it calls
// fn(obj, x) and then yields obj.
//
// Every yielded value is the same pointer. The sequence shows the intermediate
// states of obj only while each one is current; a value kept from an earlier
// step sees every later mutation, and mutating a kept value mutates obj itself
// (which in turn changes what fn sees on the next step). Callers that need to
// retain intermediate states must copy them, or use Snapshots.
//
//	// steps alias acc: do not keep them past the loop body.
//	for acc := range pipefx.Mutate(deposits, &account, (*Account).Deposit) {
//		report(acc.Balance)
//	}
//
// Mutate panics if obj or fn is nil.
func Mutate[X, O any](driver iter.Seq[X], obj *O, fn func(obj *O, x X)) iter.Seq[*O] {
	if obj == nil || fn == nil {
		panic("pipefx.Mutate: obj and fn must not be nil")
	}

	return func(yield func(*O) bool) {
		for x := range driver {
			fn(obj, x)
			if !yield(obj) {
				return
			}
		}
	}
}

// TryMutate is Mutate for a mutation that may fail.
//
// On failure obj is yielded with the error, in whatever state fn left it, and
// the sequence ends. Already applied mutations are not undone.
//
// TryMutate panics if obj or fn is nil.
func TryMutate[X, O any](driver iter.Seq[X], obj *O, fn func(obj *O, x X) error) iter.Seq2[*O, error] {
	if obj == nil || fn == nil {
		panic("pipefx.TryMutate: obj and fn must not be nil")
	}

	return func(yield func(*O, error) bool) {
		for x := range driver {
			if err := fn(obj, x); err != nil {
				yield(obj, err)
				return
			}
			if !yield(obj, nil) {
				return
			}
		}
	}
}

// Snapshots behaves like Mutate but yields a copy of *obj after every step, so
// retained values do not change under the caller.
//
// clone produces the copy. When clone is nil a plain assignment is used, which
// is shallow: slices, maps and pointers inside O are still shared with obj.
//
// Snapshots panics if obj or fn is nil.
func Snapshots[X, O any](driver iter.Seq[X], obj *O, fn func(obj *O, x X), clone func(O) O) iter.Seq[O] {
	if obj == nil || fn == nil {
		panic("pipefx.Snapshots: obj and fn must not be nil")
	}
	if clone == nil {
		clone = func(o O) O { return o }
	}

	return func(yield func(O) bool) {
		for x := range driver {
			fn(obj, x)
			if !yield(clone(*obj)) {
				return
			}
		}
	}
}
