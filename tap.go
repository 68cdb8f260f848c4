package pipefx

import "iter"

type (
	// EffectFunc is a procedure called only for its side effect.
	EffectFunc[T any] func(item T)

	// TryEffectFunc is a side-effecting procedure that may fail.
	TryEffectFunc[T any] func(item T) error
)

// Also calls fn with item and returns item unchanged.
//
// It lets a side effect sit inside an expression without altering the value
// flowing through it:
//
//	process(pipefx.Also(req, auditLog))
func Also[T any](item T, fn EffectFunc[T]) T {
	fn(item)
	return item
}

// TryAlso is Also for a procedure that may fail. item is returned in both
// cases; the error, if any, is returned as-is.
func TryAlso[T any](item T, fn TryEffectFunc[T]) (T, error) {
	return item, fn(item)
}

// Tap returns a sequence that calls fn on each value of seq before yielding
// the value unchanged.
//
// fn runs only when the consumer asks for the next value, so an infinite seq
// produces an infinite Tap. The result can be ranged over again only if seq can.
//
// Tap panics if fn is nil.
func Tap[T any](seq iter.Seq[T], fn EffectFunc[T]) iter.Seq[T] {
	if fn == nil {
		panic("pipefx.Tap: fn must not be nil")
	}

	return func(yield func(T) bool) {
		for item := range seq {
			fn(item)
			if !yield(item) {
				return
			}
		}
	}
}

// TryTap is Tap for a procedure that may fail.
//
// Successful values are yielded with a nil error. When fn fails, the value it
// failed on is yielded together with the error and the sequence ends without
// pulling anything else from seq.
//
// TryTap panics if fn is nil.
func TryTap[T any](seq iter.Seq[T], fn TryEffectFunc[T]) iter.Seq2[T, error] {
	if fn == nil {
		panic("pipefx.TryTap: fn must not be nil")
	}

	return func(yield func(T, error) bool) {
		for item := range seq {
			if err := fn(item); err != nil {
				yield(item, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
