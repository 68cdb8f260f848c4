package pipefx

import "iter"

type (

	// MapFunc is a pure mapping function that transforms a value of type In
	// into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// TryMapFunc is a mapping function that may return an error.
	TryMapFunc[In, Out any] func(in In) (Out, error)

	// Predicate reports whether a rule applies to item.
	Predicate[T any] func(item T) bool
)

// Rule pairs a Predicate with the transformation applied to values it accepts.
type Rule[In, Out any] struct {
	When Predicate[In]
	Then MapFunc[In, Out]
}

// When returns a Rule applying fn to values accepted by pred.
func When[In, Out any](pred Predicate[In], fn MapFunc[In, Out]) Rule[In, Out] {
	return Rule[In, Out]{When: pred, Then: fn}
}

// Otherwise returns a Rule that accepts every value. Placed last, it turns
// CondMap into a total mapping.
func Otherwise[In, Out any](fn MapFunc[In, Out]) Rule[In, Out] {
	return Rule[In, Out]{When: always[In], Then: fn}
}

// TryRule is a Rule whose transformation may fail.
type TryRule[In, Out any] struct {
	When Predicate[In]
	Then TryMapFunc[In, Out]
}

// TryWhen returns a TryRule applying fn to values accepted by pred.
func TryWhen[In, Out any](pred Predicate[In], fn TryMapFunc[In, Out]) TryRule[In, Out] {
	return TryRule[In, Out]{When: pred, Then: fn}
}

// TryOtherwise returns a TryRule that accepts every value.
func TryOtherwise[In, Out any](fn TryMapFunc[In, Out]) TryRule[In, Out] {
	return TryRule[In, Out]{When: always[In], Then: fn}
}

func always[T any](T) bool { return true }

// CondMap transforms each value of seq with the first rule whose predicate
// accepts it. Predicates after the first match are not evaluated, and every
// value starts again from the first rule.
//
// Values accepted by no rule are dropped, so the output may be shorter than the
// input:
//
//	labels := pipefx.CondMap(slices.Values([]int{-1, 0, 1}),
//		pipefx.When(isNegative, func(int) string { return "neg" }),
//		pipefx.When(isZero, func(int) string { return "zero" }),
//	)
//	// labels yields "neg", "zero"
//
// CondMap panics if a rule has a nil predicate or transformation.
func CondMap[In, Out any](seq iter.Seq[In], rules ...Rule[In, Out]) iter.Seq[Out] {
	for _, r := range rules {
		if r.When == nil || r.Then == nil {
			panic("pipefx.CondMap: rule with nil predicate or transformation")
		}
	}

	return func(yield func(Out) bool) {
		for in := range seq {
			for _, r := range rules {
				if !r.When(in) {
					continue
				}
				if !yield(r.Then(in)) {
					return
				}
				break
			}
		}
	}
}

// TryCondMap is CondMap for rules whose transformation may fail.
//
// The first error is yielded with the zero Out and the sequence ends without
// pulling anything else from seq.
//
// TryCondMap panics if a rule has a nil predicate or transformation.
func TryCondMap[In, Out any](seq iter.Seq[In], rules ...TryRule[In, Out]) iter.Seq2[Out, error] {
	for _, r := range rules {
		if r.When == nil || r.Then == nil {
			panic("pipefx.TryCondMap: rule with nil predicate or transformation")
		}
	}

	return func(yield func(Out, error) bool) {
		for in := range seq {
			for _, r := range rules {
				if !r.When(in) {
					continue
				}
				out, err := r.Then(in)
				if err != nil {
					var zero Out
					yield(zero, err)
					return
				}
				if !yield(out, nil) {
					return
				}
				break
			}
		}
	}
}
