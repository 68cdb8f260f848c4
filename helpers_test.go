package pipefx_test

import (
	"iter"
)

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func collect[T any](seq iter.Seq[T]) []T {
	var vals []T
	for v := range seq {
		vals = append(vals, v)
	}
	return vals
}

func collect2[T any](seq iter.Seq2[T, error]) ([]T, []error) {
	var vals []T
	var errs []error
	for v, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals = append(vals, v)
	}
	return vals, errs
}
