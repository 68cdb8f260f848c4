package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Naturals yields 0, 1, 2, ... forever.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Counting wraps in and increments *pulled every time an element is taken
// from it. Tests use it to check how far a lazy stage consumed its source.
func Counting[T any](in iter.Seq[T], pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range in {
			*pulled++
			if !yield(item) {
				break
			}
		}
	}
}
