package pipefx

import "iter"

// Receiver is implemented by values that accept items broadcast by Dispatch.
//
// Receive stands in for calling a method by name on objects of unknown type:
// any type that should take part in a broadcast implements this one method.
// Types that cannot, or that expose several candidate methods, are reached
// through DispatchMethod instead.
type Receiver[T any] interface {
	Receive(item T) error
}

// ReceiverFunc adapts an ordinary function to a Receiver.
type ReceiverFunc[T any] func(item T) error

// Receive calls f(item).
func (f ReceiverFunc[T]) Receive(item T) error {
	return f(item)
}

// Dispatch calls Receive(item) on every receiver, in order.
//
// The first error is returned as-is and the remaining receivers are not
// called. Receivers that already ran are not rolled back.
func Dispatch[T any, R Receiver[T]](receivers iter.Seq[R], item T) error {
	for r := range receivers {
		if err := r.Receive(item); err != nil {
			return err
		}
	}
	return nil
}

// DispatchMethod calls method(r, item) on every receiver, in order, with the
// same failure rules as Dispatch.
//
// method is usually a method expression, which selects the operation at
// compile time:
//
//	err := pipefx.DispatchMethod(slices.Values(accounts), (*Account).Update, 5)
func DispatchMethod[T, R any](receivers iter.Seq[R], method func(R, T) error, item T) error {
	for r := range receivers {
		if err := method(r, item); err != nil {
			return err
		}
	}
	return nil
}
