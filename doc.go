/*
Package pipefx provides small higher-order helpers for inserting side effects,
conditional transformations and grouping into iter.Seq pipelines.

Every helper is independent and stateless. The lazy ones (Tap, Mutate, CondMap
and their Try variants) return a new iter.Seq and do nothing until that sequence
is iterated. Nothing is pulled from the source and no callback runs before the
consumer asks for the next value, and stopping the range loop stops the source.
The eager ones (GroupByKey, Dispatch) consume their input before returning.

Callbacks that cannot fail are plain functions. Callbacks that can fail have a
Try variant returning iter.Seq2[T, error] (or a second error return for eager
helpers). Errors are never wrapped: the value returned by the callback is the
value the caller sees. After the first error a Try sequence yields nothing more
and pulls nothing more from its source.

Example of a simple pipeline:

	// Log every raw line without splitting the loop in two.
	lines := pipefx.Tap(ReadLines(r), func(l string) {
		log.Println("read:", l)
	})

	// First matching rule wins; lines matching nothing are dropped.
	events := pipefx.CondMap(lines,
		pipefx.When(isPurchase, parsePurchase),
		pipefx.When(isRefund, parseRefund),
	)

	// Bucket by customer, keeping arrival order in each bucket.
	byCustomer := pipefx.GroupByKey(events, func(e Event) string {
		return e.Customer
	})

	for customer, evs := range byCustomer.All() {
		// Notify every subscriber; the first failure stops the broadcast.
		err := pipefx.Dispatch(slices.Values(subscribers), Batch{customer, evs})
		if err != nil {
			return err
		}
	}

Mutate yields the same pointer on every step. Values retained from it alias each
other; use Snapshots when each step needs its own copy.
*/
package pipefx
