package pipefx

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Groups maps keys to the values that produced them.
//
// Keys are kept in the order they were first seen and each group keeps its
// values in input order. The zero value is not usable; Groups are built by
// GroupByKey and TryGroupByKey.
type Groups[K comparable, T any] struct {
	m    *orderedmap.OrderedMap[K, []T]
	size int
}

func newGroups[K comparable, T any]() *Groups[K, T] {
	return &Groups[K, T]{m: orderedmap.New[K, []T]()}
}

func (g *Groups[K, T]) add(k K, item T) {
	g.size++
	if pair := g.m.GetPair(k); pair != nil {
		pair.Value = append(pair.Value, item)
		return
	}
	g.m.Set(k, []T{item})
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int {
	return g.m.Len()
}

// Size returns the number of grouped values across all keys.
func (g *Groups[K, T]) Size() int {
	return g.size
}

// Get returns the values grouped under k.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	return g.m.Get(k)
}

// Keys yields the keys in first-seen order.
func (g *Groups[K, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := g.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// All yields every key with its group, keys in first-seen order.
//
// The yielded slices are the ones held by g.
func (g *Groups[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for pair := g.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Map returns the groups as a plain map. Key order is lost.
func (g *Groups[K, T]) Map() map[K][]T {
	out := make(map[K][]T, g.m.Len())
	for k, v := range g.All() {
		out[k] = v
	}
	return out
}

// GroupByKey consumes seq and groups its values by the key keyFunc returns for
// them.
//
// Unlike GroupBy-style stream operators, values with the same key need not be
// adjacent: every value lands in its key's group, after the values of that key
// seen before it. seq must be finite.
//
// For example, given input values:
//
//	1, 2, 3, 4, 5
//
// and keyFunc x%2, GroupByKey returns:
//
//	1: [1, 3, 5]
//	0: [2, 4]
func GroupByKey[T any, K comparable](seq iter.Seq[T], keyFunc func(T) K) *Groups[K, T] {
	groups := newGroups[K, T]()
	for item := range seq {
		groups.add(keyFunc(item), item)
	}
	return groups
}

// TryGroupByKey is GroupByKey for a key function that may fail.
//
// The first error stops consumption of seq and is returned as-is with nil
// Groups.
func TryGroupByKey[T any, K comparable](seq iter.Seq[T], keyFunc func(T) (K, error)) (*Groups[K, T], error) {
	groups := newGroups[K, T]()
	for item := range seq {
		k, err := keyFunc(item)
		if err != nil {
			return nil, err
		}
		groups.add(k, item)
	}
	return groups, nil
}
