package joltage

import "github.com/vk/joltage/internal/bank"

// Selector picks the largest remaining-digit value out of a view.
type Selector interface {
	Select(v bank.View, remaining int) uint64
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(v bank.View, remaining int) uint64

// Select calls f(v, remaining).
func (f SelectorFunc) Select(v bank.View, remaining int) uint64 { return f(v, remaining) }

// memoKey identifies a sub-problem. Every view reached from the same call
// shares its end, so the start offset is enough to identify it.
type memoKey struct {
	start     int
	remaining int
}

type recursion struct {
	memo map[memoKey]uint64
}

// Largest returns the maximum value obtainable by choosing remaining digits
// from v in their original order, most significant first. It returns 0 when
// remaining is not positive or v holds fewer than remaining digits.
func Largest(v bank.View, remaining int) uint64 {
	r := recursion{memo: make(map[memoKey]uint64)}
	return r.largest(v, remaining)
}

func (r *recursion) largest(v bank.View, remaining int) uint64 {
	if remaining <= 0 || v.Len() < remaining {
		return 0
	}

	key := memoKey{start: v.Start(), remaining: remaining}
	if cached, ok := r.memo[key]; ok {
		return cached
	}

	i := leftmostMax(v, 0, v.Len()-remaining+1)
	sub := v.Tail(i)

	consume := uint64(v.At(i))*IPow(10, uint64(remaining-1)) + r.largest(sub, remaining-1)
	skip := r.largest(sub, remaining)

	best := skip
	if consume > skip {
		best = consume
	}
	r.memo[key] = best
	return best
}

// leftmostMax returns the index in [from, to) holding the largest digit.
// Only a strictly greater digit replaces the current best.
func leftmostMax(v bank.View, from, to int) int {
	best := from
	for i := from + 1; i < to; i++ {
		if v.At(i) > v.At(best) {
			best = i
		}
	}
	return best
}
