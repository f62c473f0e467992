package joltage

import "github.com/vk/joltage/internal/bank"

// Greedy returns the same value as Largest in a single left-to-right pass:
// for each output slot it takes the leftmost maximum digit that still leaves
// enough digits behind it to fill the slots after it.
func Greedy(v bank.View, remaining int) uint64 {
	n := v.Len()
	if remaining <= 0 || n < remaining {
		return 0
	}

	var result uint64
	from := 0
	for left := remaining; left > 0; left-- {
		i := leftmostMax(v, from, n-left+1)
		result = result*10 + uint64(v.At(i))
		from = i + 1
	}
	return result
}
