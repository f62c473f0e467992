package joltage

// MaxDigits is the longest selection whose value always fits in a uint64.
const MaxDigits = 19

// IPow returns base**exp by repeated multiplication. IPow(x, 0) is 1 for
// every x. Overflow wraps silently.
func IPow(base, exp uint64) uint64 {
	result := uint64(1)
	for i := uint64(0); i < exp; i++ {
		result *= base
	}
	return result
}
