// Package joltage selects, from a bank view, the in-order subsequence of a
// fixed number of digits whose concatenation is the largest number.
//
// Largest is the reference dual recursion: at every step it commits to the
// leftmost maximum digit that still leaves room for the remaining slots, and
// separately tries skipping it. Greedy is the single-pass equivalent. Both
// apply the same tie rule (earliest maximum wins) and return identical
// results for every input.
package joltage
