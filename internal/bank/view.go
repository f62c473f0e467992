package bank

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds is matched by every BoundsError.
var ErrInvalidBounds = errors.New("invalid view bounds")

// Rule identifies which bounds check rejected a view.
type Rule int

const (
	// RuleOutOfBounds means start or end fell outside the bank.
	RuleOutOfBounds Rule = iota + 1
	// RuleInverted means start came after end.
	RuleInverted
)

// String returns the diagnostic message for the rule.
func (r Rule) String() string {
	switch r {
	case RuleOutOfBounds:
		return "slice must be within bounds"
	case RuleInverted:
		return "start must be before end"
	default:
		return "unknown rule"
	}
}

// BoundsError is returned by Slice together with an empty view.
type BoundsError struct {
	Rule  Rule
	Start int
	End   int
	Len   int
}

// Error implements the error interface for BoundsError.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: [%d, %d) over %d digits", e.Rule, e.Start, e.End, e.Len)
}

// Is reports whether target is ErrInvalidBounds.
func (e *BoundsError) Is(target error) bool { return target == ErrInvalidBounds }

// View is a read-only half-open window [start, end) into a Bank. The zero
// View is empty.
type View struct {
	bank  *Bank
	start int
	end   int
}

// Slice returns the view [start, end) over b. On invalid bounds it returns
// the empty view and a *BoundsError describing the failed rule.
func Slice(b *Bank, start, end int) (View, error) {
	if start < 0 || start >= b.len || end > b.len {
		return View{}, &BoundsError{Rule: RuleOutOfBounds, Start: start, End: end, Len: b.len}
	}
	if start > end {
		return View{}, &BoundsError{Rule: RuleInverted, Start: start, End: end, Len: b.len}
	}
	return View{bank: b, start: start, end: end}, nil
}

// Len returns end - start.
func (v View) Len() int { return v.end - v.start }

// Start returns the view's offset into its bank.
func (v View) Start() int { return v.start }

// At returns the i-th digit of the view. It panics if i is out of range.
func (v View) At(i int) uint8 {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("bank: index %d out of range [0, %d)", i, v.Len()))
	}
	return v.bank.buf[v.start+i]
}

// Tail returns the view of every digit after position i. It is empty when
// nothing follows i.
func (v View) Tail(i int) View {
	from := v.start + i + 1
	if from >= v.end {
		return View{bank: v.bank, start: v.end, end: v.end}
	}
	return View{bank: v.bank, start: from, end: v.end}
}

// Digits returns a copy of the digits covered by the view.
func (v View) Digits() []uint8 {
	if v.Len() == 0 {
		return nil
	}
	out := make([]uint8, v.Len())
	copy(out, v.bank.buf[v.start:v.end])
	return out
}
