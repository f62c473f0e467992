package bank

import (
	"errors"
	"fmt"
)

// Capacity is the maximum number of digits a single bank can hold.
const Capacity = 128

var (
	// ErrTooLong is returned when a line has more digits than Capacity.
	ErrTooLong = errors.New("line exceeds maximum supported length")
	// ErrInvalidDigit is returned when a line contains a non-digit character.
	ErrInvalidDigit = errors.New("line contains a non-digit character")
)

// ParseError describes why a raw line could not be turned into a Bank.
type ParseError struct {
	Err    error
	Length int
	Offset int
	Char   byte
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrTooLong) {
		return fmt.Sprintf("%v: %d > %d", e.Err, e.Length, Capacity)
	}
	return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Char, e.Offset)
}

// Unwrap returns the sentinel error.
func (e *ParseError) Unwrap() error { return e.Err }

// Bank is a fixed-capacity sequence of digit values parsed from one line.
type Bank struct {
	len int
	buf [Capacity]uint8
}

// Parse maps each ASCII digit of raw to its numeric value, preserving order.
func Parse(raw []byte) (Bank, error) {
	var b Bank
	if len(raw) > Capacity {
		return Bank{}, &ParseError{Err: ErrTooLong, Length: len(raw)}
	}
	for i, c := range raw {
		if c < '0' || c > '9' {
			return Bank{}, &ParseError{Err: ErrInvalidDigit, Length: len(raw), Offset: i, Char: c}
		}
		b.buf[i] = c - '0'
	}
	b.len = len(raw)
	return b, nil
}

// FromDigits builds a Bank from already-decoded digit values.
func FromDigits(digits ...uint8) (Bank, error) {
	var b Bank
	if len(digits) > Capacity {
		return Bank{}, &ParseError{Err: ErrTooLong, Length: len(digits)}
	}
	for i, d := range digits {
		if d > 9 {
			return Bank{}, &ParseError{Err: ErrInvalidDigit, Length: len(digits), Offset: i, Char: '0' + d}
		}
		b.buf[i] = d
	}
	b.len = len(digits)
	return b, nil
}

// Len returns the number of valid digits.
func (b *Bank) Len() int { return b.len }

// Digits returns a copy of the valid digits.
func (b *Bank) Digits() []uint8 {
	out := make([]uint8, b.len)
	copy(out, b.buf[:b.len])
	return out
}

// Full returns a view over every digit of the bank.
func (b *Bank) Full() (View, error) {
	return Slice(b, 0, b.len)
}
