// Package bank holds the digit buffer parsed from a single input line and the
// read-only views the selector recurses over. A Bank owns its digits; a View
// only records bounds into one.
package bank
