// Package registry provides the central "glue" for the module system.
//
// Modules compiled into the binary register named selectors (how a bank's
// largest value is found) and reporters (how totals are written). The CLI
// refers to them by name, and the registry resolves those names at startup so
// a typo fails before any input is read.
package registry
