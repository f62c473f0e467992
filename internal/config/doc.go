// Package config defines the format-agnostic configuration model: the named
// input sources a run can read from and the parts (selection lengths) it
// totals. Concrete loaders, such as the HCL one, live in separate packages
// and translate their files into a Model.
package config
