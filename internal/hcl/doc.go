// Package hcl provides the concrete HCL implementation of config.Loader. It
// parses .hcl files, evaluates their expressions against a context built
// from config.Variables and translates the decoded blocks into a
// config.Model.
package hcl
