package hcl

// DefaultConfig is evaluated before any user file, so user files only need
// to declare what they change.
const DefaultConfig = `
source "examples" {
  path = format("%s/examples/%02d.txt", var.data_dir, var.day)
}

source "input" {
  path = format("%s/inputs/%02d.txt", var.data_dir, var.day)
}

part "1" {
  digits = 2
}

part "2" {
  digits = 12
}
`

// defaultFilename names the built-in configuration in diagnostics.
const defaultFilename = "<default>.hcl"
