// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load configuration,
// resolve the input source, aggregate, report), decoupled from any specific
// entrypoint like a CLI.
package app
