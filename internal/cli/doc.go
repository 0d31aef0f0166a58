// Package cli defines the Cobra command tree. Each file registers one
// top-level command (list, sideload, remove, validate, new, ...) with
// the root command. Commands delegate to internal packages for the
// actual work and only handle flag parsing, prompting, and output
// formatting.
package cli
