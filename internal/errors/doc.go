// Package errors defines sentinel errors shared across rice-cli commands.
//
// Sentinels let callers distinguish expected failure modes (nothing
// enabled, malformed module, failed probes) from I/O errors with
// errors.Is, without string matching on messages.
package errors
