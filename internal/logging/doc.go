// Package logger provides leveled logging for rice-cli commands.
//
// Verbosity is controlled by two per-command flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug messages
//
// Warnings and errors are always shown and go to stderr so they survive
// output redirection. Commands construct a logger in their
// PersistentPreRun from the flag values and pass it down.
//
// Secret values must never reach the logger; call sites log the masked
// form from the ui package instead.
package logger
