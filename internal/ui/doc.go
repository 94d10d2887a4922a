// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities: colorized
// when available, text decorations (backticks, quotes) when NO_COLOR is set
// or the terminal doesn't support colors.
//
//	ui.Code.Sprint("rice-cli check")       // Commands and code
//	ui.Path.Sprint("rice.config.toml")     // File paths
//	ui.Success.Sprint("✓")                  // Success indicators
//	ui.Error.Sprint("✗")                    // Error indicators
//	ui.Highlight.Sprint("https://...")     // User values
//	ui.Muted.Sprint("not set")             // De-emphasized text
//
// The package also owns secret redaction: MaskSecret is the only sanctioned
// way to render an auth token for display.
package ui
