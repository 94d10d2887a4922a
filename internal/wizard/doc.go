// Package wizard implements the interactive setup flow as a single-pass
// sequence of prompts:
//
//	Enable Storage? → [URL → User → Token]
//	→ Enable State? → [URL → Run ID → Token] → Done
//
// Answers are supplied through the Prompter interface so the flow itself
// never touches a terminal: commands hand it a Terminal prompter, tests a
// Scripted one. The bracketed sub-sequences are skipped entirely when the
// preceding enable answer is no, and the disabled service's stored fields
// are discarded.
package wizard
