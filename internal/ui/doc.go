// Package ui provides terminal output formatting for commandrs host
// binaries.
//
// The commandrs core never prints; everything user-facing funnels through
// here instead:
//   - Info, success, and failure messages with colored glyphs
//   - Dimmed hint lines for secondary information
//   - Help text rendering to the output writer
//
// All output goes to ui.Out (defaults to os.Stderr) to allow testing and
// output redirection.
//
// Example usage:
//
//	ui.Fail("could not parse arguments: %v", err)
//	ui.Hint("Run %s for usage information", ui.Bold("bunnywatch --help"))
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
package ui
