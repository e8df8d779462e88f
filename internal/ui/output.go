// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	// Color/style functions
	Bold  = color.New(color.Bold).SprintFunc()
	Dim   = color.New(color.Faint).SprintFunc()
	Green = color.New(color.FgGreen).SprintFunc()
	Cyan  = color.New(color.FgCyan).SprintFunc()
	Red   = color.New(color.FgRed).SprintFunc()

	// Output destination (defaults to stderr, keeping stdout for values)
	Out io.Writer = os.Stderr
)

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s→%s %s\n", Cyan(""), Dim(""), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s✔%s %s\n", Green(""), Dim(""), msg)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s✘%s %s\n", Red(""), Dim(""), msg)
}

// Hint prints a dimmed secondary message.
func Hint(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s\n", Dim(msg))
}

// Help writes pre-rendered help text verbatim.
func Help(text string) {
	fmt.Fprint(Out, text)
}
