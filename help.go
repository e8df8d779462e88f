package commandrs

import (
	"fmt"
	"strings"
)

// HelpText renders the program description and one line per flag, in
// registration order, with names and required/default markers padded into
// aligned columns. It is a pure view over the schema; nothing is printed.
func (p *Program) HelpText() string {
	if len(p.flags) == 0 {
		return fmt.Sprintf("\n%s\n\n(no args)\n", p.desc)
	}

	// Column widths are just for formatting.
	markers := make([]string, len(p.flags))
	longestName, longestMarker := 0, 0
	for i, f := range p.flags {
		marker := "(required)"
		if !f.Required {
			marker = fmt.Sprintf("(default: %s)", formatValue(f.def))
		}
		markers[i] = marker
		longestName = max(longestName, len(f.Name))
		longestMarker = max(longestMarker, len(marker))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n\n", p.desc)
	for i, f := range p.flags {
		fmt.Fprintf(&sb, "\t--%-*s %-*s: %s\n",
			longestName, f.Name, longestMarker, markers[i], f.Description)
	}
	return sb.String()
}
