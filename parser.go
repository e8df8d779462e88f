package commandrs

import "strings"

// flagPrefix is the token convention for flag names. Matching is exact after
// stripping: no prefix abbreviation, no short forms.
const flagPrefix = "--"

// Parse walks tokens left to right against the schema and returns a fully
// populated Result, or the first error the scan runs into.
//
// Scan errors (unknown flag, missing or malformed value, a flag given twice)
// fail fast in token order. Missing required flags are only checked after the
// whole token list has been scanned, and all of them are reported in a single
// MissingRequiredError. A --help or -h token aborts immediately with ErrHelp.
//
// Parse reads only the tokens it is given; it never touches os.Args.
func (p *Program) Parse(tokens []string) (*Result, error) {
	values := make(map[string]typedValue, len(p.flags))
	seen := make(map[string]bool, len(p.flags))

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok == "--help" || tok == "-h" {
			return nil, ErrHelp
		}

		name, ok := strings.CutPrefix(tok, flagPrefix)
		if !ok {
			return nil, &UnknownFlagError{Name: tok}
		}
		idx, ok := p.index[name]
		if !ok {
			return nil, &UnknownFlagError{Name: name}
		}
		f := p.flags[idx]

		// A flag given twice is an error, never last-write-wins.
		if seen[name] {
			return nil, &DuplicateFlagError{Name: name}
		}
		seen[name] = true

		if f.isSwitch {
			values[name] = typedValue{kind: KindBool, b: true}
			i++
			continue
		}

		if i+1 >= len(tokens) {
			return nil, &MissingValueError{Flag: name}
		}
		// The next token is the value, verbatim. This keeps negative
		// numbers and dashed strings representable.
		tv, err := parseToken(f, tokens[i+1])
		if err != nil {
			return nil, err
		}
		values[name] = tv
		i += 2
	}

	var missing []string
	for _, f := range p.flags {
		if seen[f.Name] {
			continue
		}
		if f.Required {
			missing = append(missing, f.Name)
			continue
		}
		values[f.Name] = f.def
	}
	if len(missing) > 0 {
		return nil, &MissingRequiredError{Names: missing}
	}

	return &Result{program: p, values: values}, nil
}
