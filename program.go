package commandrs

import "strings"

// Builder accumulates flag registrations. It is the mutable first phase of a
// program's life; Build finalizes it into an immutable Program. There is no
// way back: flags cannot be registered once a Program exists, so "registered
// after parse" is unrepresentable rather than checked at runtime.
type Builder struct {
	desc  string
	flags []Flag
}

// NewProgram starts an empty builder carrying only the program description.
func NewProgram(description string) *Builder {
	return &Builder{desc: description}
}

// Required registers a flag that must be supplied on every command line.
// Entries keep registration order, which is also help-text order.
func Required[T Value](b *Builder, name, description string) error {
	kind, bits, typeName := kindOf[T]()
	return b.add(Flag{
		Name:        name,
		Kind:        kind,
		Required:    true,
		Description: description,
		typeName:    typeName,
		bits:        bits,
	})
}

// Optional registers a flag that falls back to def when absent. The default
// is round-tripped through the coercion layer so that help text and parsing
// always agree on its meaning.
func Optional[T Value](b *Builder, name string, def T, description string) error {
	kind, bits, typeName := kindOf[T]()
	f := Flag{
		Name:        name,
		Kind:        kind,
		Description: description,
		typeName:    typeName,
		bits:        bits,
		def:         valueOf(def),
		hasDefault:  true,
	}
	if _, err := parseToken(f, formatValue(f.def)); err != nil {
		return &InvalidDefaultError{Flag: name, Text: formatValue(f.def), Type: typeName}
	}
	return b.add(f)
}

// Switch registers a bare-presence boolean: giving --name on the command
// line means true, omitting it means false. No value token is consumed.
// A switch is always optional; a required presence flag carries no
// information.
func (b *Builder) Switch(name, description string) error {
	return b.add(Flag{
		Name:        name,
		Kind:        KindBool,
		Description: description,
		typeName:    "bool",
		isSwitch:    true,
		def:         typedValue{kind: KindBool, b: false},
		hasDefault:  true,
	})
}

func (b *Builder) add(f Flag) error {
	if f.Name == "" {
		return &InvalidNameError{Name: f.Name, Reason: "name must not be empty"}
	}
	if strings.HasPrefix(f.Name, "-") {
		return &InvalidNameError{Name: f.Name, Reason: "name must not begin with a dash"}
	}
	if f.Name == "help" || f.Name == "h" {
		return &InvalidNameError{Name: f.Name, Reason: "name is reserved for the help flag"}
	}
	// Duplicate names are rejected here, not at parse time: if two flags
	// shared a name there would be no way to tell which one a command-line
	// token refers to.
	for _, g := range b.flags {
		if g.Name == f.Name {
			return &DuplicateFlagError{Name: f.Name}
		}
	}
	b.flags = append(b.flags, f)
	return nil
}

// Build finalizes the builder into an immutable Program. Build never fails:
// every registration was validated when it happened. The builder may keep
// accumulating flags afterwards, but they are invisible to programs already
// built.
func (b *Builder) Build() *Program {
	flags := make([]Flag, len(b.flags))
	copy(flags, b.flags)
	index := make(map[string]int, len(flags))
	for i, f := range flags {
		index[f.Name] = i
	}
	return &Program{desc: b.desc, flags: flags, index: index}
}

// Program is a finalized flag schema. It is immutable and safe to share:
// any number of goroutines may call Parse on the same Program concurrently,
// each call producing an independent Result.
type Program struct {
	desc  string
	flags []Flag
	index map[string]int
}

// Description returns the program description the builder was created with.
func (p *Program) Description() string {
	return p.desc
}

// Flags returns the schema entries in registration order.
func (p *Program) Flags() []Flag {
	flags := make([]Flag, len(p.flags))
	copy(flags, p.flags)
	return flags
}
