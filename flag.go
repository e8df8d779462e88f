package commandrs

// Flag describes one registered flag: the schema entry the parser and help
// renderer work from.
type Flag struct {
	Name        string
	Kind        Kind
	Required    bool
	Description string

	// typeName is the exact Go type the flag was registered with, e.g.
	// "uint16". Retrieval with Get demands the same type back.
	typeName string
	// bits is the width passed to strconv; zero for string and bool.
	bits int
	// isSwitch marks a bare-presence boolean: no value token is consumed,
	// presence means true.
	isSwitch bool
	// def holds the default for optional flags. Required flags never carry
	// one; optional flags always do.
	def        typedValue
	hasDefault bool
}
