package commandrs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by Parse when the token list contains --help or -h.
// The host application is expected to print HelpText and exit cleanly.
var ErrHelp = errors.New("help flag was given")

// DuplicateFlagError reports a flag name used twice: either registered twice
// on a Builder, or supplied twice on the command line.
type DuplicateFlagError struct {
	Name string
}

func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("flag already exists with name %s", e.Name)
}

// InvalidNameError reports a flag registration with a name the data model
// forbids: empty, beginning with a dash, or one of the reserved help names.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid flag name %q: %s", e.Name, e.Reason)
}

// InvalidDefaultError reports an optional flag whose default value does not
// survive the coercion round trip for its declared type.
type InvalidDefaultError struct {
	Flag string
	Text string
	Type string
}

func (e *InvalidDefaultError) Error() string {
	return fmt.Sprintf("invalid default %q for flag %s as type of %s", e.Text, e.Flag, e.Type)
}

// UnknownFlagError reports a command-line token that does not match any
// registered flag.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("no such flag exists with name %s", e.Name)
}

// MissingValueError reports a value-taking flag that appeared as the final
// token, with no value token left to consume.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("--%s requires a value", e.Flag)
}

// InvalidValueError reports a value token that could not be coerced into the
// flag's declared type.
type InvalidValueError struct {
	Flag string
	Text string
	Type string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("could not parse %q as type of %s for flag %s", e.Text, e.Type, e.Flag)
}

// MissingRequiredError reports every required flag absent from the token
// list. Names holds all of them, in registration order.
type MissingRequiredError struct {
	Names []string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("required args was not given with name %s", strings.Join(e.Names, ", "))
}

// UnknownNameError reports a retrieval by a name that was never registered.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("no such flag exists with name %s", e.Name)
}

// TypeMismatchError reports a retrieval whose requested type differs from the
// type the flag was registered with.
type TypeMismatchError struct {
	Flag string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("flag %s holds a value of type %s, not %s", e.Flag, e.Got, e.Want)
}
