// Package commandrs declares and parses typed command-line flags.
//
// A program is described once, up front: each flag has a name, a value type,
// a description, and is either required or optional with a default. The
// schema is built with NewProgram plus the Required, Optional, and Switch
// registration functions, then frozen with Build. The finalized Program
// parses any token list into an immutable, fully populated value store, and
// renders its own help text.
//
// The package never reads os.Args, never prints, and never exits; acquiring
// tokens and presenting errors or help belongs to the host application.
//
// Example usage, building a server config from arguments:
//
//	type Config struct {
//	    Port   uint16
//	    UseTLS bool
//	}
//
//	func NewConfigFromArgs(args []string) (*Config, error) {
//	    b := commandrs.NewProgram("An HTTP server")
//	    if err := commandrs.Required[uint16](b, "port", "Port number"); err != nil {
//	        return nil, err
//	    }
//	    if err := commandrs.Optional(b, "use-tls", false, "TLS PLS?"); err != nil {
//	        return nil, err
//	    }
//
//	    result, err := b.Build().Parse(args)
//	    if err != nil {
//	        return nil, err
//	    }
//
//	    port, err := commandrs.Get[uint16](result, "port")
//	    if err != nil {
//	        return nil, err
//	    }
//	    useTLS, err := commandrs.Get[bool](result, "use-tls")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &Config{Port: port, UseTLS: useTLS}, nil
//	}
//
// Boolean flags come in two modes, chosen at registration:
//   - Optional[bool] and Required[bool] register an explicit-value boolean
//     that consumes a following "true" or "false" token.
//   - Builder.Switch registers a bare-presence flag: --name alone means
//     true, absence means false. No value token is consumed.
//
// All failures are returned as values. Parse-time errors are concrete types
// (UnknownFlagError, MissingValueError, InvalidValueError,
// DuplicateFlagError, MissingRequiredError) matched with errors.As, except
// for the ErrHelp sentinel matched with errors.Is.
package commandrs
