// Command bunnywatch is a small demonstration host for the commandrs
// library: a bunny observing tool. It owns everything the library refuses to
// do — reading os.Args, printing help and errors, and choosing exit codes.
package main

import (
	"errors"
	"os"

	"github.com/Aliics/commandrs"
	"github.com/Aliics/commandrs/internal/ui"
)

type config struct {
	rabbitName  string
	stat        string
	samples     uint16
	closingPats bool
}

func main() {
	program, err := buildProgram()
	if err != nil {
		// Registration failures are programmer errors in this binary.
		ui.Fail("bad flag setup: %v", err)
		os.Exit(1)
	}

	cfg, err := parseConfig(program, os.Args[1:])
	if err != nil {
		if errors.Is(err, commandrs.ErrHelp) {
			ui.Help(program.HelpText())
			os.Exit(0)
		}
		ui.Fail("%v", err)
		ui.Hint("Run %s for usage information", ui.Bold("bunnywatch --help"))
		os.Exit(1)
	}

	observe(cfg)
}

func buildProgram() (*commandrs.Program, error) {
	b := commandrs.NewProgram("A bunny observing tool!")
	if err := commandrs.Required[string](b, "rabbit-name", "Name of the rabbit to observe"); err != nil {
		return nil, err
	}
	if err := commandrs.Required[string](b, "stat", "Rabbit statistic to evaluate"); err != nil {
		return nil, err
	}
	if err := commandrs.Optional[uint16](b, "samples", 3, "How many observations to take"); err != nil {
		return nil, err
	}
	if err := b.Switch("closing-pats", "Pat the rabbit when finished?"); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func parseConfig(program *commandrs.Program, args []string) (*config, error) {
	result, err := program.Parse(args)
	if err != nil {
		return nil, err
	}

	rabbitName, err := commandrs.Get[string](result, "rabbit-name")
	if err != nil {
		return nil, err
	}
	stat, err := commandrs.Get[string](result, "stat")
	if err != nil {
		return nil, err
	}
	samples, err := commandrs.Get[uint16](result, "samples")
	if err != nil {
		return nil, err
	}
	closingPats, err := commandrs.Get[bool](result, "closing-pats")
	if err != nil {
		return nil, err
	}

	return &config{
		rabbitName:  rabbitName,
		stat:        stat,
		samples:     samples,
		closingPats: closingPats,
	}, nil
}

func observe(cfg *config) {
	ui.Info("Observing %s", ui.Bold(cfg.rabbitName))
	for i := uint16(0); i < cfg.samples; i++ {
		ui.Info("Measuring %s (%d/%d)", cfg.stat, i+1, cfg.samples)
	}
	if cfg.closingPats {
		ui.Success("%s got closing pats", cfg.rabbitName)
		return
	}
	ui.Success("Done observing %s", cfg.rabbitName)
}
