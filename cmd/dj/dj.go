package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func djMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.checkFormatFlags(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: dj has no command %q", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if !errors.Is(err, cli.ErrUsage) {
		return err
	}
	sub.Usage(cc, err)
	os.Exit(sub.Exit(cc, err))
	return nil
}

// checkFormatFlags rejects -j together with -y.
func (cfg *MainConfig) checkFormatFlags() error {
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: -j[son] and -y[aml] are exclusive", cli.ErrUsage)
	}
	return nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	if err := cfg.CloseOut(); err != nil {
		fmt.Fprintf(os.Stderr, "dj: closing %s: %v\n", cfg.Out, err)
	}
}

// outOpt handles -o. "-" keeps stdout; the suffix of any other path
// also selects the output format, see outFormat.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("%w: -o: %w", cli.ErrUsage, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
