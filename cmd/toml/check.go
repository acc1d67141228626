package main

import (
	"fmt"

	"github.com/signadot/toml-format/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := false
	for _, arg := range orDash(args) {
		d, err := readInput(arg)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d); err != nil {
			failed = true
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %s\n", arg, err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
