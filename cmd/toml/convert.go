package main

import (
	"fmt"

	"github.com/signadot/toml-format/ast"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.J == cfg.Y {
		return fmt.Errorf("%w: must specify exactly one of -j[son] -y[aml]", cli.ErrUsage)
	}
	for _, arg := range orDash(args) {
		if err := convertArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func convertArg(cfg *ConvertConfig, cc *cli.Context, arg string) error {
	_, tbl, err := parseInput(arg)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(orderedValue(ast.FromTable(tbl)))
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	if cfg.J {
		out, err = yaml.YAMLToJSON(out)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		out = append(out, '\n')
	}
	_, err = cc.Out.Write(out)
	return err
}
