package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/toml-format/encode"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orDash(args) {
		if err := fmtArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtArg(cfg *FmtConfig, cc *cli.Context, arg string) error {
	d, tbl, err := parseInput(arg)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(tbl, buf, encode.EncodeComments(!cfg.NoComments)); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	switch {
	case cfg.Diff:
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(string(d), buf.String(), true)
		_, err := cc.Out.Write([]byte(diffCfg.DiffPrettyText(diffs)))
		return err
	case cfg.Write && arg != "-":
		return os.WriteFile(arg, buf.Bytes(), 0644)
	}
	return encode.Encode(tbl, cc.Out, cfg.encOpts(cc.Out)...)
}
