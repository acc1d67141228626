package main

import (
	"fmt"
	"os"

	"github.com/signadot/toml-format/encode"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	apply, err := mkApply(cfg, &args)
	if err != nil {
		return err
	}
	for _, arg := range orDash(args) {
		if err := patchArg(cfg, cc, arg, apply); err != nil {
			return err
		}
	}
	return nil
}

// mkApply builds the patch function from either the -ops file or the
// leading merge-patch document argument, consuming the latter from
// args.
func mkApply(cfg *PatchConfig, args *[]string) (func([]byte) ([]byte, error), error) {
	if cfg.Ops != "" {
		d, err := os.ReadFile(cfg.Ops)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", cfg.Ops, err)
		}
		ops, err := jsonpatch.DecodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", cfg.Ops, err)
		}
		return ops.Apply, nil
	}
	if len(*args) == 0 {
		return nil, fmt.Errorf("%w: patch requires a patch document or -ops", cli.ErrUsage)
	}
	patchArg := (*args)[0]
	*args = (*args)[1:]
	_, patchTbl, err := parseInput(patchArg)
	if err != nil {
		return nil, err
	}
	patchJSON, err := tableJSON(patchTbl)
	if err != nil {
		return nil, fmt.Errorf("error encoding %s: %w", patchArg, err)
	}
	return func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patchJSON)
	}, nil
}

func patchArg(cfg *PatchConfig, cc *cli.Context, arg string, apply func([]byte) ([]byte, error)) error {
	_, tbl, err := parseInput(arg)
	if err != nil {
		return err
	}
	docJSON, err := tableJSON(tbl)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	patched, err := apply(docJSON)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", arg, err)
	}
	res, err := tableFromJSON(patched)
	if err != nil {
		return fmt.Errorf("error decoding patch result for %s: %w", arg, err)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
