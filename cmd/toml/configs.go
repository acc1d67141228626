package main

import (
	"io"
	"os"

	"github.com/signadot/toml-format/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool `cli:"name=color desc='encode with color'"`
	NoComments bool `cli:"name=nc aliases=no-comments desc='drop comments when encoding'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeComments(!cfg.NoComments),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='rewrite files in place'"`
	Diff  bool `cli:"name=d desc='print a diff against the formatted form'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='report by exit code only'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Expr string

	Get *cli.Command
}

func (cfg *GetConfig) exprOpt(_ *cli.Context, a string) (any, error) {
	cfg.Expr = a
	return a, nil
}

type ConvertConfig struct {
	*MainConfig

	J bool `cli:"name=j aliases=json desc='convert to json'"`
	Y bool `cli:"name=y aliases=yaml desc='convert to yaml'"`

	Convert *cli.Command
}

type PatchConfig struct {
	*MainConfig

	// Ops names a JSON file holding an RFC 6902 operation list; the
	// default is an RFC 7386 merge patch given as a document argument.
	Ops string

	Patch *cli.Command
}

func (cfg *PatchConfig) opsOpt(_ *cli.Context, a string) (any, error) {
	cfg.Ops = a
	return a, nil
}
