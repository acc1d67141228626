package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/toml-format/ast"
	"github.com/signadot/toml-format/encode"
	"github.com/signadot/toml-format/escape"
	"github.com/signadot/toml-format/token"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var path []string
	if cfg.Expr == "" {
		if len(args) == 0 {
			return fmt.Errorf("%w: get requires a dotted path or -e", cli.ErrUsage)
		}
		path, err = splitPath(args[0])
		if err != nil {
			return err
		}
		args = args[1:]
	}
	for _, arg := range orDash(args) {
		if err := getArg(cfg, cc, arg, path); err != nil {
			return err
		}
	}
	return nil
}

func getArg(cfg *GetConfig, cc *cli.Context, arg string, path []string) error {
	_, tbl, err := parseInput(arg)
	if err != nil {
		return err
	}
	if cfg.Expr != "" {
		env, _ := plainValue(ast.FromTable(tbl)).(map[string]any)
		program, err := expr.Compile(cfg.Expr)
		if err != nil {
			return fmt.Errorf("error compiling %q: %w", cfg.Expr, err)
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", cfg.Expr, arg, err)
		}
		_, err = fmt.Fprintln(cc.Out, out)
		return err
	}
	v := lookup(tbl, path)
	if v == nil {
		// absent paths produce no output and no error
		return nil
	}
	if err := encode.EncodeValue(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}

// splitPath lexes a dotted path argument the way keys are lexed in a
// document, so quoted segments can hold dots and other punctuation.
func splitPath(path string) ([]string, error) {
	sc := token.NewScanner([]byte(path))
	var segs []string
	for {
		tok, err := sc.Next(token.KeyContext)
		if err != nil {
			return nil, fmt.Errorf("%w: bad path %q: %v", cli.ErrUsage, path, err)
		}
		switch tok.Type {
		case token.TBareKey:
			segs = append(segs, string(tok.Bytes))
		case token.TString:
			if tok.Multiline() {
				return nil, fmt.Errorf("%w: bad path %q: multiline string segment", cli.ErrUsage, path)
			}
			body := string(tok.Body())
			if tok.DoubleQuoted() {
				body, err = escape.Unescape(body, escape.SingleLine)
				if err != nil {
					return nil, fmt.Errorf("%w: bad path %q: %v", cli.ErrUsage, path, err)
				}
			}
			segs = append(segs, body)
		default:
			return nil, fmt.Errorf("%w: bad path %q: unexpected %s", cli.ErrUsage, path, tok.Type)
		}
		tok, err = sc.Next(token.KeyContext)
		if err == io.EOF {
			return segs, nil
		}
		if err != nil || tok.Type != token.TDot {
			return nil, fmt.Errorf("%w: bad path %q: expected '.'", cli.ErrUsage, path)
		}
	}
}

// lookup walks a dotted path, with numeric segments indexing arrays.
func lookup(t *ast.Table, path []string) *ast.Value {
	cur := ast.FromTable(t)
	for _, seg := range path {
		switch cur.Type {
		case ast.TableType:
			item := cur.Table.Get(seg)
			if item == nil {
				return nil
			}
			cur = item.Value
		case ast.ArrayType:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(cur.Items) {
				return nil
			}
			cur = cur.Items[i].Value
		default:
			return nil
		}
	}
	return cur
}
