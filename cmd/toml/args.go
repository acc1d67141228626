package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/toml-format/ast"
	"github.com/signadot/toml-format/parse"
)

// readInput reads a file argument, with "-" meaning stdin.
func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}

func parseInput(arg string) ([]byte, *ast.Table, error) {
	d, err := readInput(arg)
	if err != nil {
		return nil, nil, err
	}
	tbl, err := parse.Parse(d)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return d, tbl, nil
}

// orDash defaults an empty argument list to stdin.
func orDash(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
