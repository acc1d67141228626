package parse

import (
	"github.com/signadot/toml-format/ast"
	"github.com/signadot/toml-format/token"
)

// Option configures a call to Parse or ParseLines.
type Option func(*parseOpts)

type parseOpts struct {
	positions map[*ast.Value]*token.Pos
}

func newParseOpts(opts []Option) *parseOpts {
	res := &parseOpts{}
	for _, o := range opts {
		o(res)
	}
	return res
}

// WithPositions records the source position of every parsed value in m.
// The map is keyed by value identity and may be consulted after Parse
// returns, for example to turn semantic checks into source spans.
func WithPositions(m map[*ast.Value]*token.Pos) Option {
	return func(o *parseOpts) {
		o.positions = m
	}
}
