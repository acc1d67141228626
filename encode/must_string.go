package encode

import (
	"bytes"

	"github.com/signadot/toml-format/ast"
)

func MustString(t *ast.Table, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
