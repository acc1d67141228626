package encode

import (
	"strings"

	"github.com/signadot/toml-format/ast"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ast.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	HeaderColor
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	types := []ast.Type{
		ast.StringType, ast.IntegerType, ast.FloatType, ast.BoolType,
		ast.DateTimeType, ast.ArrayType, ast.TableType,
	}
	for _, t := range types {
		able := Colorable{Type: t, Attr: CommentColor}
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ast.IntegerType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ast.FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ast.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ast.DateTimeType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ast.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = ast.TableType
	able.Attr = HeaderColor
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ast.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ast.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
