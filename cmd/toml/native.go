package main

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/signadot/toml-format/ast"

	"github.com/goccy/go-yaml"
)

// plainValue converts a value to plain Go data: map[string]any for
// tables. Document formatting and comments do not survive.
func plainValue(v *ast.Value) any {
	switch v.Type {
	case ast.StringType:
		return v.Str.Value
	case ast.IntegerType:
		return v.Int
	case ast.FloatType:
		return v.Float
	case ast.BoolType:
		return v.Bool
	case ast.DateTimeType:
		return v.Time
	case ast.ArrayType:
		res := make([]any, len(v.Items))
		for i, it := range v.Items {
			res[i] = plainValue(it.Value)
		}
		return res
	case ast.TableType:
		res := map[string]any{}
		for i := 0; i < v.Table.Len(); i++ {
			key, item := v.Table.At(i)
			res[key] = plainValue(item.Value)
		}
		return res
	}
	return nil
}

// orderedValue is plainValue with insertion-ordered tables, for
// serializers that keep map order.
func orderedValue(v *ast.Value) any {
	switch v.Type {
	case ast.ArrayType:
		res := make([]any, len(v.Items))
		for i, it := range v.Items {
			res[i] = orderedValue(it.Value)
		}
		return res
	case ast.TableType:
		res := make(yaml.MapSlice, 0, v.Table.Len())
		for i := 0; i < v.Table.Len(); i++ {
			key, item := v.Table.At(i)
			res = append(res, yaml.MapItem{Key: key, Value: orderedValue(item.Value)})
		}
		return res
	}
	return plainValue(v)
}

func tableJSON(t *ast.Table) ([]byte, error) {
	y, err := yaml.Marshal(orderedValue(ast.FromTable(t)))
	if err != nil {
		return nil, err
	}
	return yaml.YAMLToJSON(y)
}

func tableFromJSON(d []byte) (*ast.Table, error) {
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return nil, err
	}
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(y, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	v, err := fromNative(ms)
	if err != nil {
		return nil, err
	}
	return v.Table, nil
}

// fromNative lifts plain Go data back into a value. Null has no
// representation and is rejected.
func fromNative(in any) (*ast.Value, error) {
	switch v := in.(type) {
	case yaml.MapSlice:
		t := ast.NewTable()
		for _, item := range v {
			val, err := fromNative(item.Value)
			if err != nil {
				return nil, err
			}
			t.Set(fmt.Sprint(item.Key), ast.ItemOf(val))
		}
		return ast.FromTable(t), nil
	case map[string]any:
		t := ast.NewTable()
		for _, key := range sortedKeys(v) {
			val, err := fromNative(v[key])
			if err != nil {
				return nil, err
			}
			t.Set(key, ast.ItemOf(val))
		}
		return ast.FromTable(t), nil
	case []any:
		items := make([]*ast.Item, len(v))
		for i, el := range v {
			val, err := fromNative(el)
			if err != nil {
				return nil, err
			}
			items[i] = ast.ItemOf(val)
		}
		return ast.FromItems(items), nil
	case string:
		return ast.FromString(v), nil
	case bool:
		return ast.FromBool(v), nil
	case int:
		return ast.FromInt(int64(v), ast.BaseDecimal), nil
	case int64:
		return ast.FromInt(v, ast.BaseDecimal), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows", v)
		}
		return ast.FromInt(int64(v), ast.BaseDecimal), nil
	case float64:
		return ast.FromFloat(v, ast.FloatDecimal), nil
	case time.Time:
		return ast.FromTime(v), nil
	case nil:
		return nil, fmt.Errorf("null values have no document representation")
	}
	return nil, fmt.Errorf("cannot represent %T", in)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
