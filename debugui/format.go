package debugui

import (
	"fmt"
	"reflect"
)

// ValueLine is one row of a flattened value: a dotted field path and its
// formatted leaf value.
type ValueLine struct {
	Path  string
	Value string
}

// FlattenValue walks v through its exported struct fields and returns one line
// per leaf. Scalars produce a single line with the given name.
func FlattenValue(name string, v any) []ValueLine {
	var lines []ValueLine
	flatten(name, reflect.ValueOf(v), &lines)
	return lines
}

func flatten(path string, val reflect.Value, lines *[]ValueLine) {
	if !val.IsValid() {
		*lines = append(*lines, ValueLine{Path: path, Value: "<invalid>"})
		return
	}

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			*lines = append(*lines, ValueLine{Path: path, Value: "nil"})
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		*lines = append(*lines, ValueLine{Path: path, Value: fmt.Sprintf("%.3f", val.Float())})

	case reflect.Struct:
		fields := globalReflectionCache.GetFields(val.Type())
		if len(fields) == 0 {
			*lines = append(*lines, ValueLine{Path: path, Value: fmt.Sprintf("%v", val.Interface())})
			return
		}
		for _, f := range fields {
			flatten(path+"."+f.Name, val.Field(f.Index), lines)
		}

	case reflect.Slice, reflect.Array:
		*lines = append(*lines, ValueLine{Path: path, Value: fmt.Sprintf("[%d items]", val.Len())})

	case reflect.Map:
		*lines = append(*lines, ValueLine{Path: path, Value: fmt.Sprintf("map[%d items]", val.Len())})

	default:
		*lines = append(*lines, ValueLine{Path: path, Value: fmt.Sprintf("%v", val.Interface())})
	}
}
