package tree

import (
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
)

// Normalize converts decoded configuration data into the shapes the binder understands:
// string, float64, bool, []any, *Object and nil. Plain Go maps are read in sorted key
// order, yaml.MapSlice keeps document order. Values of any other type are returned as is.
func Normalize(value any) any { //nolint:cyclop
	switch v := value.(type) {
	case nil, string, bool, float64, *Object:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case yaml.MapSlice:
		obj := NewObject()
		for _, item := range v {
			obj.Set(fmt.Sprint(item.Key), item.Value)
		}

		return obj
	case []any:
		return lo.Map(v, func(item any, _ int) any {
			return Normalize(item)
		})
	case map[string]any:
		obj := NewObject()
		for _, key := range sortedKeys(v) {
			obj.Set(key, v[key])
		}

		return obj
	}

	return normalizeReflect(value)
}

// Plain converts *Object values (at any depth) into map[string]any.
func Plain(value any) any {
	switch v := value.(type) {
	case *Object:
		result := make(map[string]any, v.Len())
		v.Each(func(key string, item any) {
			result[key] = Plain(item)
		})

		return result
	case []any:
		return lo.Map(v, func(item any, _ int) any {
			return Plain(item)
		})
	}

	return value
}

func normalizeReflect(value any) any {
	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}

		result := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			result[i] = Normalize(rv.Index(i).Interface())
		}

		return result

	case reflect.Map:
		entries := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			entries[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}

		return Normalize(entries)

	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
	}

	return value
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)

	return keys
}
