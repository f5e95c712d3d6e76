package binder

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/zhulik/eagerbind/pkg/json"
	"github.com/zhulik/eagerbind/pkg/tree"
)

// Kind is the shape of a configuration value as seen by the binder.
type Kind int

const (
	KindOther Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "Object"
	case KindOther:
	}

	return "other"
}

// Classify expects a value produced by tree.Normalize.
func Classify(value any) Kind {
	switch value.(type) {
	case string:
		return KindString
	case float64:
		return KindNumber
	case bool:
		return KindBoolean
	case []any:
		return KindArray
	case *tree.Object:
		return KindObject
	}

	return KindOther
}

// render produces the human readable form of a value used in the binding log.
func render(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case []float64:
		// NaN has no JSON form.
		return "[" + strings.Join(lo.Map(v, func(n float64, _ int) string { return formatNumber(n) }), ",") + "]"
	}

	data, err := json.Compact(value)
	if err != nil {
		return "<unrenderable>"
	}

	return data
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func toStrings(items []any) []string {
	return lo.Map(items, func(item any, _ int) string {
		return render(item)
	})
}

func toNumbers(items []any) []float64 {
	return lo.Map(items, func(item any, _ int) float64 {
		switch v := item.(type) {
		case float64:
			return v
		case string:
			n, err := strconv.ParseFloat(v, 64)
			if err == nil {
				return n
			}
		}

		return math.NaN()
	})
}

func toPlainArray(items []any) []any {
	return tree.Plain(items).([]any) //nolint:forcetypeassert
}
