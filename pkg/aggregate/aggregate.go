// Package aggregate collapses the metadata of several retrieved documents into one record.
//
// Each requested key forms a column across the documents. Numeric columns reduce to their
// maximum, every other column reduces to its most frequent value with ties going to the value
// seen first.
package aggregate

import (
	"encoding/json"
	"fmt"
)

// Document is anything that carries metadata.
type Document interface {
	GetMetadata() map[string]any
}

// Result holds one reduced value per requested key, in request order.
type Result struct {
	Keys   []string
	Values []any
}

// Empty reports whether the result came from an empty document list.
func (r Result) Empty() bool {
	return len(r.Values) == 0
}

// Value returns the single reduced value when exactly one key was requested,
// otherwise the whole value list. Empty results return nil.
func (r Result) Value() any {
	if r.Empty() {
		return nil
	}
	if len(r.Values) == 1 {
		return r.Values[0]
	}
	return r.Values
}

// Get returns the reduced value for key.
func (r Result) Get(key string) (any, bool) {
	for i, k := range r.Keys {
		if k == key && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Metadata reduces the given keys over docs in a single pass.
func Metadata[D Document](docs []D, keys ...string) Result {
	if len(docs) == 0 || len(keys) == 0 {
		return Result{Keys: keys}
	}

	if len(docs) == 1 {
		md := docs[0].GetMetadata()
		values := make([]any, len(keys))
		for i, k := range keys {
			values[i] = md[k]
		}
		return Result{Keys: keys, Values: values}
	}

	columns := make([][]any, len(keys))
	for _, doc := range docs {
		md := doc.GetMetadata()
		for i, k := range keys {
			if v, ok := md[k]; ok && v != nil {
				columns[i] = append(columns[i], v)
			}
		}
	}

	values := make([]any, len(keys))
	for i, col := range columns {
		values[i] = reduce(col)
	}
	return Result{Keys: keys, Values: values}
}

func reduce(col []any) any {
	if len(col) == 0 {
		return nil
	}
	if isNumericColumn(col) {
		return maxValue(col)
	}
	return mode(col)
}

func isNumericColumn(col []any) bool {
	for _, v := range col {
		if _, ok := toFloat(v); !ok {
			return false
		}
	}
	return true
}

// maxValue returns the first maximal element, keeping its original type.
func maxValue(col []any) any {
	best := col[0]
	bestF, _ := toFloat(best)
	for _, v := range col[1:] {
		f, _ := toFloat(v)
		if f > bestF {
			best, bestF = v, f
		}
	}
	return best
}

func mode(col []any) any {
	counts := make(map[string]int, len(col))
	first := make(map[string]any, len(col))
	order := make([]string, 0, len(col))

	for _, v := range col {
		k := valueKey(v)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
			first[k] = v
		}
		counts[k]++
	}

	bestKey := order[0]
	for _, k := range order[1:] {
		if counts[k] > counts[bestKey] {
			bestKey = k
		}
	}
	return first[bestKey]
}

// valueKey identifies a value by type and Go-syntax representation, so list
// elements stay separated: ["a b"] and ["a", "b"] are different keys.
func valueKey(v any) string {
	return fmt.Sprintf("%#v", v)
}

// ToFloat converts any numeric metadata value to float64.
func ToFloat(v any) (float64, bool) {
	return toFloat(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
