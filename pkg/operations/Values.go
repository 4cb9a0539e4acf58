package operations

import (
	json2 "encoding/json"
	"reflect"
)

// toNumber folds every numeric representation a decoded JSON value can take
// into float64, the canonical number form of this package.
func toNumber(value interface{}) (float64, bool) {
	switch n := value.(type) {
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
	case json2.Number:
		f, err := n.Float64()

		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// toList normalizes any slice or array value to the canonical []interface{}
// form so a raw JSON array and a typed list behave identically under merge
// and apply.
func toList(value interface{}) ([]interface{}, bool) {
	if value == nil {
		return nil, false
	}

	if list, ok := value.([]interface{}); ok {
		return list, true
	}

	v := reflect.ValueOf(value)

	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}

	list := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		list[i] = v.Index(i).Interface()
	}

	return list, true
}

func copyList(list []interface{}) []interface{} {
	copied := make([]interface{}, len(list))
	copy(copied, list)
	return copied
}

func contains(list []interface{}, item interface{}) bool {
	for _, existing := range list {
		if reflect.DeepEqual(existing, item) {
			return true
		}
	}

	return false
}

// normalizeValue canonicalizes Set operands: slices become []interface{},
// everything else passes through untouched.
func normalizeValue(value interface{}) interface{} {
	if list, ok := toList(value); ok {
		return list
	}

	return value
}
