package edm

import "time"

// shapeEnum classifies the native representation of a caller-supplied
// value. Every valid type tag accepts exactly one shape, plus the absent
// value.
type shapeEnum int

const (
	shapeUnknown shapeEnum = iota

	shapeNone    // untyped nil
	shapeText    // string
	shapeInteger // int, int32, int64
	shapeFloat   // float32, float64
	shapeBool    // bool
	shapeInstant // time.Time
	shapeBytes   // []byte
)

func shapeOf(value any) shapeEnum {
	switch value.(type) {
	default:
		return shapeUnknown
	case nil:
		return shapeNone
	case string:
		return shapeText
	case int, int32, int64:
		return shapeInteger
	case float32, float64:
		return shapeFloat
	case bool:
		return shapeBool
	case time.Time:
		return shapeInstant
	case []byte:
		return shapeBytes
	}
}
