package edm

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
)

// SerializeQueryValue produces the literal form of value for embedding
// in a filter expression. Binary accepts raw []byte or a string of raw
// bytes and hex-encodes lowercase, two digits per byte.
func SerializeQueryValue(t TypeEnum, value any) (string, error) {
	switch t {
	default:
		return "", ErrInvalidType

	case TypeDateTime:
		instant, err := asInstant(value)
		if err != nil {
			return "", err
		}
		return "datetime'" + FormatDateTime(instant) + "'", nil

	case TypeBinary:
		return "X'" + hex.EncodeToString(rawBytes(value)) + "'", nil

	case TypeBoolean:
		if b, _ := value.(bool); b {
			return "true", nil
		}
		return "false", nil

	case TypeDouble, TypeInt32:
		return textOf(value), nil

	case TypeInt64:
		return textOf(value) + "L", nil

	case TypeGuid:
		return "guid'" + textOf(value) + "'", nil

	case TypeNone, TypeString:
		return "'" + strings.ReplaceAll(textOf(value), "'", "''") + "'", nil
	}
}

// UnserializeQueryValue inverts a filter literal, already stripped of
// its decoration, back into the native value for type t. A nil value is
// the property-removal sentinel and short-circuits everything, including
// tag validation.
//
// Int64 text is returned verbatim: values near the 64-bit boundary must
// not round-trip through a parse. Double shares the integer parse with
// Int32, truncating any fractional component.
func UnserializeQueryValue(t TypeEnum, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	text := textOf(value)

	switch t {
	default:
		return nil, ErrInvalidType

	case TypeGuid, TypeString, TypeInt64:
		return text, nil

	case TypeBinary:
		return base64.StdEncoding.DecodeString(text)

	case TypeDateTime:
		return ParseDateTime(text)

	case TypeBoolean:
		return toBoolean(text), nil

	case TypeDouble, TypeInt32:
		return parseTruncatedInt(text)
	}
}

// toBoolean coerces literal boolean text. Unrecognized text is false,
// never an error.
func toBoolean(text string) bool {
	b, err := strconv.ParseBool(text)
	return err == nil && b
}

// parseTruncatedInt parses decimal text, accepting a fractional part
// and truncating it toward zero.
func parseTruncatedInt(text string) (int, error) {
	if n, err := strconv.Atoi(text); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}

	return int(f), nil
}

func rawBytes(value any) []byte {
	if b, ok := value.([]byte); ok {
		return b
	}

	return []byte(textOf(value))
}
