package edm

import (
	"fmt"
	"html"
	"time"
)

// SerializeValue produces the body/attribute encoding of value under
// type t: markup-escaped text for the textual and numeric types,
// canonical DateTime text for instants, and "1"/"0" for booleans.
// An unspecified type encodes like String.
func SerializeValue(t TypeEnum, value any) (string, error) {
	switch t {
	default:
		return "", ErrInvalidType

	case TypeNone, TypeBinary, TypeDouble, TypeInt32, TypeInt64, TypeGuid, TypeString:
		return html.EscapeString(textOf(value)), nil

	case TypeDateTime:
		instant, err := asInstant(value)
		if err != nil {
			return "", err
		}
		return FormatDateTime(instant), nil

	case TypeBoolean:
		if b, _ := value.(bool); b {
			return "1", nil
		}
		return "0", nil
	}
}

// textOf renders a native value the way the wire format spells scalars:
// text and byte payloads pass through, nil is empty, numbers keep their
// plain decimal form.
func textOf(value any) string {
	switch v := value.(type) {
	default:
		return fmt.Sprint(v)
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}
}

// asInstant accepts either a ready instant or its textual form.
func asInstant(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return ParseDateTime(v)
	}

	return time.Time{}, fmt.Errorf("cannot serialize %T as %s", value, TypeDateTime)
}
