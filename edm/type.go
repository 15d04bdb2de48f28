// Package edm converts typed table-storage property values to and from
// their wire text: body/attribute encoding for write requests and
// query-literal encoding for filter expressions.
package edm

import (
	"errors"
	"fmt"
)

// ErrInvalidType is returned whenever a type tag outside the eight
// enumerated EDM types reaches a dispatch point.
var ErrInvalidType = errors.New("the provided EDM type is not valid")

type TypeEnum int

const (
	TypeNone TypeEnum = iota // zero value: the caller left the type unspecified

	TypeDateTime
	TypeBinary
	TypeBoolean
	TypeDouble
	TypeGuid
	TypeInt32
	TypeInt64
	TypeString

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

// String returns the wire identifier of the type, e.g. "Edm.Int64".
// TypeNone has no wire identifier and yields the empty string.
func (t TypeEnum) String() string {
	switch t {
	default:
		return ""
	case TypeDateTime:
		return "Edm.DateTime"
	case TypeBinary:
		return "Edm.Binary"
	case TypeBoolean:
		return "Edm.Boolean"
	case TypeDouble:
		return "Edm.Double"
	case TypeGuid:
		return "Edm.Guid"
	case TypeInt32:
		return "Edm.Int32"
	case TypeInt64:
		return "Edm.Int64"
	case TypeString:
		return "Edm.String"
	}
}

// IsValid reports whether t is one of the eight enumerated types.
// TypeNone is not a valid type, only the absence of one.
func (t TypeEnum) IsValid() bool {
	return TypeNone < t && int(t) < TypeTotal
}

// ParseType resolves a wire identifier to its type. An empty name means
// the type was left unspecified and resolves to the default, String.
// Any other name outside the eight identifiers fails with ErrInvalidType.
func ParseType(name string) (TypeEnum, error) {
	if name == "" {
		return TypeString, nil
	}

	for t := TypeEnum(1); int(t) < TypeTotal; t++ {
		if t.String() == name {
			return t, nil
		}
	}

	return TypeNone, fmt.Errorf("%w: %q", ErrInvalidType, name)
}

// IsValidName reports whether name exactly equals one of the eight wire
// identifiers. The empty name is not valid.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}

	t, err := ParseType(name)
	return err == nil && t.String() == name
}
