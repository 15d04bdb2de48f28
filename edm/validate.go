package edm

// ValidateValue reports whether the native shape of value matches the
// shape expected for type t. An absent (nil) value is consistent with
// every valid type; an unspecified type accepts only an absent value.
//
// Double shares the integer shape with Int32 and Int64: a float never
// passes this check.
func ValidateValue(t TypeEnum, value any) (bool, error) {
	shape := shapeOf(value)

	switch t {
	default:
		return false, ErrInvalidType
	case TypeNone:
		return shape == shapeNone, nil
	case TypeGuid, TypeBinary, TypeString:
		return shape == shapeNone || shape == shapeText, nil
	case TypeDouble, TypeInt32, TypeInt64:
		return shape == shapeNone || shape == shapeInteger, nil
	case TypeDateTime:
		return shape == shapeNone || shape == shapeInstant, nil
	case TypeBoolean:
		return shape == shapeNone || shape == shapeBool, nil
	}
}
