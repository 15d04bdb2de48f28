package filter

//go:generate go tool stringer -type=OperatorEnum -output=operator_string.go

type OperatorEnum int

const (
	_ OperatorEnum = iota // skip zero value, use it as a default (invalid) value for OperatorEnum

	OperatorEq
	OperatorNe
	OperatorGt
	OperatorGe
	OperatorLt
	OperatorLe
	OperatorAnd
	OperatorOr

	// OperatorTotal is a constant that represents the total number of operators defined
	OperatorTotal = int(iota)
)

// QueryText returns the operator keyword as it appears inside a filter
// expression. Invalid operators yield the empty string.
func (op OperatorEnum) QueryText() string {
	switch op {
	default:
		return ""
	case OperatorEq:
		return "eq"
	case OperatorNe:
		return "ne"
	case OperatorGt:
		return "gt"
	case OperatorGe:
		return "ge"
	case OperatorLt:
		return "lt"
	case OperatorLe:
		return "le"
	case OperatorAnd:
		return "and"
	case OperatorOr:
		return "or"
	}
}
