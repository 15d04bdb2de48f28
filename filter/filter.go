// Package filter builds OData-style filter expressions over typed
// table-storage properties. Constants are rendered through the edm
// query-literal serializer, so every literal matches what the wire
// expects byte-for-byte.
package filter

import (
	"fmt"
	"strings"

	"table-codec/edm"
)

// Expr is one node of a filter expression tree.
type Expr interface {
	build(sb *strings.Builder) error
}

// Prop references a property by name.
func Prop(name string) Expr { return propExpr(name) }

type propExpr string

func (p propExpr) build(sb *strings.Builder) error {
	sb.WriteString(string(p))
	return nil
}

// Const embeds a typed constant, rendered as a query literal.
func Const(t edm.TypeEnum, value any) Expr { return constExpr{tag: t, value: value} }

type constExpr struct {
	tag   edm.TypeEnum
	value any
}

func (c constExpr) build(sb *strings.Builder) error {
	literal, err := edm.SerializeQueryValue(c.tag, c.value)
	if err != nil {
		return err
	}

	sb.WriteString(literal)
	return nil
}

// Raw splices already-rendered filter text into the expression verbatim.
func Raw(text string) Expr { return rawExpr(text) }

type rawExpr string

func (r rawExpr) build(sb *strings.Builder) error {
	sb.WriteString(string(r))
	return nil
}

// Compare joins two sub-expressions with an infix operator. The result
// is always parenthesized.
func Compare(left Expr, op OperatorEnum, right Expr) Expr {
	return compareExpr{left: left, op: op, right: right}
}

type compareExpr struct {
	left  Expr
	op    OperatorEnum
	right Expr
}

func (c compareExpr) build(sb *strings.Builder) error {
	keyword := c.op.QueryText()
	if keyword == "" {
		return fmt.Errorf("filter does not support operator %s", c.op)
	}

	sb.WriteByte('(')
	if err := c.left.build(sb); err != nil {
		return err
	}

	sb.WriteByte(' ')
	sb.WriteString(keyword)
	sb.WriteByte(' ')

	if err := c.right.build(sb); err != nil {
		return err
	}
	sb.WriteByte(')')

	return nil
}

// Not negates a sub-expression.
func Not(e Expr) Expr { return notExpr{inner: e} }

type notExpr struct{ inner Expr }

func (n notExpr) build(sb *strings.Builder) error {
	sb.WriteString("not (")
	if err := n.inner.build(sb); err != nil {
		return err
	}
	sb.WriteByte(')')

	return nil
}

// Comparison shorthands over a named property and a typed constant.

func Eq(property string, t edm.TypeEnum, value any) Expr {
	return Compare(Prop(property), OperatorEq, Const(t, value))
}

func Ne(property string, t edm.TypeEnum, value any) Expr {
	return Compare(Prop(property), OperatorNe, Const(t, value))
}

func Gt(property string, t edm.TypeEnum, value any) Expr {
	return Compare(Prop(property), OperatorGt, Const(t, value))
}

func Ge(property string, t edm.TypeEnum, value any) Expr {
	return Compare(Prop(property), OperatorGe, Const(t, value))
}

func Lt(property string, t edm.TypeEnum, value any) Expr {
	return Compare(Prop(property), OperatorLt, Const(t, value))
}

func Le(property string, t edm.TypeEnum, value any) Expr {
	return Compare(Prop(property), OperatorLe, Const(t, value))
}

func And(left, right Expr) Expr { return Compare(left, OperatorAnd, right) }

func Or(left, right Expr) Expr { return Compare(left, OperatorOr, right) }

// Render produces the textual filter expression for e.
func Render(e Expr) (string, error) {
	var sb strings.Builder

	if err := e.build(&sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}
