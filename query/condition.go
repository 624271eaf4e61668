package query

import (
	"fmt"
	"math"
	"strings"
)

// Operator is a comparison operator in a filter condition.
type Operator int

const (
	OpGreater Operator = iota // >
	OpLess                    // <
	OpEqual                   // =
)

// String returns the operator's source character.
func (op Operator) String() string {
	switch op {
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpEqual:
		return "="
	default:
		return "?"
	}
}

// operatorScanOrder is the fixed precedence used when an expression contains
// more than one operator character: the first operator found in this order
// wins the split.
var operatorScanOrder = []struct {
	ch byte
	op Operator
}{
	{'>', OpGreater},
	{'<', OpLess},
	{'=', OpEqual},
}

// Condition is a parsed filter predicate: column, operator and a literal
// that is either a float64 or a string.
type Condition struct {
	Column  string
	Op      Operator
	Literal interface{}
}

// ParseCondition splits a filter expression such as "price>500" into a
// Condition. The expression is split at the first operator found in the
// fixed precedence order >, <, =; column and literal are trimmed of
// surrounding whitespace and the literal is coerced to a number when it
// parses as one.
//
// Returns ErrInvalidExpression when no operator appears in the expression
// or when the split leaves an empty column or literal.
func ParseCondition(expr string) (Condition, error) {
	for _, cand := range operatorScanOrder {
		idx := strings.IndexByte(expr, cand.ch)
		if idx < 0 {
			continue
		}

		column := strings.TrimSpace(expr[:idx])
		literal := strings.TrimSpace(expr[idx+1:])
		if column == "" || literal == "" {
			return Condition{}, fmt.Errorf("%w: %q needs a column and a value around %q", ErrInvalidExpression, expr, cand.op)
		}

		return Condition{
			Column:  column,
			Op:      cand.op,
			Literal: Coerce(literal),
		}, nil
	}

	return Condition{}, fmt.Errorf("%w: no comparison operator (>, < or =) in %q", ErrInvalidExpression, expr)
}

// Matches reports whether a row satisfies the condition.
//
// A row without the condition's column never matches. Equality compares
// numbers numerically and text lexically; ordering operators are only valid
// between two numbers, so a text cell (or a text literal) makes the row a
// non-match rather than an error.
func (c Condition) Matches(row map[string]interface{}) bool {
	value, exists := row[c.Column]
	if !exists || value == nil {
		return false
	}

	switch c.Op {
	case OpEqual:
		return equalValues(value, c.Literal)
	case OpGreater, OpLess:
		left, leftIsNum := toFloat64(value)
		right, rightIsNum := toFloat64(c.Literal)
		if !leftIsNum || !rightIsNum {
			return false
		}
		if c.Op == OpGreater {
			return left > right
		}
		return left < right
	default:
		return false
	}
}

// equalValues compares two values for equality: number against number,
// text against text. Mixed types never compare equal.
func equalValues(left, right interface{}) bool {
	leftNum, leftIsNum := toFloat64(left)
	rightNum, rightIsNum := toFloat64(right)
	if leftIsNum && rightIsNum {
		return equalNumbers(leftNum, rightNum)
	}
	if leftIsNum || rightIsNum {
		return false
	}

	leftStr, leftIsStr := toString(left)
	rightStr, rightIsStr := toString(right)
	return leftIsStr && rightIsStr && leftStr == rightStr
}

// equalNumbers compares two floats with a relative epsilon so that values
// arriving via different conversions still compare equal.
func equalNumbers(left, right float64) bool {
	const epsilon = 1e-9
	diff := math.Abs(left - right)
	threshold := epsilon * math.Max(1.0, math.Max(math.Abs(left), math.Abs(right)))
	return diff < threshold
}
