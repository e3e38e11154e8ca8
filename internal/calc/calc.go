// Package calc evaluates arithmetic expressions over extended rationals
// written in prefix (Polish) notation, such as "* 10 + 1.2 0.[3]".
package calc

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/xnum"
)

var (
	// ErrSyntax is returned when an expression is empty or does not reduce
	// to exactly one value.
	ErrSyntax = errors.New("invalid expression")
	// ErrOperand is returned when an operator receives an operand it cannot use,
	// such as a fractional exponent.
	ErrOperand = errors.New("invalid operand")
)

// arity lists the supported operators and the number of operands they take.
var arity = map[string]int{
	"+":      2,
	"-":      2,
	"*":      2,
	"/":      2,
	"^":      2,
	"approx": 2,
	"neg":    1,
	"inv":    1,
	"abs":    1,
}

// IsOperator reports whether token is a supported operator.
func IsOperator(token string) bool {
	_, ok := arity[token]
	return ok
}

// Evaluate parses and evaluates a prefix expression.
// Operands use the syntax of [xnum.ParseRational].
// Binary operators apply to the two expressions that follow them,
// so "- 1 3" is -2 and "approx 3.14159 100" is 311/99.
func Evaluate(input string) (xnum.Rational, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return xnum.Rational{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return xnum.Rational{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return xnum.Rational{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item: %w", stack, ErrSyntax)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens: %w", ErrSyntax)
	}
	return tokens, nil
}

// processTokens walks the tokens from right to left, so the operands of an
// operator are already on the stack when the operator is reached.
func processTokens(tokens []string) ([]xnum.Rational, error) {
	stack := make([]xnum.Rational, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch arity[token] {
		case 2:
			stack, err = processBinary(stack, token)
		case 1:
			stack, err = processUnary(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processBinary(stack []xnum.Rational, token string) ([]xnum.Rational, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands: %w", ErrSyntax)
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result xnum.Rational
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result = left.Quo(right)
	case "^":
		result, err = pow(left, right)
	case "approx":
		result, err = approx(left, right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %v %v\": %w", token, left, right, err)
	}
	return append(stack, result), nil
}

func processUnary(stack []xnum.Rational, token string) ([]xnum.Rational, error) {
	if len(stack) < 1 {
		return nil, fmt.Errorf("not enough operands: %w", ErrSyntax)
	}
	x := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	var result xnum.Rational
	switch token {
	case "neg":
		result = x.Neg()
	case "inv":
		result = x.Inv()
	case "abs":
		result = x.Abs()
	}
	return append(stack, result), nil
}

func processOperand(stack []xnum.Rational, token string) ([]xnum.Rational, error) {
	x, err := xnum.ParseRational(token)
	if err != nil {
		return nil, err
	}
	return append(stack, x), nil
}

// pow raises x to an exponent that must be an integer fitting in int64.
func pow(x, exp xnum.Rational) (xnum.Rational, error) {
	e, err := integerOperand(exp)
	if err != nil {
		return xnum.Rational{}, err
	}
	if !e.IsInt64() {
		return xnum.Rational{}, fmt.Errorf("exponent %v is out of range: %w", exp, ErrOperand)
	}
	return x.Pow(e.Int64()), nil
}

func approx(x, maxDen xnum.Rational) (xnum.Rational, error) {
	b, err := integerOperand(maxDen)
	if err != nil {
		return xnum.Rational{}, err
	}
	return x.Approx(b)
}

func integerOperand(x xnum.Rational) (*big.Int, error) {
	i, err := x.Integer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOperand, err)
	}
	b, err := i.Big()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOperand, err)
	}
	return b, nil
}
