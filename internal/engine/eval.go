package engine

import (
	"fmt"
	"math"
)

type stack []float64

func (s *stack) push(v float64) { *s = append(*s, v) }

func (s *stack) pop() (float64, bool) {
	n := len(*s)
	if n == 0 {
		return 0, false
	}
	v := (*s)[n-1]
	*s = (*s)[:n-1]
	return v, true
}

// EvalRPN executes a postfix sequence on a float64 stack.
func EvalRPN(seq []Token) (float64, error) {
	st := make(stack, 0, len(seq))
	for _, t := range seq {
		switch t.Kind {
		case Number:
			st.push(t.Value)

		case Percent:
			a, ok := st.pop()
			if !ok {
				return 0, ErrPercentWithoutOperand
			}
			st.push(a / 100)

		case UnaryMinus:
			a, ok := st.pop()
			if !ok {
				return 0, ErrUnaryMinus
			}
			st.push(-a)

		case Operator:
			if len(st) < 2 {
				return 0, fmt.Errorf("%w: %c", ErrBinaryOperator, t.Op)
			}
			b, _ := st.pop()
			a, _ := st.pop()
			v, err := apply(t.Op, a, b)
			if err != nil {
				return 0, err
			}
			st.push(v)

		default:
			return 0, fmt.Errorf("%w: unexpected %s in postfix sequence", ErrMalformedExpression, t.Kind)
		}
	}
	if len(st) != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, len(st))
	}
	return st[0], nil
}

func apply(op byte, a, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformedExpression, op)
}

// Evaluate tokenizes, parses, evaluates and rounds text.
func Evaluate(text string) (float64, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	rpn, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	v, err := EvalRPN(rpn)
	if err != nil {
		return 0, err
	}
	v = RoundSmart(v)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrOverflow
	}
	return v, nil
}
