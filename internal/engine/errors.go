package engine

import "errors"

var (
	// ErrInvalidNumberFormat is returned for a numeric literal with more than one
	// decimal point, a bare ".", or a value outside float64 range.
	ErrInvalidNumberFormat = errors.New("invalid number format")
	// ErrUnexpectedCharacter is returned for a character outside the expression alphabet.
	ErrUnexpectedCharacter = errors.New("unexpected character")

	// ErrMismatchedParentheses is returned when parentheses do not pair up.
	ErrMismatchedParentheses = errors.New("mismatched parentheses")

	// ErrPercentWithoutOperand is returned when % has no value to scale.
	ErrPercentWithoutOperand = errors.New("percent without operand")
	// ErrUnaryMinus is returned when a unary minus has no value to negate.
	ErrUnaryMinus = errors.New("unary minus without operand")
	// ErrBinaryOperator is returned when + - * or / finds fewer than two values.
	ErrBinaryOperator = errors.New("binary operator needs two operands")
	// ErrDivisionByZero is returned for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrMalformedExpression is returned when evaluation does not end with
	// exactly one value.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrOverflow is returned by Evaluate when the result is not a finite number.
	ErrOverflow = errors.New("result out of range")
)

// kinds lists every sentinel with its wire code, in pipeline order.
var kinds = []struct {
	err  error
	code string
}{
	{ErrInvalidNumberFormat, "invalid_number_format"},
	{ErrUnexpectedCharacter, "unexpected_character"},
	{ErrMismatchedParentheses, "mismatched_parentheses"},
	{ErrPercentWithoutOperand, "percent_without_operand"},
	{ErrUnaryMinus, "unary_minus"},
	{ErrBinaryOperator, "binary_operator"},
	{ErrDivisionByZero, "division_by_zero"},
	{ErrMalformedExpression, "malformed_expression"},
	{ErrOverflow, "overflow"},
}

// Kind returns the stable code for err, or "" when err is not an engine error.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return ""
}

// FromKind is the inverse of Kind. It returns nil for an unknown code.
func FromKind(code string) error {
	for _, k := range kinds {
		if k.code == code {
			return k.err
		}
	}
	return nil
}
