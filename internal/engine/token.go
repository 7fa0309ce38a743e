package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenKind classifies a Token.
type TokenKind int

const (
	Number TokenKind = iota
	Operator
	UnaryMinus
	Percent
	LParen
	RParen
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Operator:
		return "operator"
	case UnaryMinus:
		return "unary minus"
	case Percent:
		return "percent"
	case LParen:
		return "("
	case RParen:
		return ")"
	default:
		return "unknown"
	}
}

// Token is a classified atom of an expression.
type Token struct {
	Kind  TokenKind
	Value float64 // Number only
	Op    byte    // Operator only: one of + - * /
	Pos   int     // byte offset in the source text
}

// String renders the token the way it would appear in postfix notation.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case Operator:
		return string(t.Op)
	case UnaryMinus:
		return "neg"
	case Percent:
		return "%"
	default:
		return t.Kind.String()
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsOperator reports whether c is one of the four binary operator characters.
func IsOperator(c byte) bool { return c == '+' || c == '-' || c == '*' || c == '/' }

// Tokenize scans text left to right into tokens.
func Tokenize(text string) ([]Token, error) {
	tokens := make([]Token, 0, len(text))
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isDigit(c) || c == '.':
			start := i
			for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
				i++
			}
			lit := text[start:i]
			v, err := parseNumber(lit)
			if err != nil {
				return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidNumberFormat, lit, start)
			}
			tokens = append(tokens, Token{Kind: Number, Value: v, Pos: start})

		case c == '%':
			tokens = append(tokens, Token{Kind: Percent, Pos: i})
			i++

		case IsOperator(c):
			if c == '-' && operandExpected(tokens) {
				tokens = append(tokens, Token{Kind: UnaryMinus, Pos: i})
			} else {
				tokens = append(tokens, Token{Kind: Operator, Op: c, Pos: i})
			}
			i++

		case c == '(':
			tokens = append(tokens, Token{Kind: LParen, Pos: i})
			i++

		case c == ')':
			tokens = append(tokens, Token{Kind: RParen, Pos: i})
			i++

		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnexpectedCharacter, c, i)
		}
	}
	return tokens, nil
}

// operandExpected reports whether the next token sits in operand position,
// i.e. nothing that yields a value precedes it.
func operandExpected(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	switch tokens[len(tokens)-1].Kind {
	case Number, Percent, RParen:
		return false
	}
	return true
}

func parseNumber(lit string) (float64, error) {
	if lit == "." || strings.Count(lit, ".") > 1 {
		return 0, ErrInvalidNumberFormat
	}
	// ParseFloat reports ErrRange for literals beyond float64.
	return strconv.ParseFloat(lit, 64)
}
