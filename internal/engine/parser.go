package engine

import "fmt"

// precedence of stackable operators. Percent (4) never reaches the stack.
func precedence(t Token) int {
	switch t.Kind {
	case UnaryMinus:
		return 3
	case Operator:
		if t.Op == '*' || t.Op == '/' {
			return 2
		}
		return 1
	}
	return 0
}

func rightAssoc(t Token) bool { return t.Kind == UnaryMinus }

func isStackOperator(t Token) bool { return t.Kind == Operator || t.Kind == UnaryMinus }

// ToPostfix converts infix tokens to postfix order with the shunting-yard
// algorithm. Nothing is returned on error.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var ops []Token

	for _, t := range tokens {
		switch t.Kind {
		case Number, Percent:
			output = append(output, t)

		case Operator, UnaryMinus:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if !isStackOperator(top) {
					break
				}
				var pop bool
				if rightAssoc(t) {
					pop = precedence(top) > precedence(t)
				} else {
					pop = precedence(top) >= precedence(t)
				}
				if !pop {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)

		case LParen:
			ops = append(ops, t)

		case RParen:
			found := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == LParen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, fmt.Errorf("%w: unmatched ) at offset %d", ErrMismatchedParentheses, t.Pos)
			}
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == LParen || top.Kind == RParen {
			return nil, fmt.Errorf("%w: unclosed ( at offset %d", ErrMismatchedParentheses, top.Pos)
		}
		output = append(output, top)
	}
	return output, nil
}
