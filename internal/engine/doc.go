// Package engine evaluates calculator expressions.
//
// Evaluation is a three stage pipeline over freshly built slices:
//
//   - Tokenize splits the text into Number, Operator, UnaryMinus, Percent and
//     parenthesis tokens.
//   - ToPostfix reorders the tokens into postfix (RPN) order using the
//     shunting-yard algorithm.
//   - EvalRPN runs the postfix sequence on a float64 stack.
//
// RoundSmart trims binary floating point noise from a result, and Evaluate
// chains all of the above.
//
// # Percent
//
// Percent is a postfix operator that is written straight to the output queue
// instead of the operator stack, so it binds to whatever value was produced
// just before it. "50%%" divides by 100 twice.
//
// # Errors
//
// Every failure is one of the Err* sentinels below, possibly wrapped with
// position detail. Use errors.Is to test for a kind and Kind to obtain a
// stable code for the wire.
package engine
