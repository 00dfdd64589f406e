package expr

import "kmt/value"

// foldFrame tracks, for each value currently "on the stack" while
// replaying a postfix stream, whether it is a compile-time constant and
// where in the growing output slice its subexpression begins. outStart
// lets a folded function call truncate output back to the start of its
// own argument tokens and splice in a single literal in their place,
// without losing the tokens of sibling subexpressions that didn't fold.
type foldFrame struct {
	isLiteral bool
	literal   value.Value
	outStart  int
}

// fold collapses every subexpression whose arguments are all compile-
// time constants into a single literal token, replaying the postfix
// stream with an auxiliary stack of foldFrame instead of actual values.
// A function call folds only when every one of its arguments folded;
// this correctly handles deep nesting such as
// IF(isEqual(add(5,10),15), 0, 1), which collapses entirely to a
// single literal token.
func fold(tokens []token) ([]token, error) {
	out := make([]token, 0, len(tokens))
	var stack []foldFrame

	for _, t := range tokens {
		switch {
		case isLiteralKind(t.kind):
			frame := foldFrame{isLiteral: true, literal: t.lit, outStart: len(out)}
			out = append(out, t)
			stack = append(stack, frame)

		case t.kind == TokColumnRef:
			frame := foldFrame{isLiteral: false, outStart: len(out)}
			out = append(out, t)
			stack = append(stack, frame)

		case t.kind == TokFunctionName:
			n := t.arity
			var args []foldFrame
			if n > 0 {
				args = stack[len(stack)-n:]
			}

			outStart := len(out)
			allLiteral := n > 0
			for _, a := range args {
				if !a.isLiteral {
					allLiteral = false
				}
			}
			if n > 0 {
				outStart = args[0].outStart
			}

			if allLiteral {
				litArgs := make([]value.Value, n)
				for i, a := range args {
					litArgs[i] = a.literal
				}
				result, err := t.fn.Call(litArgs)
				if err != nil {
					return nil, err
				}
				out = out[:outStart]
				out = append(out, token{kind: literalTokenKind(t.returnType), lit: result})
				if n > 0 {
					stack = stack[:len(stack)-n]
				}
				stack = append(stack, foldFrame{isLiteral: true, literal: result, outStart: outStart})
			} else {
				out = append(out, t)
				if n > 0 {
					stack = stack[:len(stack)-n]
				}
				stack = append(stack, foldFrame{isLiteral: false, outStart: outStart})
			}
		}
	}

	return out, nil
}
