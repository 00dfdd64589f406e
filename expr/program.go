package expr

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

// Program is a compiled formula: a postfix token stream plus the
// metadata needed to execute it against any Source whose column layout
// matches what it was compiled against.
type Program struct {
	tokens       []token
	ReturnType   value.Kind
	maxDepth     int
	refs         map[int]bool
	scratch      []value.Value // reused across EvalRow calls
}

// ReferencedColumns reports which column indices (against the Source
// this Program was compiled with) appear anywhere in the formula. Views
// use this to decide whether a DataUpdated event on a column can change
// filter membership.
func (p *Program) ReferencedColumns() map[int]bool {
	return p.refs
}

func stackDepth(tokens []token) int {
	depth, maxDepth := 0, 0
	for _, t := range tokens {
		switch {
		case isLiteralKind(t.kind) || t.kind == TokColumnRef:
			depth++
		case t.kind == TokFunctionName:
			depth -= t.arity
			depth++
		}
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	return maxDepth
}

// EvalRow executes the program against a single row of src.
func (p *Program) EvalRow(src Source, row int) (value.Value, error) {
	stack := p.scratch[:0]
	for _, t := range p.tokens {
		switch {
		case isLiteralKind(t.kind):
			stack = append(stack, t.lit)
		case t.kind == TokColumnRef:
			stack = append(stack, src.CellAt(row, t.columnIndex))
		case t.kind == TokFunctionName:
			n := t.arity
			if len(stack) < n {
				return value.Value{}, fmt.Errorf("program stack underflow evaluating %q: %w", t.funcName, kmterr.ErrUnknown)
			}
			args := stack[len(stack)-n:]
			result, err := t.fn.Call(args)
			if err != nil {
				return value.Value{}, fmt.Errorf("evaluating %q: %w", t.funcName, err)
			}
			stack = stack[:len(stack)-n]
			stack = append(stack, result)
		}
	}
	p.scratch = stack[:0]
	if len(stack) != 1 {
		return value.Value{}, fmt.Errorf("program did not reduce to a single value: %w", kmterr.ErrUnknown)
	}
	return stack[0], nil
}

// EvalBool is EvalRow followed by a Bool() accessor, the common case for
// filter predicates.
func (p *Program) EvalBool(src Source, row int) (bool, error) {
	v, err := p.EvalRow(src, row)
	if err != nil {
		return false, err
	}
	return v.Bool()
}

// EvalRows evaluates the program as a boolean predicate over every row
// of src, reusing the Program's scratch stack across rows.
func (p *Program) EvalRows(src Source) ([]bool, error) {
	n := src.RowCount()
	matched := make([]bool, n)
	for row := 0; row < n; row++ {
		ok, err := p.EvalBool(src, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		matched[row] = ok
	}
	return matched, nil
}
