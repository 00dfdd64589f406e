package expr

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

// Compile parses, resolves, constant-folds, and packages formula into an
// executable Program. targetType must match the formula's resolved
// return type exactly — callers adding a computed column or a filter
// predicate pass the type they need (the filter's is always
// value.KindBool).
func Compile(formula string, src Source, targetType value.Kind) (*Program, error) {
	tokens, err := tokenize(formula)
	if err != nil {
		return nil, err
	}
	if err := checkGrammar(tokens); err != nil {
		return nil, err
	}

	postfix, returnType, refs, err := resolveAndEmit(tokens, src)
	if err != nil {
		return nil, err
	}

	folded, err := fold(postfix)
	if err != nil {
		return nil, err
	}

	if returnType != targetType {
		return nil, fmt.Errorf("formula %q produces %s, want %s: %w", formula, returnType, targetType, kmterr.ErrTypeMismatch)
	}

	depth := stackDepth(folded)
	return &Program{
		tokens:     folded,
		ReturnType: returnType,
		maxDepth:   depth,
		refs:       refs,
		scratch:    make([]value.Value, 0, depth),
	}, nil
}

// acceptAllProgram is the always-true Program used when a filter
// formula is empty, so a FilteredView with no predicate simply mirrors
// its source.
func acceptAllProgram() *Program {
	return &Program{
		tokens:     []token{{kind: TokBoolLit, lit: value.Bool(true)}},
		ReturnType: value.KindBool,
		maxDepth:   1,
		refs:       map[int]bool{},
		scratch:    make([]value.Value, 0, 1),
	}
}

// CompileFilter compiles a boolean predicate formula for use as a
// FilteredView's membership test. An empty (or all-whitespace) formula
// is treated as "accept every row" rather than a parse error.
func CompileFilter(formula string, src Source) (*Program, error) {
	if isBlank(formula) {
		return acceptAllProgram(), nil
	}
	return Compile(formula, src, value.KindBool)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
