package expr

import (
	"fmt"
	"strings"

	"kmt/kmterr"
	"kmt/registry"
	"kmt/value"
)

// resolveAndEmit walks the token tree that checkGrammar already validated
// (using each function token's matchIdx to find its call's extent),
// resolving column references against src and function calls against
// the registry, and emits the result directly in postfix (postorder)
// form: every node appends its children's tokens before its own.
//
// This is a direct recursive-descent equivalent of rotating each
// function call's tokens to the end of its span — walking the call
// tree and emitting args-then-function achieves the same postfix
// stream without the bookkeeping of in-place array rotation, and does
// so correctly regardless of nesting depth.
func resolveAndEmit(tokens []token, src Source) ([]token, value.Kind, map[int]bool, error) {
	out := make([]token, 0, len(tokens))
	refs := map[int]bool{}

	end, kind, err := emitNode(tokens, 0, src, &out, refs)
	if err != nil {
		return nil, 0, nil, err
	}
	if end != len(tokens) {
		return nil, 0, nil, fmt.Errorf("trailing tokens after top-level expression: %w", kmterr.ErrParseError)
	}
	return out, kind, refs, nil
}

// emitNode parses and emits the single node starting at tokens[i],
// returning the index just past it and its resolved value kind.
func emitNode(tokens []token, i int, src Source, out *[]token, refs map[int]bool) (int, value.Kind, error) {
	t := tokens[i]

	switch {
	case isLiteralKind(t.kind):
		*out = append(*out, t)
		return i + 1, literalValueKind(t.kind), nil

	case t.kind == TokColumnRef:
		idx, ok := findColumn(src, t.columnName)
		if !ok {
			return 0, 0, fmt.Errorf("unknown column %q: %w", t.columnName, kmterr.ErrReferenceError)
		}
		t.columnIndex = idx
		meta := src.ColumnMeta(idx)
		t.returnType = meta.Type
		*out = append(*out, t)
		refs[idx] = true
		return i + 1, meta.Type, nil

	case t.kind == TokFunctionName:
		return emitCall(tokens, i, src, out, refs)

	default:
		return 0, 0, fmt.Errorf("unexpected token %q: %w", t.text, kmterr.ErrParseError)
	}
}

func emitCall(tokens []token, i int, src Source, out *[]token, refs map[int]bool) (int, value.Kind, error) {
	call := tokens[i]
	closeIdx := call.matchIdx
	if i+1 >= len(tokens) || tokens[i+1].kind != TokLParen {
		return 0, 0, fmt.Errorf("function %q not followed by '(': %w", call.funcName, kmterr.ErrParseError)
	}

	var argTypes []value.Kind
	pos := i + 2

	if pos < len(tokens) && tokens[pos].kind == TokRParen && pos == closeIdx {
		// zero-arg call: FN()
	} else {
		for {
			next, kind, err := emitNode(tokens, pos, src, out, refs)
			if err != nil {
				return 0, 0, err
			}
			argTypes = append(argTypes, kind)
			pos = next
			if pos >= len(tokens) {
				return 0, 0, fmt.Errorf("unterminated call to %q: %w", call.funcName, kmterr.ErrParseError)
			}
			if tokens[pos].kind == TokComma {
				pos++
				continue
			}
			break
		}
	}

	if pos != closeIdx {
		return 0, 0, fmt.Errorf("malformed argument list for %q: %w", call.funcName, kmterr.ErrParseError)
	}

	mangled := registry.Mangle(call.funcName, argTypes...)
	fn, ok := registry.Lookup(mangled)
	if !ok {
		return 0, 0, fmt.Errorf("no function %q matches argument types (%s): %w",
			call.funcName, joinKinds(argTypes), kmterr.ErrReferenceError)
	}

	call.fn = fn
	call.arity = fn.Arity
	call.returnType = fn.ReturnType
	*out = append(*out, call)

	return closeIdx + 1, fn.ReturnType, nil
}

func joinKinds(kinds []value.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}
