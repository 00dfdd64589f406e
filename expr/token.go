package expr

import (
	"kmt/registry"
	"kmt/value"
)

// TokenKind is a single-flag-bit-per-kind token classification, so
// membership in a set of kinds is a bitwise test (see isLiteralKind).
type TokenKind uint32

const (
	TokInt32Lit TokenKind = 1 << iota
	TokInt64Lit
	TokFloat32Lit
	TokFloat64Lit
	TokStrLit
	TokBoolLit
	TokColumnRef
	TokFunctionName
	TokComma
	TokLParen
	TokRParen
	TokInvalid
)

const literalMask = TokInt32Lit | TokInt64Lit | TokFloat32Lit | TokFloat64Lit | TokStrLit | TokBoolLit

func isLiteralKind(k TokenKind) bool { return k&literalMask != 0 }

func literalValueKind(k TokenKind) value.Kind {
	switch k {
	case TokInt32Lit:
		return value.KindInt32
	case TokInt64Lit:
		return value.KindInt64
	case TokFloat32Lit:
		return value.KindFloat32
	case TokFloat64Lit:
		return value.KindFloat64
	case TokStrLit:
		return value.KindStr
	case TokBoolLit:
		return value.KindBool
	default:
		panic("literalValueKind: not a literal kind")
	}
}

func literalTokenKind(k value.Kind) TokenKind {
	switch k {
	case value.KindInt32:
		return TokInt32Lit
	case value.KindInt64:
		return TokInt64Lit
	case value.KindFloat32:
		return TokFloat32Lit
	case value.KindFloat64:
		return TokFloat64Lit
	case value.KindStr:
		return TokStrLit
	case value.KindBool:
		return TokBoolLit
	default:
		panic("literalTokenKind: value kind has no literal token representation")
	}
}

// token is a single classified lexeme, progressively enriched by the
// grammar check (matchIdx), and the reference/type resolution +
// postfix-emission pass (columnIndex, fn, arity, returnType).
type token struct {
	kind TokenKind
	text string

	lit value.Value // populated for literal kinds

	funcName   string // populated for TokFunctionName
	columnName string // populated for TokColumnRef

	matchIdx int // TokFunctionName: index of its matching RParen in the token slice

	columnIndex int // TokColumnRef: resolved index into the Source's columns
	fn          *registry.Function
	arity       int
	returnType  value.Kind
}
