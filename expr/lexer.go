package expr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"kmt/kmterr"
	"kmt/value"
)

// lex performs the single forward scan described by the spec: characters
// inside "..." are string-literal body (an unterminated literal fails),
// and outside strings '(', ')', ',' are self-delimiting while whitespace
// separates everything else into lexemes.
func lex(formula string) ([]string, error) {
	var lexemes []string
	n := len(formula)
	i := 0
	for i < n {
		ch := formula[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '(' || ch == ')' || ch == ',':
			lexemes = append(lexemes, string(ch))
			i++
		case ch == '"':
			start := i
			i++
			for i < n && formula[i] != '"' {
				i++
			}
			if i >= n {
				return nil, fmt.Errorf("unterminated string literal starting at byte %d: %w", start, kmterr.ErrParseError)
			}
			i++ // consume closing quote
			lexemes = append(lexemes, formula[start:i])
		default:
			start := i
			for i < n {
				c := formula[i]
				if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '(' || c == ')' || c == ',' || c == '"' {
					break
				}
				i++
			}
			lexemes = append(lexemes, formula[start:i])
		}
	}
	return lexemes, nil
}

// classifier pairs a token kind with the regex that recognizes it. Order
// matters: the first matching regex in this slice wins, exactly per the
// spec's lexing priority table.
type classifier struct {
	kind TokenKind
	re   *regexp.Regexp
}

var classifiers = []classifier{
	{TokInt32Lit, regexp.MustCompile(`^-?\d+$`)},
	{TokInt64Lit, regexp.MustCompile(`^-?\d+[lL]?$`)},
	{TokFloat32Lit, regexp.MustCompile(`^-?\d+\.\d*f$`)},
	{TokFloat64Lit, regexp.MustCompile(`^-?\d+\.\d*$`)},
	{TokStrLit, regexp.MustCompile(`^".*"$`)},
	{TokBoolLit, regexp.MustCompile(`^(True|False)$`)},
	{TokColumnRef, regexp.MustCompile(`^\$[A-Za-z_]\w*$`)},
	{TokFunctionName, regexp.MustCompile(`^[A-Za-z]\w*$`)},
}

// classify turns a raw lexeme into a token. LParen/RParen/Comma are
// recognized directly (they're single self-delimiting characters from
// lex), everything else goes through the classifiers table in priority
// order, falling back to TokInvalid.
func classify(lexeme string) token {
	switch lexeme {
	case "(":
		return token{kind: TokLParen, text: lexeme}
	case ")":
		return token{kind: TokRParen, text: lexeme}
	case ",":
		return token{kind: TokComma, text: lexeme}
	}

	for _, c := range classifiers {
		if c.re.MatchString(lexeme) {
			return buildLiteralOrRefToken(c.kind, lexeme)
		}
	}
	return token{kind: TokInvalid, text: lexeme}
}

func buildLiteralOrRefToken(kind TokenKind, lexeme string) token {
	switch kind {
	case TokInt32Lit:
		n, _ := strconv.ParseInt(lexeme, 10, 32)
		return token{kind: kind, text: lexeme, lit: value.Int32(int32(n))}
	case TokInt64Lit:
		trimmed := strings.TrimRight(lexeme, "lL")
		n, _ := strconv.ParseInt(trimmed, 10, 64)
		return token{kind: kind, text: lexeme, lit: value.Int64(n)}
	case TokFloat32Lit:
		trimmed := strings.TrimSuffix(lexeme, "f")
		f, _ := strconv.ParseFloat(trimmed, 32)
		return token{kind: kind, text: lexeme, lit: value.Float32(float32(f))}
	case TokFloat64Lit:
		f, _ := strconv.ParseFloat(lexeme, 64)
		return token{kind: kind, text: lexeme, lit: value.Float64(f)}
	case TokStrLit:
		return token{kind: kind, text: lexeme, lit: value.Str(lexeme[1 : len(lexeme)-1])}
	case TokBoolLit:
		return token{kind: kind, text: lexeme, lit: value.Bool(lexeme == "True")}
	case TokColumnRef:
		return token{kind: kind, text: lexeme, columnName: lexeme[1:]}
	case TokFunctionName:
		return token{kind: kind, text: lexeme, funcName: lexeme}
	default:
		return token{kind: TokInvalid, text: lexeme}
	}
}

func tokenize(formula string) ([]token, error) {
	lexemes, err := lex(formula)
	if err != nil {
		return nil, err
	}
	tokens := make([]token, len(lexemes))
	for i, lx := range lexemes {
		tokens[i] = classify(lx)
	}
	return tokens, nil
}
