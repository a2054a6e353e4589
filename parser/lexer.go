package parser

import "fmt"

// SyntaxError reports a lexical or grammatical error with its position in
// the source.
type SyntaxError struct {
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokName   // process name: uppercase-starting identifier or "_"
	tokAction // action name: lowercase-starting, optionally primed; "tau" becomes τ
	tokZero
	tokDot
	tokPlus
	tokPipe
	tokBackslash
	tokLBrack
	tokRBrack
	tokSlash
	tokLParen
	tokRParen
	tokEq
)

type token struct {
	kind      tokenKind
	text      string
	line, col int
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNewline:
		return "end of line"
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

// lex tokenizes a whole specification. Comments run from '#' to the end of
// the line.
func lex(src string) ([]token, error) {
	var tokens []token
	line, col := 1, 1
	emit := func(kind tokenKind, text string) {
		tokens = append(tokens, token{kind: kind, text: text, line: line, col: col})
	}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
			col++
		case c == '\n':
			emit(tokNewline, "\n")
			i++
			line++
			col = 1
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '0':
			emit(tokZero, "0")
			i++
			col++
		case c == '.':
			emit(tokDot, ".")
			i++
			col++
		case c == '+':
			emit(tokPlus, "+")
			i++
			col++
		case c == '|':
			emit(tokPipe, "|")
			i++
			col++
		case c == '\\':
			emit(tokBackslash, "\\")
			i++
			col++
		case c == '[':
			emit(tokLBrack, "[")
			i++
			col++
		case c == ']':
			emit(tokRBrack, "]")
			i++
			col++
		case c == '/':
			emit(tokSlash, "/")
			i++
			col++
		case c == '(':
			emit(tokLParen, "(")
			i++
			col++
		case c == ')':
			emit(tokRParen, ")")
			i++
			col++
		case c == '=':
			emit(tokEq, "=")
			i++
			col++
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			if i < len(src) && src[i] == '\'' {
				i++
			}
			text := src[start:i]
			kind := tokAction
			if text == "tau" {
				text = "τ"
			} else if c == '_' || c >= 'A' && c <= 'Z' {
				kind = tokName
			}
			emit(kind, text)
			col += i - start
		default:
			return nil, &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	emit(tokEOF, "")
	return tokens, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
