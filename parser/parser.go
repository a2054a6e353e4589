// Package parser turns textual CCS specifications into systems. A
// specification is one definition per line, `Name = expression`, where the
// first definition names the distinguished root process. The expression
// grammar follows the calculus: `0`, `action.P` (with `tau` for the silent
// action and a trailing `'` for co-actions), `P + Q`, `P | Q`, postfix
// restriction `P \ a` and relabeling `P[a/b]`, parentheses, and process
// references. The anonymous name `_` may head a definition but can never be
// referenced.
//
// The lexer and parser are hand-written recursive descent; the grammar is
// small enough that a generator would cost more than it saves.
package parser

import (
	"fmt"
	"io"

	"github.com/jzbor/ccs"
)

// Parser reads a specification. Name becomes the system name, typically the
// source file.
type Parser struct {
	Name string
}

var _ ccs.Loader[*ccs.System] = (*Parser)(nil)

func (p *Parser) Load(r io.Reader) (*ccs.System, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(p.Name, string(src))
}

// Parse parses a complete specification. At least one definition is
// required; later definitions of the same name override earlier ones, but
// the root stays the first name defined.
func Parse(name, src string) (*ccs.System, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parseRun{tokens: tokens}

	defs := make(map[string]ccs.Process)
	root := ""
	for {
		p.skipNewlines()
		if p.peek().kind == tokEOF {
			break
		}
		defName, proc, err := p.definition()
		if err != nil {
			return nil, err
		}
		if root == "" {
			root = defName
		}
		defs[defName] = proc
	}
	if root == "" {
		return nil, &SyntaxError{Line: 1, Col: 1, Msg: "specification defines no process"}
	}
	return ccs.NewSystem(name, defs, root)
}

type parseRun struct {
	tokens []token
	pos    int
}

func (p *parseRun) peek() token { return p.tokens[p.pos] }

func (p *parseRun) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parseRun) skipNewlines() {
	for p.peek().kind == tokNewline {
		p.pos++
	}
}

func (p *parseRun) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, &SyntaxError{Line: t.line, Col: t.col, Msg: fmt.Sprintf("expected %s, found %s", what, t.describe())}
	}
	return t, nil
}

func (p *parseRun) definition() (string, ccs.Process, error) {
	name, err := p.expect(tokName, "process name")
	if err != nil {
		return "", nil, err
	}
	if _, err := p.expect(tokEq, `"="`); err != nil {
		return "", nil, err
	}
	proc, err := p.expression()
	if err != nil {
		return "", nil, err
	}
	end := p.next()
	if end.kind != tokNewline && end.kind != tokEOF {
		return "", nil, &SyntaxError{Line: end.line, Col: end.col, Msg: fmt.Sprintf("expected end of definition, found %s", end.describe())}
	}
	return name.text, proc, nil
}

// expression parses a choice, the loosest-binding operator. Operands fold
// to the right so flattening in the canonical form matches the source.
func (p *parseRun) expression() (ccs.Process, error) {
	ops := []ccs.Process{}
	for {
		op, err := p.parallel()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		if p.peek().kind != tokPlus {
			break
		}
		p.next()
	}
	proc := ops[len(ops)-1]
	for i := len(ops) - 2; i >= 0; i-- {
		proc = ccs.Choice{Left: ops[i], Right: proc}
	}
	return proc, nil
}

func (p *parseRun) parallel() (ccs.Process, error) {
	ops := []ccs.Process{}
	for {
		op, err := p.prefix()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		if p.peek().kind != tokPipe {
			break
		}
		p.next()
	}
	proc := ops[len(ops)-1]
	for i := len(ops) - 2; i >= 0; i-- {
		proc = ccs.Parallel{Left: ops[i], Right: proc}
	}
	return proc, nil
}

func (p *parseRun) prefix() (ccs.Process, error) {
	if p.peek().kind == tokAction {
		action := p.next()
		if _, err := p.expect(tokDot, `"." after action`); err != nil {
			return nil, err
		}
		next, err := p.prefix()
		if err != nil {
			return nil, err
		}
		return ccs.Prefix{Action: ccs.Label(action.text), Next: next}, nil
	}
	return p.postfix()
}

func (p *parseRun) postfix() (ccs.Process, error) {
	proc, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokBackslash:
			p.next()
			label, err := p.visibleAction("restrict")
			if err != nil {
				return nil, err
			}
			proc = ccs.Restrict{Proc: proc, Label: label}
		case tokLBrack:
			p.next()
			to, err := p.visibleAction("relabel to")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokSlash, `"/"`); err != nil {
				return nil, err
			}
			from, err := p.visibleAction("relabel from")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRBrack, `"]"`); err != nil {
				return nil, err
			}
			proc = ccs.Relabel{Proc: proc, To: to, From: from}
		default:
			return proc, nil
		}
	}
}

// visibleAction parses an action operand of restriction or relabeling,
// which must not be τ.
func (p *parseRun) visibleAction(context string) (ccs.Label, error) {
	t, err := p.expect(tokAction, "action name")
	if err != nil {
		return "", err
	}
	label := ccs.Label(t.text)
	if label.IsTau() {
		return "", &SyntaxError{Line: t.line, Col: t.col, Msg: fmt.Sprintf("cannot %s the silent action", context)}
	}
	return label, nil
}

func (p *parseRun) atom() (ccs.Process, error) {
	t := p.next()
	switch t.kind {
	case tokZero:
		return ccs.Deadlock{}, nil
	case tokName:
		if t.text == ccs.Anonymous {
			return nil, &SyntaxError{Line: t.line, Col: t.col, Msg: "anonymous process referenced on a right-hand side"}
		}
		return ccs.Ref{Name: t.text}, nil
	case tokLParen:
		proc, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, `")"`); err != nil {
			return nil, err
		}
		return proc, nil
	default:
		return nil, &SyntaxError{Line: t.line, Col: t.col, Msg: fmt.Sprintf("expected a process, found %s", t.describe())}
	}
}
