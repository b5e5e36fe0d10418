// Package compiler is the fused recursive-descent parser/emitter: a single
// pass over the token stream that builds a symtab.Program directly, with no
// intermediate syntax tree. See decl.go, stmt.go, and expr.go for the
// recognizers; this file holds the token cursor and the top-level
// declaration dispatch.
//
// Grounded on mna-nenuphar/lang/parser/parser.go's cursor idiom (advance,
// expect, error-at-last-consumed-token), adapted from that package's
// AST-building, accumulate-and-recover design to fused emission with
// first-error-wins propagation, per spec.md §4.2's failure semantics.
package compiler

import (
	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/instr"
	"github.com/go-c0x/c0x/lang/scanner"
	"github.com/go-c0x/c0x/lang/symtab"
	"github.com/go-c0x/c0x/lang/token"
)

// emitter is the common append/patch surface of *symtab.Function and the
// `.start` stream wrapper, letting expr/stmt recognizers emit into whichever
// is current without knowing which.
type emitter interface {
	Emit(ins instr.Instruction) int32
	NextIndex() int32
	ReserveNop() int32
	Patch(index int32, op instr.Opcode, target int32)
}

type startEmitter struct{ prog *symtab.Program }

func (e startEmitter) Emit(ins instr.Instruction) int32 { return e.prog.EmitStart(ins) }
func (e startEmitter) NextIndex() int32                 { return int32(len(e.prog.Start)) }
func (e startEmitter) ReserveNop() int32                { return e.prog.EmitStart(instr.Op0(0, instr.Nop)) }
func (e startEmitter) Patch(index int32, op instr.Opcode, target int32) {
	e.prog.PatchStart(index, op, target)
}

// cursor is the parser's one-token lookahead, one-token-rollback token
// stream, fed lazily by the scanner's NextToken.
type cursor struct {
	sc *scanner.Scanner

	cur    token.Token
	curErr *diag.Error // non-nil at EOF or on a lexical error

	prevTok token.Token
	hasPrev bool

	pending    *token.Token // set by rollback, consumed by the next advance
	pendingErr *diag.Error
}

func newCursor(sc *scanner.Scanner) *cursor {
	c := &cursor{sc: sc}
	c.advance()
	return c
}

func (c *cursor) advance() {
	c.prevTok = c.cur
	c.hasPrev = true

	if c.pending != nil {
		c.cur = *c.pending
		c.curErr = c.pendingErr
		c.pending, c.pendingErr = nil, nil
		return
	}

	tok, err := c.sc.NextToken()
	c.cur, c.curErr = tok, err
}

// rollback undoes the most recent advance, restoring cur to the token
// consumed just before it. Used by cast-expr's lookahead: a '(' is consumed
// optimistically to check for a following type keyword, and rolled back when
// the parenthesized form turns out to be a grouped expression instead.
func (c *cursor) rollback() {
	if !c.hasPrev {
		panic("compiler: rollback called with no token to roll back")
	}
	tok, err := c.cur, c.curErr
	c.pending, c.pendingErr = &tok, err
	c.cur, c.curErr = c.prevTok, nil
	c.hasPrev = false
}

// lastPos returns the position of the last successfully consumed token,
// which spec.md §4.2 specifies every parser error is reported against.
func (c *cursor) lastPos() token.Position {
	return c.prevTok.Start
}

type parser struct {
	cur  *cursor
	prog *symtab.Program
	fn   *symtab.Function // nil while emitting at global scope
}

// Compile runs the scanner and parser/emitter over src and returns the
// completed program, or the first error encountered by either phase.
func Compile(src []byte) (*symtab.Program, *diag.Error) {
	sc := scanner.New(src)
	cur := newCursor(sc)
	if err := cur.curErr; err != nil && err.Code != diag.EOF {
		return nil, err
	}

	p := &parser{cur: cur, prog: symtab.NewProgram()}
	if err := p.parseProgram(); err != nil {
		return nil, err
	}
	return p.prog, nil
}

func (p *parser) advance() { p.cur.advance() }

func (p *parser) atEOF() bool {
	return p.cur.curErr != nil && p.cur.curErr.Code == diag.EOF
}

// lexError surfaces a pending scanner-detected error (anything but EOF) so
// it is never masked by a less specific parser diagnostic.
func (p *parser) lexError() *diag.Error {
	if p.cur.curErr != nil && p.cur.curErr.Code != diag.EOF {
		return p.cur.curErr
	}
	return nil
}

func (p *parser) errAt(code diag.Code) *diag.Error {
	return diag.New(p.cur.lastPos(), code)
}

func (p *parser) curIsPunct(k token.Kind) bool {
	return p.cur.curErr == nil && p.cur.cur.Kind == k
}

func (p *parser) curIsReserved(word string) bool {
	return p.cur.curErr == nil && p.cur.cur.Kind == token.Reserved && p.cur.cur.Value.Str == word
}

func (p *parser) curIsTypeKeyword() bool {
	if p.cur.curErr != nil || p.cur.cur.Kind != token.Reserved {
		return false
	}
	switch p.cur.cur.Value.Str {
	case "void", "int", "char", "double":
		return true
	default:
		return false
	}
}

func (p *parser) expectPunct(k token.Kind, code diag.Code) *diag.Error {
	if err := p.lexError(); err != nil {
		return err
	}
	if p.cur.cur.Kind != k {
		return p.errAt(code)
	}
	p.advance()
	return nil
}

func (p *parser) expectIdent() (string, *diag.Error) {
	if err := p.lexError(); err != nil {
		return "", err
	}
	if p.cur.cur.Kind != token.Identifier {
		return "", p.errAt(diag.NeedIdentifier)
	}
	name := p.cur.cur.Value.Str
	p.advance()
	return name, nil
}

func (p *parser) expectReserved(word string, code diag.Code) *diag.Error {
	if err := p.lexError(); err != nil {
		return err
	}
	if !p.curIsReserved(word) {
		return p.errAt(code)
	}
	p.advance()
	return nil
}

// parseTypeKeyword consumes one of void/int/char/double. notTypeCode names
// the error to use when cur is not a type keyword, since the same
// recognizer backs variable declarations, function return types, parameters,
// and casts, each with its own catalog entry for the failure.
func (p *parser) parseTypeKeyword(notTypeCode diag.Code) (symtab.Type, *diag.Error) {
	if err := p.lexError(); err != nil {
		return 0, err
	}
	if !p.curIsTypeKeyword() {
		return 0, p.errAt(notTypeCode)
	}
	var typ symtab.Type
	switch p.cur.cur.Value.Str {
	case "void":
		typ = symtab.Void
	case "int":
		typ = symtab.Int
	case "char":
		typ = symtab.Char
	case "double":
		typ = symtab.Double
	}
	p.advance()
	return typ, nil
}

func (p *parser) emitter() emitter {
	if p.fn != nil {
		return p.fn
	}
	return startEmitter{p.prog}
}

// resolve looks up name in the current function's local frame, then the
// global frame, per spec.md §9 ("lookup checks the local frame, if any,
// then the global frame"). The returned level is relative to the emission
// context: inside a function, 0 is that function's locals and 1 is the
// globals; inside `.start` there is no enclosing frame, so a global
// resolved there is level 0 (scenario 2's `loada 0 0`).
func (p *parser) resolve(name string) (v symtab.Variable, level int32, isConst, isUninit, ok bool) {
	if p.fn != nil {
		if v, isConst, isUninit, ok := p.fn.Locals.Lookup(name); ok {
			return v, 0, isConst, isUninit, true
		}
		if v, isConst, isUninit, ok := p.prog.Global.Lookup(name); ok {
			return v, 1, isConst, isUninit, true
		}
		return symtab.Variable{}, 0, false, false, false
	}
	if v, isConst, isUninit, ok := p.prog.Global.Lookup(name); ok {
		return v, 0, isConst, isUninit, true
	}
	return symtab.Variable{}, 0, false, false, false
}

func (p *parser) initializeName(level int32, name string) {
	if level == 0 {
		p.fn.Locals.Initialize(name)
	} else {
		p.prog.Global.Initialize(name)
	}
}

// parseProgram implements `program := {global-decl} {function-def}`,
// disambiguating the two by one-token lookahead after `type ident`: a
// following '(' means a function. The ordering is not enforced: a global
// declaration after a function definition is accepted as well.
func (p *parser) parseProgram() *diag.Error {
	for {
		if err := p.lexError(); err != nil {
			return err
		}
		if p.atEOF() {
			return nil
		}

		isConst := false
		if p.curIsReserved("const") {
			isConst = true
			p.advance()
		}

		typ, err := p.parseTypeKeyword(diag.NeedVariableType)
		if err != nil {
			return err
		}
		name, err := p.expectIdent()
		if err != nil {
			return err
		}

		if p.curIsPunct(token.LeftParen) {
			if isConst {
				return p.errAt(diag.InvalidFunctionDeclaration)
			}
			if err := p.parseFunctionDef(name, typ); err != nil {
				return err
			}
			continue
		}

		if typ == symtab.Void {
			return p.errAt(diag.InvalidVariableType)
		}
		if err := p.parseGlobalDeclRest(isConst, typ, name); err != nil {
			return err
		}
	}
}
