package compiler

import (
	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/instr"
	"github.com/go-c0x/c0x/lang/symtab"
	"github.com/go-c0x/c0x/lang/token"
)

// parseCondition implements `condition := expr [ relop expr ]` and returns
// the skip-jump opcode that should branch around the construct guarded by
// this condition when it is false. A bare expr is treated as `expr != 0`
// (spec.md §4.2), which reuses the "!=" row of the skip-jump table: `je`.
func (p *parser) parseCondition(em emitter) (instr.Opcode, *diag.Error) {
	if _, err := p.parseExpr(em); err != nil {
		return 0, err
	}

	op, ok := p.relOp()
	if !ok {
		em.Emit(instr.Op1(0, instr.Ipush, 4, 0))
		em.Emit(instr.Op0(0, instr.Icmp))
		return instr.Je, nil
	}
	p.advance()

	if _, err := p.parseExpr(em); err != nil {
		return 0, err
	}
	em.Emit(instr.Op0(0, instr.Icmp))
	return instr.SkipJump[op], nil
}

// relOp reports the source relational operator spelling at cur, if any.
func (p *parser) relOp() (string, bool) {
	switch p.curTok().Kind {
	case token.Less:
		return "<", true
	case token.LessEqual:
		return "<=", true
	case token.Greater:
		return ">", true
	case token.GreaterEqual:
		return ">=", true
	case token.Equal:
		return "==", true
	case token.NotEqual:
		return "!=", true
	default:
		return "", false
	}
}

// parseExpr implements `expr := mul-expr { ("+"|"-") mul-expr }`.
func (p *parser) parseExpr(em emitter) (symtab.Type, *diag.Error) {
	typ, err := p.parseMulExpr(em)
	if err != nil {
		return 0, err
	}
	for {
		var op instr.Opcode
		switch p.curTok().Kind {
		case token.Plus:
			op = instr.Iadd
		case token.Minus:
			op = instr.Isub
		default:
			return typ, nil
		}
		p.advance()
		rhs, err := p.parseMulExpr(em)
		if err != nil {
			return 0, err
		}
		em.Emit(instr.Op0(0, op))
		typ = commonType(typ, rhs)
	}
}

// parseMulExpr implements `mul-expr := cast-expr { ("*"|"/") cast-expr }`.
func (p *parser) parseMulExpr(em emitter) (symtab.Type, *diag.Error) {
	typ, err := p.parseCastExpr(em)
	if err != nil {
		return 0, err
	}
	for {
		var op instr.Opcode
		switch p.curTok().Kind {
		case token.Multiply:
			op = instr.Imul
		case token.Divide:
			op = instr.Idiv
		default:
			return typ, nil
		}
		p.advance()
		rhs, err := p.parseCastExpr(em)
		if err != nil {
			return 0, err
		}
		em.Emit(instr.Op0(0, op))
		typ = commonType(typ, rhs)
	}
}

// commonType is the expression type rule spec.md §4.2 gives for binary
// arithmetic: the common type of both sides if equal, else Integer.
func commonType(lhs, rhs symtab.Type) symtab.Type {
	if lhs == rhs {
		return lhs
	}
	return symtab.Int
}

// parseCastExpr implements `cast-expr := { "(" type ")" } unary-expr`. The
// leading '(' is consumed speculatively; if no type keyword follows, the
// cursor rolls back one token so the '(' is left for primary-expr's
// parenthesized-expression form.
func (p *parser) parseCastExpr(em emitter) (symtab.Type, *diag.Error) {
	if !p.curIsPunct(token.LeftParen) {
		return p.parseUnaryExpr(em)
	}

	p.advance() // '('
	if !p.curIsTypeKeyword() {
		p.cur.rollback()
		return p.parseUnaryExpr(em)
	}

	target, err := p.parseTypeKeyword(diag.InvalidCast)
	if err != nil {
		return 0, err
	}
	if err := p.expectPunct(token.RightParen, diag.MissingBracket); err != nil {
		return 0, err
	}
	if target == symtab.Void {
		return 0, p.errAt(diag.CastToVoid)
	}
	if target == symtab.Double {
		return 0, p.errAt(diag.InvalidCast)
	}

	if _, err := p.parseCastExpr(em); err != nil {
		return 0, err
	}
	return target, nil
}

// parseUnaryExpr implements `unary-expr := [ "+" | "-" ] primary-expr`.
func (p *parser) parseUnaryExpr(em emitter) (symtab.Type, *diag.Error) {
	if p.curIsPunct(token.Plus) {
		p.advance()
		return p.parsePrimaryExpr(em)
	}
	if p.curIsPunct(token.Minus) {
		p.advance()
		typ, err := p.parsePrimaryExpr(em)
		if err != nil {
			return 0, err
		}
		em.Emit(instr.Op0(0, instr.Ineg))
		return typ, nil
	}
	return p.parsePrimaryExpr(em)
}

// parsePrimaryExpr implements
// `primary-expr := "(" expr ")" | ident | int-lit | char-lit | call-expr`.
func (p *parser) parsePrimaryExpr(em emitter) (symtab.Type, *diag.Error) {
	if err := p.lexError(); err != nil {
		return 0, err
	}

	if p.curIsPunct(token.LeftParen) {
		p.advance()
		typ, err := p.parseExpr(em)
		if err != nil {
			return 0, err
		}
		if err := p.expectPunct(token.RightParen, diag.MissingBracket); err != nil {
			return 0, err
		}
		return typ, nil
	}

	switch p.curTok().Kind {
	case token.Integer:
		v := p.curTok().Value.Int
		p.advance()
		em.Emit(instr.Op1(0, instr.Ipush, 4, v))
		return symtab.Int, nil
	case token.CharLiteral:
		v := p.curTok().Value.Int
		p.advance()
		em.Emit(instr.Op1(0, instr.Ipush, 4, v))
		return symtab.Char, nil
	case token.Identifier:
		return p.parseIdentRef(em)
	default:
		return 0, p.errAt(diag.InvalidExpression)
	}
}

// parseIdentRef parses an identifier appearing in an expression: either a
// variable reference or a call-expr, disambiguated by a following '('.
func (p *parser) parseIdentRef(em emitter) (symtab.Type, *diag.Error) {
	name, err := p.expectIdent()
	if err != nil {
		return 0, err
	}

	if p.curIsPunct(token.LeftParen) {
		return p.parseCallExpr(em, name)
	}

	v, level, _, isUninit, ok := p.resolve(name)
	if !ok {
		return 0, p.errAt(diag.UndeclaredIdentifier)
	}
	if isUninit {
		return 0, p.errAt(diag.NotInitialized)
	}
	em.Emit(instr.Loada(0, level, v.Slot))
	em.Emit(instr.Op0(0, instr.Iload))
	return v.Type, nil
}

// parseCallExpr implements `call-expr := ident "(" [expr {"," expr}] ")"`,
// given name already consumed. A call at global scope is rejected: spec.md
// §4.2 forbids function calls inside top-level initializers.
func (p *parser) parseCallExpr(em emitter, name string) (symtab.Type, *diag.Error) {
	p.advance() // '('

	if p.fn == nil {
		return 0, p.errAt(diag.CallFunctionInStartSection)
	}

	fn, ok := p.prog.LookupFunction(name)
	if !ok {
		return 0, p.errAt(diag.UndeclaredFunction)
	}

	argc := 0
	if !p.curIsPunct(token.RightParen) {
		for {
			if _, err := p.parseExpr(em); err != nil {
				return 0, err
			}
			argc++
			if !p.curIsPunct(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if err := p.expectPunct(token.RightParen, diag.MissingBracket); err != nil {
		return 0, err
	}
	if argc != len(fn.Params) {
		return 0, p.errAt(diag.InvalidFunctionCall)
	}

	em.Emit(instr.Op1(0, instr.Call, 2, fn.Index))
	return fn.ReturnType, nil
}
