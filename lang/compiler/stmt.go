package compiler

import (
	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/instr"
	"github.com/go-c0x/c0x/lang/symtab"
	"github.com/go-c0x/c0x/lang/token"
)

// parseCompoundStmt implements `"{" {local-decl} {statement} "}"`.
func (p *parser) parseCompoundStmt() *diag.Error {
	if err := p.expectPunct(token.LeftBrace, diag.MissingBrace); err != nil {
		return err
	}
	for p.curIsLocalDeclStart() {
		if err := p.parseLocalDecl(); err != nil {
			return err
		}
	}
	for !p.curIsPunct(token.RightBrace) {
		if err := p.lexError(); err != nil {
			return err
		}
		if p.atEOF() {
			return p.errAt(diag.MissingBrace)
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	return p.expectPunct(token.RightBrace, diag.MissingBrace)
}

// parseStatement implements the `statement` production.
func (p *parser) parseStatement() *diag.Error {
	if err := p.lexError(); err != nil {
		return err
	}

	if p.curIsPunct(token.LeftBrace) {
		return p.parseCompoundStmt()
	}
	if p.curIsPunct(token.Semicolon) {
		p.advance()
		return nil
	}
	if p.curIsReserved("if") {
		return p.parseIfStmt()
	}
	if p.curIsReserved("while") {
		return p.parseWhileStmt()
	}
	if p.curIsReserved("do") {
		return p.parseDoWhileStmt()
	}
	if p.curIsReserved("return") {
		return p.parseReturnStmt()
	}
	if p.curIsReserved("break") {
		return p.parseBreakStmt()
	}
	if p.curIsReserved("continue") {
		return p.parseContinueStmt()
	}
	if p.curIsReserved("print") {
		return p.parsePrintStmt()
	}
	if p.curIsReserved("scan") {
		return p.parseScanStmt()
	}
	if p.curTok().Kind == token.Identifier {
		return p.parseAssignOrCallStmt()
	}
	return p.errAt(diag.InvalidStatement)
}

// curTok exposes the cursor's current token to the stmt/expr recognizers,
// which never need the cursor's rollback/error-handling internals directly.
func (p *parser) curTok() token.Token { return p.cur.cur }

// parseIfStmt implements `"if" "(" condition ")" statement ["else" statement]`.
func (p *parser) parseIfStmt() *diag.Error {
	p.advance() // "if"
	if err := p.expectPunct(token.LeftParen, diag.MissingBracket); err != nil {
		return err
	}
	em := p.emitter()
	skipOp, err := p.parseCondition(em)
	if err != nil {
		return err
	}
	if err := p.expectPunct(token.RightParen, diag.MissingBracket); err != nil {
		return err
	}

	skipJump := em.ReserveNop()

	if err := p.parseStatement(); err != nil {
		return err
	}

	jumpAroundElse := em.ReserveNop()
	postThen := em.ReserveNop()
	em.Patch(skipJump, skipOp, postThen)

	if p.curIsReserved("else") {
		p.advance()
		if err := p.parseStatement(); err != nil {
			return err
		}
		postElse := em.ReserveNop()
		em.Patch(jumpAroundElse, instr.Jmp, postElse)
	}
	return nil
}

// parseWhileStmt implements `"while" "(" condition ")" statement`, following
// the nop_A/nop_B/body/jmp/nop_C pattern spec.md §4.2 names.
func (p *parser) parseWhileStmt() *diag.Error {
	p.advance() // "while"
	em := p.emitter()
	p.fn.PushLoop()

	nopA := em.ReserveNop() // continue target
	if err := p.expectPunct(token.LeftParen, diag.MissingBracket); err != nil {
		return err
	}
	skipOp, err := p.parseCondition(em)
	if err != nil {
		return err
	}
	if err := p.expectPunct(token.RightParen, diag.MissingBracket); err != nil {
		return err
	}

	nopB := em.ReserveNop()

	if err := p.parseStatement(); err != nil {
		return err
	}

	em.Emit(instr.Jump(0, instr.Jmp, nopA))
	nopC := em.ReserveNop() // break target
	em.Patch(nopB, skipOp, nopC)

	jumps := p.fn.PopLoop()
	p.patchLoopJumps(jumps, nopA, nopC)
	return nil
}

// parseDoWhileStmt implements `"do" statement "while" "(" condition ")" ";"`,
// following the nop_A/body/cond/jmp_cond/nop_B pattern spec.md §4.2 names.
func (p *parser) parseDoWhileStmt() *diag.Error {
	p.advance() // "do"
	em := p.emitter()
	p.fn.PushLoop()

	nopA := em.ReserveNop() // continue target

	if err := p.parseStatement(); err != nil {
		return err
	}

	if err := p.expectReserved("while", diag.NeedWhileInDoWhile); err != nil {
		return err
	}
	if err := p.expectPunct(token.LeftParen, diag.MissingBracket); err != nil {
		return err
	}
	skipOp, err := p.parseCondition(em)
	if err != nil {
		return err
	}
	if err := p.expectPunct(token.RightParen, diag.MissingBracket); err != nil {
		return err
	}
	if err := p.expectPunct(token.Semicolon, diag.NeedSemicolon); err != nil {
		return err
	}

	em.Emit(instr.Jump(0, skipOp.Reverse(), nopA))
	nopB := em.ReserveNop() // break target

	jumps := p.fn.PopLoop()
	p.patchLoopJumps(jumps, nopA, nopB)
	return nil
}

// patchLoopJumps resolves every pending break/continue emitted inside the
// loop just exited, satisfying invariant 4 (the pending list is always
// empty by the time the loop's recognizer returns).
func (p *parser) patchLoopJumps(jumps []symtab.LoopJump, continueTarget, breakTarget int32) {
	em := p.emitter()
	for _, j := range jumps {
		target := breakTarget
		if j.Kind == symtab.Continue {
			target = continueTarget
		}
		em.Patch(j.InstructionIndex, instr.Jmp, target)
	}
}

// parseReturnStmt implements `"return" [expr] ";"`.
func (p *parser) parseReturnStmt() *diag.Error {
	p.advance() // "return"
	em := p.emitter()
	isVoid := p.fn.ReturnType == symtab.Void

	if p.curIsPunct(token.Semicolon) {
		p.advance()
		em.Emit(instr.Op0(0, instr.Ret))
		return nil
	}

	if isVoid {
		return p.errAt(diag.ReturnInVoidFunction)
	}
	if _, err := p.parseExpr(em); err != nil {
		return err
	}
	if err := p.expectPunct(token.Semicolon, diag.NeedSemicolon); err != nil {
		return err
	}
	em.Emit(instr.Op0(0, instr.Iret))
	return nil
}

func (p *parser) parseBreakStmt() *diag.Error {
	p.advance() // "break"
	if err := p.expectPunct(token.Semicolon, diag.NeedSemicolon); err != nil {
		return err
	}
	if p.fn == nil || !p.fn.InLoop() {
		return p.errAt(diag.InvalidJump)
	}
	idx := p.emitter().ReserveNop()
	p.fn.RecordLoopJump(idx, symtab.Break)
	return nil
}

func (p *parser) parseContinueStmt() *diag.Error {
	p.advance() // "continue"
	if err := p.expectPunct(token.Semicolon, diag.NeedSemicolon); err != nil {
		return err
	}
	if p.fn == nil || !p.fn.InLoop() {
		return p.errAt(diag.InvalidJump)
	}
	idx := p.emitter().ReserveNop()
	p.fn.RecordLoopJump(idx, symtab.Continue)
	return nil
}

// parsePrintStmt implements `print-stmt := "print" "(" [printable {","
// printable}] ")" ";"`, not named as its own production in §4.2's grammar
// block but described fully in "Code generation by construct".
func (p *parser) parsePrintStmt() *diag.Error {
	p.advance() // "print"
	em := p.emitter()
	if err := p.expectPunct(token.LeftParen, diag.MissingBracket); err != nil {
		return err
	}
	if !p.curIsPunct(token.RightParen) {
		for {
			if err := p.parsePrintable(em); err != nil {
				return err
			}
			if !p.curIsPunct(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if err := p.expectPunct(token.RightParen, diag.MissingBracket); err != nil {
		return err
	}
	if err := p.expectPunct(token.Semicolon, diag.NeedSemicolon); err != nil {
		return err
	}
	em.Emit(instr.Op0(0, instr.Printl))
	return nil
}

func (p *parser) parsePrintable(em emitter) *diag.Error {
	if err := p.lexError(); err != nil {
		return err
	}
	if p.curTok().Kind == token.StringLiteral {
		idx := p.prog.InternString(p.curTok().Value.Str)
		p.advance()
		em.Emit(instr.Op1(0, instr.Loadc, 2, idx))
		em.Emit(instr.Op0(0, instr.Sprint))
		return nil
	}
	typ, err := p.parseExpr(em)
	if err != nil {
		return err
	}
	switch typ {
	case symtab.Char:
		em.Emit(instr.Op0(0, instr.Cprint))
	case symtab.Double:
		return p.errAt(diag.InvalidPrint)
	default:
		em.Emit(instr.Op0(0, instr.Iprint))
	}
	return nil
}

// parseScanStmt implements `scan-stmt := "scan" "(" ident ")" ";"`.
func (p *parser) parseScanStmt() *diag.Error {
	p.advance() // "scan"
	em := p.emitter()
	if err := p.expectPunct(token.LeftParen, diag.MissingBracket); err != nil {
		return err
	}
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	if err := p.expectPunct(token.RightParen, diag.MissingBracket); err != nil {
		return err
	}
	if err := p.expectPunct(token.Semicolon, diag.NeedSemicolon); err != nil {
		return err
	}

	v, level, isConst, _, ok := p.resolve(name)
	if !ok {
		return p.errAt(diag.UndeclaredIdentifier)
	}
	if isConst {
		return p.errAt(diag.AssignToConstant)
	}

	em.Emit(instr.Loada(0, level, v.Slot))
	if v.Type == symtab.Char {
		em.Emit(instr.Op0(0, instr.Cscan))
	} else {
		em.Emit(instr.Op0(0, instr.Iscan))
	}
	em.Emit(instr.Op0(0, instr.Istore))
	p.initializeName(level, name)
	return nil
}

// parseAssignOrCallStmt implements `(assign-stmt | call-stmt) ";"`,
// disambiguated by whether the identifier is followed by "(".
func (p *parser) parseAssignOrCallStmt() *diag.Error {
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	em := p.emitter()

	if p.curIsPunct(token.LeftParen) {
		if _, err := p.parseCallExpr(em, name); err != nil {
			return err
		}
		return p.expectPunct(token.Semicolon, diag.NeedSemicolon)
	}

	if err := p.expectPunct(token.Assign, diag.NeedAssignSymbol); err != nil {
		return err
	}

	v, level, isConst, _, ok := p.resolve(name)
	if !ok {
		return p.errAt(diag.UndeclaredIdentifier)
	}
	if isConst {
		return p.errAt(diag.AssignToConstant)
	}

	em.Emit(instr.Loada(0, level, v.Slot))
	typ, err := p.parseExpr(em)
	if err != nil {
		return err
	}
	if v.Type == symtab.Char && typ == symtab.Int {
		em.Emit(instr.Op0(0, instr.I2c))
	}
	em.Emit(instr.Op0(0, instr.Istore))
	p.initializeName(level, name)

	return p.expectPunct(token.Semicolon, diag.NeedSemicolon)
}
