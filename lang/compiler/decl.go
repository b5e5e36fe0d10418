package compiler

import (
	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/instr"
	"github.com/go-c0x/c0x/lang/symtab"
	"github.com/go-c0x/c0x/lang/token"
)

// parseGlobalDeclRest parses the declarator list and trailing ';' of
// `global-decl := ["const"] type ident [ "=" expr ] { "," ident [ "=" expr ] } ";"`,
// given the leading `["const"] type ident` already consumed by the caller.
func (p *parser) parseGlobalDeclRest(isConst bool, typ symtab.Type, firstName string) *diag.Error {
	name := firstName
	for {
		if err := p.parseGlobalDeclarator(isConst, typ, name); err != nil {
			return err
		}
		if !p.curIsPunct(token.Comma) {
			break
		}
		p.advance()
		nm, err := p.expectIdent()
		if err != nil {
			return err
		}
		name = nm
	}
	return p.expectPunct(token.Semicolon, diag.NeedSemicolon)
}

// parseGlobalDeclarator emits one global variable or constant's
// initialization into the `.start` stream, following the pattern spec.md
// §4.2 "Declarations" describes for locals, applied to the global frame.
func (p *parser) parseGlobalDeclarator(isConst bool, typ symtab.Type, name string) *diag.Error {
	if p.prog.Global.Declared(name) || p.prog.FunctionDeclared(name) {
		return p.errAt(diag.DuplicateDeclaration)
	}

	hasInit := p.curIsPunct(token.Assign)
	if isConst && !hasInit {
		return p.errAt(diag.ConstantNeedValue)
	}

	slot := p.prog.Global.ReserveSlot()
	if !hasInit {
		p.prog.Global.PutUninitialized(name, symtab.Variable{Slot: slot, Type: typ})
		return nil
	}
	p.advance() // '='

	em := startEmitter{p.prog}
	em.Emit(instr.Op1(0, instr.Snew, 4, 1))
	em.Emit(instr.Loada(0, 0, slot))
	if _, err := p.parseExpr(em); err != nil {
		return err
	}
	em.Emit(instr.Op0(0, instr.Istore))

	if isConst {
		p.prog.Global.PutConstant(name, symtab.Variable{Slot: slot, Type: typ})
	} else {
		p.prog.Global.PutVar(name, symtab.Variable{Slot: slot, Type: typ})
	}
	return nil
}

// parseFunctionDef parses `"(" [params] ")" compound-stmt`, given
// `type ident` already consumed by the caller and cur positioned at '('.
func (p *parser) parseFunctionDef(name string, returnType symtab.Type) *diag.Error {
	if p.prog.FunctionDeclared(name) || p.prog.Global.Declared(name) {
		return p.errAt(diag.DuplicateDeclaration)
	}
	p.advance() // '('

	fn := p.prog.DeclareFunction(name, returnType)
	p.fn = fn

	if !p.curIsPunct(token.RightParen) {
		for {
			if err := p.parseParam(fn); err != nil {
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

	if err := p.parseCompoundStmt(); err != nil {
		return err
	}

	if fn.ReturnType == symtab.Void {
		fn.Emit(instr.Op0(0, instr.Ret))
	}
	p.fn = nil
	return nil
}

// parseParam parses one `param := ["const"] type ident`. A leading "const"
// is accepted but carries no different treatment from a plain parameter:
// spec.md never distinguishes mutable from immutable parameters elsewhere.
func (p *parser) parseParam(fn *symtab.Function) *diag.Error {
	if p.curIsReserved("const") {
		p.advance()
	}
	typ, err := p.parseTypeKeyword(diag.InvalidParameter)
	if err != nil {
		return err
	}
	if typ == symtab.Void {
		return p.errAt(diag.InvalidParameter)
	}
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	if fn.Locals.Declared(name) {
		return p.errAt(diag.DuplicateDeclaration)
	}
	fn.AddParam(name, typ)
	return nil
}

// curIsLocalDeclStart reports whether cur begins a local-decl: "const" or a
// type keyword. compound-stmt's `{local-decl}` prefix is parsed while this
// holds.
func (p *parser) curIsLocalDeclStart() bool {
	if p.curIsReserved("const") {
		return true
	}
	return p.curIsTypeKeyword()
}

// parseLocalDecl parses one local-decl, emitting into the current
// function's instruction stream and local scope.
func (p *parser) parseLocalDecl() *diag.Error {
	isConst := false
	if p.curIsReserved("const") {
		isConst = true
		p.advance()
	}
	typ, err := p.parseTypeKeyword(diag.NeedVariableType)
	if err != nil {
		return err
	}
	if typ == symtab.Void {
		return p.errAt(diag.InvalidVariableType)
	}

	for {
		name, err := p.expectIdent()
		if err != nil {
			return err
		}
		if err := p.parseLocalDeclarator(isConst, typ, name); err != nil {
			return err
		}
		if !p.curIsPunct(token.Comma) {
			break
		}
		p.advance()
	}
	return p.expectPunct(token.Semicolon, diag.NeedSemicolon)
}

func (p *parser) parseLocalDeclarator(isConst bool, typ symtab.Type, name string) *diag.Error {
	if p.fn.Locals.Declared(name) {
		return p.errAt(diag.DuplicateDeclaration)
	}

	hasInit := p.curIsPunct(token.Assign)
	if isConst && !hasInit {
		return p.errAt(diag.ConstantNeedValue)
	}

	slot := p.fn.Locals.ReserveSlot()
	if !hasInit {
		p.fn.Locals.PutUninitialized(name, symtab.Variable{Slot: slot, Type: typ})
		return nil
	}
	p.advance() // '='

	p.fn.Emit(instr.Op1(0, instr.Snew, 4, 1))
	p.fn.Emit(instr.Loada(0, 0, slot))
	if _, err := p.parseExpr(p.fn); err != nil {
		return err
	}
	p.fn.Emit(instr.Op0(0, instr.Istore))

	if isConst {
		p.fn.Locals.PutConstant(name, symtab.Variable{Slot: slot, Type: typ})
	} else {
		p.fn.Locals.PutVar(name, symtab.Variable{Slot: slot, Type: typ})
	}
	return nil
}
