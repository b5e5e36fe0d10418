package symtab

import "github.com/go-c0x/c0x/lang/instr"

// Program is the complete compile-time model of one source file: the global
// frame, the constant pool, the `.start` instruction stream, and every
// function in declaration order.
type Program struct {
	Pool []PoolEntry

	Global *Scope

	Start []instr.Instruction

	Functions     []*Function
	functionIndex map[string]*Function

	stringPool map[string]int32 // interning: literal value -> pool index
}

// NewProgram returns an empty program ready to receive globals, functions,
// and start-section instructions during parsing.
func NewProgram() *Program {
	return &Program{
		Global:        NewScope(),
		functionIndex: make(map[string]*Function),
		stringPool:    make(map[string]int32),
	}
}

// InternString returns the pool index of s, appending a new PoolString entry
// if this is its first occurrence. Used both for function names (spec.md
// invariant 5: the name constant exists before the function's own code
// emission begins) and for interned print string literals.
func (p *Program) InternString(s string) int32 {
	if idx, ok := p.stringPool[s]; ok {
		return idx
	}
	idx := int32(len(p.Pool))
	p.Pool = append(p.Pool, PoolEntry{Kind: PoolString, Str: s})
	p.stringPool[s] = idx
	return idx
}

// DeclareFunction registers a new function, interning its name in the
// constant pool and appending its record to Functions in declaration order
// (the order the binary writer must also use, since spec.md §4.3 sorts by
// function_index, and declaration order is that index).
func (p *Program) DeclareFunction(name string, returnType Type) *Function {
	nameIdx := p.InternString(name)
	fn := NewFunction(int32(len(p.Functions)), name, nameIdx, returnType)
	p.Functions = append(p.Functions, fn)
	p.functionIndex[name] = fn
	return fn
}

// LookupFunction returns the function named name, if declared.
func (p *Program) LookupFunction(name string) (*Function, bool) {
	fn, ok := p.functionIndex[name]
	return fn, ok
}

// FunctionDeclared reports whether name already names a function, used by
// the top-level declaration disambiguation to enforce invariant 1 across
// the global namespace.
func (p *Program) FunctionDeclared(name string) bool {
	_, ok := p.functionIndex[name]
	return ok
}

// EmitStart appends an instruction to the `.start` stream and returns its
// index.
func (p *Program) EmitStart(ins instr.Instruction) int32 {
	ins.Index = int32(len(p.Start))
	p.Start = append(p.Start, ins)
	return ins.Index
}

// PatchStart overwrites the `.start` instruction at index with a real jump.
// The `.start` stream never contains loops or conditionals in this
// language's grammar (global-decl has no control flow), so this exists for
// symmetry with Function.Patch rather than because the emitter calls it.
func (p *Program) PatchStart(index int32, op instr.Opcode, target int32) {
	p.Start[index] = instr.Jump(index, op, target)
}
