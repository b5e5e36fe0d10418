package symtab

import "github.com/go-c0x/c0x/lang/instr"

// LoopJumpKind distinguishes a pending break from a pending continue.
type LoopJumpKind int8

//nolint:revive
const (
	Break LoopJumpKind = iota
	Continue
)

// LoopJump is one unresolved break/continue: the index of the nop
// instruction reserved for it, and which kind of target it needs.
type LoopJump struct {
	InstructionIndex int32
	Kind             LoopJumpKind
}

// Function is one function's compile-time record: its signature, its local
// scope, its growing instruction stream, and the stack of pending loop-jump
// lists active while its body is being parsed.
type Function struct {
	Index          int32
	Name           string
	NameConstIndex int32
	Params         []Variable
	ReturnType     Type
	Level          int32 // always 1; no nested block scopes in this language

	Locals       *Scope
	Instructions []instr.Instruction

	loopStack [][]LoopJump
}

// NewFunction creates a function record. Parameters occupy the first slots
// of its local scope, per spec.md §3 ("a function's slot 0 is its first
// parameter").
func NewFunction(index int32, name string, nameConstIndex int32, returnType Type) *Function {
	return &Function{
		Index:          index,
		Name:           name,
		NameConstIndex: nameConstIndex,
		ReturnType:     returnType,
		Level:          1,
		Locals:         NewScope(),
	}
}

// AddParam declares a parameter in the function's local scope, as an
// already-initialized variable (its value arrives via the call).
func (f *Function) AddParam(name string, typ Type) Variable {
	v := f.Locals.DeclareVar(name, typ)
	f.Params = append(f.Params, v)
	return v
}

// Emit appends an instruction, assigning it the next contiguous index
// (invariant 3), and returns that index.
func (f *Function) Emit(ins instr.Instruction) int32 {
	ins.Index = int32(len(f.Instructions))
	f.Instructions = append(f.Instructions, ins)
	return ins.Index
}

// ReserveNop appends a placeholder nop and returns its index, to be patched
// once its real target is known (spec.md §9, "Forward jumps").
func (f *Function) ReserveNop() int32 {
	return f.Emit(instr.Op0(0, instr.Nop))
}

// NextIndex returns the index the next Emit call would assign, useful for
// patching a jump to "whatever comes next".
func (f *Function) NextIndex() int32 {
	return int32(len(f.Instructions))
}

// Patch overwrites the instruction at index with a real jump opcode and
// target, replacing a placeholder nop created by ReserveNop.
func (f *Function) Patch(index int32, op instr.Opcode, target int32) {
	f.Instructions[index] = instr.Jump(index, op, target)
}

// PushLoop starts a new, empty pending-jump list for a loop being entered,
// saving the enclosing loop's list underneath it.
func (f *Function) PushLoop() {
	f.loopStack = append(f.loopStack, nil)
}

// PopLoop removes and returns the innermost loop's pending-jump list,
// restoring the enclosing loop's list as current.
func (f *Function) PopLoop() []LoopJump {
	n := len(f.loopStack)
	top := f.loopStack[n-1]
	f.loopStack = f.loopStack[:n-1]
	return top
}

// RecordLoopJump adds a pending break/continue to the innermost active
// loop's list. Panics if called outside a loop; the parser only calls this
// from within break/continue statement handling, which itself rejects
// break/continue outside a loop before this is reached.
func (f *Function) RecordLoopJump(index int32, kind LoopJumpKind) {
	n := len(f.loopStack)
	f.loopStack[n-1] = append(f.loopStack[n-1], LoopJump{InstructionIndex: index, Kind: kind})
}

// InLoop reports whether a loop is currently active, for break/continue
// validation.
func (f *Function) InLoop() bool {
	return len(f.loopStack) > 0
}
