package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-c0x/c0x/lang/instr"
	"github.com/go-c0x/c0x/lang/symtab"
)

func TestScopeDeclareAndLookup(t *testing.T) {
	s := symtab.NewScope()
	require.False(t, s.Declared("x"))

	v := s.DeclareUninitialized("x", symtab.Int)
	require.Equal(t, int32(0), v.Slot)
	require.True(t, s.Declared("x"))

	_, isConst, isUninit, ok := s.Lookup("x")
	require.True(t, ok)
	require.False(t, isConst)
	require.True(t, isUninit)

	s.Initialize("x")
	_, isConst, isUninit, ok = s.Lookup("x")
	require.True(t, ok)
	require.False(t, isConst)
	require.False(t, isUninit)
}

func TestScopeSlotsGrowMonotonically(t *testing.T) {
	s := symtab.NewScope()
	a := s.DeclareVar("a", symtab.Int)
	b := s.DeclareVar("b", symtab.Char)
	c := s.DeclareConstant("c", symtab.Int)
	require.Equal(t, int32(0), a.Slot)
	require.Equal(t, int32(1), b.Slot)
	require.Equal(t, int32(2), c.Slot)
}

func TestProgramInternStringDedups(t *testing.T) {
	p := symtab.NewProgram()
	i1 := p.InternString("main")
	i2 := p.InternString("hello")
	i3 := p.InternString("main")
	require.Equal(t, i1, i3)
	require.NotEqual(t, i1, i2)
	require.Len(t, p.Pool, 2)
}

func TestProgramDeclareFunctionInternsNameFirst(t *testing.T) {
	p := symtab.NewProgram()
	fn := p.DeclareFunction("main", symtab.Void)
	require.Equal(t, int32(0), fn.Index)
	require.Equal(t, symtab.PoolEntry{Kind: symtab.PoolString, Str: "main"}, p.Pool[fn.NameConstIndex])
	require.True(t, p.FunctionDeclared("main"))
	_, ok := p.LookupFunction("main")
	require.True(t, ok)
}

func TestFunctionEmitAssignsContiguousIndices(t *testing.T) {
	fn := symtab.NewFunction(0, "f", 0, symtab.Void)
	i0 := fn.Emit(instr.Op0(0, instr.Iadd))
	i1 := fn.Emit(instr.Op0(0, instr.Ret))
	require.Equal(t, int32(0), i0)
	require.Equal(t, int32(1), i1)
	require.Equal(t, instr.Ret, fn.Instructions[1].Op)
}

func TestFunctionPatchReplacesNop(t *testing.T) {
	fn := symtab.NewFunction(0, "f", 0, symtab.Void)
	nopIdx := fn.ReserveNop()
	target := fn.NextIndex()
	fn.Emit(instr.Op0(0, instr.Ret))
	fn.Patch(nopIdx, instr.Jge, target)
	require.Equal(t, instr.Jge, fn.Instructions[nopIdx].Op)
	require.Equal(t, target, fn.Instructions[nopIdx].Operand1.Value)
}

func TestFunctionLoopJumpStackNesting(t *testing.T) {
	fn := symtab.NewFunction(0, "f", 0, symtab.Void)
	fn.PushLoop()
	fn.RecordLoopJump(1, symtab.Break)
	fn.PushLoop()
	fn.RecordLoopJump(2, symtab.Continue)
	inner := fn.PopLoop()
	require.Equal(t, []symtab.LoopJump{{InstructionIndex: 2, Kind: symtab.Continue}}, inner)
	outer := fn.PopLoop()
	require.Equal(t, []symtab.LoopJump{{InstructionIndex: 1, Kind: symtab.Break}}, outer)
	require.False(t, fn.InLoop())
}
