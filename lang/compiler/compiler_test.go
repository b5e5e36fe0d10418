package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-c0x/c0x/lang/compiler"
	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/instr"
	"github.com/go-c0x/c0x/lang/symtab"
)

func mustCompile(t *testing.T, src string) *symtab.Program {
	t.Helper()
	prog, err := compiler.Compile([]byte(src))
	require.Nil(t, err, "%v", err)
	return prog
}

func TestCompileEmptyVoidMain(t *testing.T) {
	prog := mustCompile(t, "void main(){}")

	require.Equal(t, []symtab.PoolEntry{{Kind: symtab.PoolString, Str: "main"}}, prog.Pool)
	require.Empty(t, prog.Start)
	require.Len(t, prog.Functions, 1)

	fn := prog.Functions[0]
	require.Equal(t, 0, len(fn.Params))
	require.Equal(t, int32(1), fn.Level)
	require.Equal(t, []instr.Instruction{instr.Op0(0, instr.Ret)}, fn.Instructions)
}

func TestCompileGlobalConstAndUse(t *testing.T) {
	prog := mustCompile(t, "const int X = 5; void main(){ print(X); }")

	require.Equal(t, []symtab.PoolEntry{{Kind: symtab.PoolString, Str: "main"}}, prog.Pool)

	require.Equal(t, []instr.Instruction{
		instr.Op1(0, instr.Snew, 4, 1),
		instr.Loada(1, 0, 0),
		instr.Op1(2, instr.Ipush, 4, 5),
		instr.Op0(3, instr.Istore),
	}, prog.Start)

	v, isConst, isUninit, ok := prog.Global.Lookup("X")
	require.True(t, ok)
	require.True(t, isConst)
	require.False(t, isUninit)
	require.Equal(t, int32(0), v.Slot)

	fn := prog.Functions[0]
	require.Equal(t, []instr.Instruction{
		instr.Loada(0, 1, 0),
		instr.Op0(1, instr.Iload),
		instr.Op0(2, instr.Iprint),
		instr.Op0(3, instr.Printl),
		instr.Op0(4, instr.Ret),
	}, fn.Instructions)
}

func TestCompileIfElse(t *testing.T) {
	prog := mustCompile(t, `void f(){
		int x;
		scan(x);
		if(x<0) print(0); else print(1);
	}`)

	fn := prog.Functions[0]
	require.Len(t, fn.Instructions, 18)

	// scan(x): loada, iscan, istore
	require.Equal(t, instr.Iscan, fn.Instructions[1].Op)

	// condition x<0: loada, iload, ipush 0, icmp
	require.Equal(t, instr.Icmp, fn.Instructions[6].Op)

	// skip-jump for "<" is jge, patched to the post-then nop (index 12)
	require.Equal(t, instr.Jge, fn.Instructions[7].Op)
	require.Equal(t, int32(12), fn.Instructions[7].Operand1.Value)

	// exactly two nops follow the then-block (indices 11 and 12)
	require.Equal(t, instr.Jmp, fn.Instructions[11].Op)
	require.Equal(t, int32(16), fn.Instructions[11].Operand1.Value)
	require.Equal(t, instr.Nop, fn.Instructions[12].Op)

	// one additional nop follows the else-block, the jump-around-else target
	require.Equal(t, instr.Nop, fn.Instructions[16].Op)
}

func TestCompileWhileWithBreak(t *testing.T) {
	prog := mustCompile(t, `void f(){
		int i;
		i=0;
		while(i<10){
			if(i==5) break;
			i=i+1;
		}
	}`)

	fn := prog.Functions[0]
	require.Len(t, fn.Instructions, 26)

	// the break's nop (index 14) is rewritten to jmp the break target (24)
	require.Equal(t, instr.Jmp, fn.Instructions[14].Op)
	require.Equal(t, int32(24), fn.Instructions[14].Operand1.Value)

	// the loop's own back-edge jumps to nop_A (index 3)
	require.Equal(t, instr.Jmp, fn.Instructions[23].Op)
	require.Equal(t, int32(3), fn.Instructions[23].Operand1.Value)

	// the condition's skip-jump (jge, "<") is patched to the break target
	require.Equal(t, instr.Jge, fn.Instructions[8].Op)
	require.Equal(t, int32(24), fn.Instructions[8].Operand1.Value)
}

func TestCompileDoWhile(t *testing.T) {
	prog := mustCompile(t, `void f(){
		int i;
		i=0;
		do{ i=i+1; }while(i<3);
	}`)

	fn := prog.Functions[0]
	require.Len(t, fn.Instructions, 17)

	// the while-condition's skip-jump would be jge ("<"); the back-edge
	// reverses it to jl and targets nop_A (index 3)
	require.Equal(t, instr.Jl, fn.Instructions[14].Op)
	require.Equal(t, int32(3), fn.Instructions[14].Operand1.Value)

	require.Equal(t, instr.Nop, fn.Instructions[15].Op)
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"hex with no digits", "void main(){ int x = 0x; }", diag.InvalidInteger},
		{"cast to void", "void main(){ int x = (void)1; }", diag.CastToVoid},
		{"call in start section", "int f(){ return 1; } int x = f();", diag.CallFunctionInStartSection},
		{"read uninitialized", "void main(){ int x; print(x); }", diag.NotInitialized},
		{"do-while missing semicolon", "void main(){ int i; i=0; do{i=i+1;}while(i<3) }", diag.NeedSemicolon},
		{"assign to constant", "const int X = 1; void main(){ X = 2; }", diag.AssignToConstant},
		{"duplicate declaration", "int x; int x; void main(){}", diag.DuplicateDeclaration},
		{"undeclared function call", "void main(){ g(); }", diag.UndeclaredFunction},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compiler.Compile([]byte(tc.src))
			require.NotNil(t, err)
			require.Equal(t, tc.code, err.Code)
		})
	}
}
