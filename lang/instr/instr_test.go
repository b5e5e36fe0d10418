package instr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-c0x/c0x/lang/instr"
)

func TestEncodeNoOperand(t *testing.T) {
	ins := instr.Op0(0, instr.Ret)
	require.Equal(t, []byte{0x88}, ins.Encode(nil))
	require.Equal(t, int32(1), ins.Size())
}

func TestEncodeIpush(t *testing.T) {
	ins := instr.Op1(0, instr.Ipush, 4, 5)
	require.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 0x05}, ins.Encode(nil))
	require.Equal(t, int32(5), ins.Size())
}

func TestEncodeLoada(t *testing.T) {
	ins := instr.Loada(0, 1, 0)
	require.Equal(t, []byte{0x0a, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, ins.Encode(nil))
	require.Equal(t, int32(7), ins.Size())
}

func TestEncodeJump(t *testing.T) {
	ins := instr.Jump(0, instr.Jge, 3)
	require.Equal(t, []byte{0x74, 0x00, 0x03}, ins.Encode(nil))
	require.Equal(t, int32(3), ins.Size())
}

func TestReverse(t *testing.T) {
	cases := map[instr.Opcode]instr.Opcode{
		instr.Jl: instr.Jge, instr.Jge: instr.Jl,
		instr.Jle: instr.Jg, instr.Jg: instr.Jle,
		instr.Je: instr.Jne, instr.Jne: instr.Je,
	}
	for op, want := range cases {
		require.Equal(t, want, op.Reverse())
	}
}

func TestSkipJumpTable(t *testing.T) {
	require.Equal(t, instr.Jge, instr.SkipJump["<"])
	require.Equal(t, instr.Jg, instr.SkipJump["<="])
	require.Equal(t, instr.Jle, instr.SkipJump[">"])
	require.Equal(t, instr.Jl, instr.SkipJump[">="])
	require.Equal(t, instr.Jne, instr.SkipJump["=="])
	require.Equal(t, instr.Je, instr.SkipJump["!="])
}

func TestMnemonics(t *testing.T) {
	require.Equal(t, "iadd", instr.Iadd.String())
	require.Equal(t, "illegal", instr.Opcode(0xff).String())
}
