package writer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-c0x/c0x/lang/compiler"
	"github.com/go-c0x/c0x/lang/writer"
)

func TestBinaryMagicAndVersionPrefix(t *testing.T) {
	prog, err := compiler.Compile([]byte("void main(){}"))
	require.Nil(t, err)

	var buf bytes.Buffer
	bw := &writer.BinaryWriter{Output: &buf}
	require.NoError(t, bw.Write(prog))

	out := buf.Bytes()
	require.GreaterOrEqual(t, len(out), 10)
	require.Equal(t, []byte{0x43, 0x30, 0x3a, 0x29, 0x00, 0x00, 0x00, 0x01}, out[:8])
	// one pool entry ("main"), big-endian u16 count
	require.Equal(t, []byte{0x00, 0x01}, out[8:10])
}

func TestBinaryRoundTripMatchesDirectWrite(t *testing.T) {
	src := []byte("const int X = 5; void main(){ print(X); }")
	prog1, err := compiler.Compile(src)
	require.Nil(t, err)
	prog2, err := compiler.Compile(src)
	require.Nil(t, err)

	var buf1, buf2 bytes.Buffer
	require.NoError(t, (&writer.BinaryWriter{Output: &buf1}).Write(prog1))

	var asmBuf bytes.Buffer
	require.NoError(t, (&writer.AsmPrinter{Output: &asmBuf}).Print(prog2))
	require.NoError(t, (&writer.BinaryWriter{Output: &buf2}).Write(prog2))

	require.Equal(t, buf1.Bytes(), buf2.Bytes())
}

func TestAsmPrinterSections(t *testing.T) {
	prog, err := compiler.Compile([]byte("void main(){}"))
	require.Nil(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&writer.AsmPrinter{Output: &buf}).Print(prog))

	out := buf.String()
	require.Contains(t, out, ".constants:\n0 S \"main\"\n")
	require.Contains(t, out, ".start:\n")
	require.Contains(t, out, ".functions:\n0 0 0 1\n.F0:\n0 ret\n")
}
