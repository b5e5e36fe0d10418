package maincmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/go-c0x/c0x/internal/maincmd"
)

func stdio() (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return mainer.Stdio{Stdin: bytes.NewReader(nil), Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestMainCompilesToAssembly(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.c0")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(src, []byte("void main(){}"), 0o644))

	io, _, stderr := stdio()
	c := &maincmd.Cmd{}
	code := c.Main([]string{"c0x", "-s", "-o", out, src}, io)
	require.Equal(t, mainer.Success, code, "stderr: %s", stderr.String())

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(contents), ".constants:")
}

func TestMainCompileErrorExitsTwo(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.c0")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(src, []byte("void main(){ int x = 0x; }"), 0o644))

	io, _, stderr := stdio()
	c := &maincmd.Cmd{}
	code := c.Main([]string{"c0x", "-s", "-o", out, src}, io)
	require.Equal(t, mainer.ExitCode(2), code)
	require.Contains(t, stderr.String(), "Error: InvalidInteger")
}

func TestMainMissingInputExitsThree(t *testing.T) {
	dir := t.TempDir()
	io, _, _ := stdio()
	c := &maincmd.Cmd{}
	code := c.Main([]string{"c0x", "-s", "-o", filepath.Join(dir, "out"), filepath.Join(dir, "missing.c0")}, io)
	require.Equal(t, mainer.ExitCode(3), code)
}

func TestValidateRejectsBothFlags(t *testing.T) {
	c := &maincmd.Cmd{Asm: true, Binary: true}
	c.SetArgs([]string{"in.c0"})
	require.Error(t, c.Validate())
}

func TestValidateRejectsNeitherFlag(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs([]string{"in.c0"})
	require.Error(t, c.Validate())
}

func TestValidateRejectsWrongArgCount(t *testing.T) {
	c := &maincmd.Cmd{Asm: true}
	c.SetArgs([]string{})
	require.Error(t, c.Validate())

	c.SetArgs([]string{"a.c0", "b.c0"})
	require.Error(t, c.Validate())
}

func TestValidateDefaultsOutputPath(t *testing.T) {
	c := &maincmd.Cmd{Asm: true}
	c.SetArgs([]string{"in.c0"})
	require.NoError(t, c.Validate())
	require.Equal(t, "out", c.Output)
}
